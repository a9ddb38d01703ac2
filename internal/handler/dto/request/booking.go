package request

import (
	"fmt"
	"time"

	"cafe-reservation/internal/domain/booking"
	"cafe-reservation/internal/usecase/commands"

	"github.com/google/uuid"
)

const bookingDateLayout = "2006-01-02"

type TableSlotRequest struct {
	TableID uuid.UUID `json:"tableId" binding:"required"`
	SlotID  uuid.UUID `json:"slotId" binding:"required"`
}

type CreateBookingRequest struct {
	CafeID      uuid.UUID          `json:"cafeId" binding:"required"`
	BookingDate string             `json:"bookingDate" binding:"required"`
	GuestNumber int                `json:"guestNumber" binding:"required,min=1"`
	TableSlots  []TableSlotRequest `json:"tableSlots" binding:"required,min=1,dive"`
	Note        *string            `json:"note,omitempty"`
}

func (r *CreateBookingRequest) ToInput() (commands.CreateBookingInput, error) {
	date, err := time.Parse(bookingDateLayout, r.BookingDate)
	if err != nil {
		return commands.CreateBookingInput{}, fmt.Errorf("invalid booking date %q: %w", r.BookingDate, err)
	}

	return commands.CreateBookingInput{
		CafeID:      r.CafeID,
		BookingDate: date,
		GuestNumber: r.GuestNumber,
		Assignments: toAssignments(r.TableSlots),
		Note:        r.Note,
	}, nil
}

type UpdateBookingRequest struct {
	CafeID      *uuid.UUID         `json:"cafeId,omitempty"`
	BookingDate *string            `json:"bookingDate,omitempty"`
	GuestNumber *int               `json:"guestNumber,omitempty"`
	TableSlots  []TableSlotRequest `json:"tableSlots,omitempty"`
	Note        *string            `json:"note,omitempty"`
	Status      *string            `json:"status,omitempty"`
	Active      *bool              `json:"isActive,omitempty"`
}

func (r *UpdateBookingRequest) ToPatch() (commands.UpdateBookingPatch, error) {
	p := commands.UpdateBookingPatch{
		CafeID:      r.CafeID,
		GuestNumber: r.GuestNumber,
		Note:        r.Note,
		Active:      r.Active,
	}

	if r.BookingDate != nil {
		date, err := time.Parse(bookingDateLayout, *r.BookingDate)
		if err != nil {
			return commands.UpdateBookingPatch{}, fmt.Errorf("invalid booking date %q: %w", *r.BookingDate, err)
		}
		p.BookingDate = &date
	}

	if r.Status != nil {
		status, err := booking.NewStatus(*r.Status)
		if err != nil {
			return commands.UpdateBookingPatch{}, fmt.Errorf("invalid status %q: %w", *r.Status, err)
		}
		p.Status = &status
	}

	if r.TableSlots != nil {
		p.Assignments = toAssignments(r.TableSlots)
	}

	return p, nil
}

func toAssignments(tableSlots []TableSlotRequest) []booking.Assignment {
	assignments := make([]booking.Assignment, len(tableSlots))
	for i, ts := range tableSlots {
		assignments[i] = booking.Assignment{
			TableID: ts.TableID,
			SlotID:  ts.SlotID,
		}
	}
	return assignments
}
