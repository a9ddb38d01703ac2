//go:build unit || e2e

package builder

import (
	"time"

	dombooking "cafe-reservation/internal/domain/booking"
	reqdto "cafe-reservation/internal/handler/dto/request"
	"cafe-reservation/internal/usecase/queries"
	"cafe-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	CafeID      uuid.UUID
	TableID     uuid.UUID
	SlotID      uuid.UUID
	BookingDate time.Time
	GuestNumber int
	Status      dombooking.Status
	Active      bool
	Note        string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Now()
	return &BookingBuilder{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		CafeID:      uuid.New(),
		TableID:     uuid.New(),
		SlotID:      uuid.New(),
		BookingDate: now.AddDate(0, 0, 7).Truncate(24 * time.Hour),
		GuestNumber: 2,
		Status:      dombooking.StatusPending,
		Active:      true,
		Note:        "window seat please",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Build methods
func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	note := b.Note
	return reqdto.CreateBookingRequest{
		CafeID:      b.CafeID,
		BookingDate: b.BookingDate.Format("2006-01-02"),
		GuestNumber: b.GuestNumber,
		TableSlots: []reqdto.TableSlotRequest{
			{TableID: b.TableID, SlotID: b.SlotID},
		},
		Note: &note,
	}
}

func (b *BookingBuilder) BuildUpdateRequestDTO() reqdto.UpdateBookingRequest {
	guestNumber := b.GuestNumber
	note := b.Note
	return reqdto.UpdateBookingRequest{
		GuestNumber: &guestNumber,
		Note:        &note,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	note := b.Note
	return &queries.BookingView{
		ID:          b.ID,
		UserID:      b.UserID,
		CafeID:      b.CafeID,
		BookingDate: b.BookingDate,
		GuestNumber: b.GuestNumber,
		Status:      b.Status.String(),
		IsActive:    b.Active,
		Note:        &note,
		TableSlots: []queries.TableSlotView{
			{TableID: b.TableID, SlotID: b.SlotID},
		},
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func (b *BookingBuilder) BuildSnapshot() *shared.BookingSnapshot {
	return &shared.BookingSnapshot{
		ID:          b.ID,
		UserID:      b.UserID,
		CafeID:      b.CafeID,
		BookingDate: b.BookingDate,
		GuestNumber: b.GuestNumber,
		Status:      b.Status,
		Active:      b.Active,
		Note:        b.Note,
		Assignments: []dombooking.Assignment{
			{TableID: b.TableID, SlotID: b.SlotID},
		},
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

// Fluent builder methods
func (b *BookingBuilder) WithID(id uuid.UUID) *BookingBuilder {
	b.ID = id
	return b
}

func (b *BookingBuilder) WithUserID(userID uuid.UUID) *BookingBuilder {
	b.UserID = userID
	return b
}

func (b *BookingBuilder) WithCafeID(cafeID uuid.UUID) *BookingBuilder {
	b.CafeID = cafeID
	return b
}

func (b *BookingBuilder) WithTableID(tableID uuid.UUID) *BookingBuilder {
	b.TableID = tableID
	return b
}

func (b *BookingBuilder) WithSlotID(slotID uuid.UUID) *BookingBuilder {
	b.SlotID = slotID
	return b
}

func (b *BookingBuilder) WithBookingDate(date time.Time) *BookingBuilder {
	b.BookingDate = date
	return b
}

func (b *BookingBuilder) WithGuestNumber(guestNumber int) *BookingBuilder {
	b.GuestNumber = guestNumber
	return b
}

func (b *BookingBuilder) WithStatus(status dombooking.Status) *BookingBuilder {
	b.Status = status
	b.Active = dombooking.ActiveFor(status)
	return b
}

func (b *BookingBuilder) WithNote(note string) *BookingBuilder {
	b.Note = note
	return b
}

func (b *BookingBuilder) AsCancelled() *BookingBuilder {
	return b.WithStatus(dombooking.StatusCancelled)
}

func (b *BookingBuilder) AsConfirmed() *BookingBuilder {
	return b.WithStatus(dombooking.StatusConfirmed)
}
