package response

import (
	"time"

	"cafe-reservation/internal/usecase/queries"

	"github.com/google/uuid"
)

type TableSlotResponse struct {
	TableID uuid.UUID `json:"tableId"`
	SlotID  uuid.UUID `json:"slotId"`
}

type BookingResponse struct {
	ID          uuid.UUID           `json:"id"`
	UserID      uuid.UUID           `json:"userId"`
	CafeID      uuid.UUID           `json:"cafeId"`
	BookingDate string              `json:"bookingDate"`
	GuestNumber int                 `json:"guestNumber"`
	Status      string              `json:"status"`
	IsActive    bool                `json:"isActive"`
	Note        *string             `json:"note,omitempty"`
	TableSlots  []TableSlotResponse `json:"tableSlots"`
	CreatedAt   time.Time           `json:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt"`
}

func FromBookingView(view *queries.BookingView) *BookingResponse {
	tableSlots := make([]TableSlotResponse, len(view.TableSlots))
	for i, ts := range view.TableSlots {
		tableSlots[i] = TableSlotResponse{
			TableID: ts.TableID,
			SlotID:  ts.SlotID,
		}
	}

	return &BookingResponse{
		ID:          view.ID,
		UserID:      view.UserID,
		CafeID:      view.CafeID,
		BookingDate: view.BookingDate.Format("2006-01-02"),
		GuestNumber: view.GuestNumber,
		Status:      view.Status,
		IsActive:    view.IsActive,
		Note:        view.Note,
		TableSlots:  tableSlots,
		CreatedAt:   view.CreatedAt,
		UpdatedAt:   view.UpdatedAt,
	}
}

func FromBookingViews(views []*queries.BookingView) []*BookingResponse {
	result := make([]*BookingResponse, len(views))
	for i, view := range views {
		result[i] = FromBookingView(view)
	}
	return result
}
