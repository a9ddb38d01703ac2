package queries

import (
	"context"
	"time"

	"cafe-reservation/internal/domain/user"
	"cafe-reservation/internal/infra"
	"cafe-reservation/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound  = errs.New("booking not found")
	ErrPermissionDenied = errs.New("insufficient permissions")
	ErrQueryFailed      = errs.New("booking query failed")
)

type TableSlotView struct {
	TableID uuid.UUID `json:"tableId"`
	SlotID  uuid.UUID `json:"slotId"`
}

type BookingView struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	CafeID      uuid.UUID
	BookingDate time.Time
	GuestNumber int
	Status      string
	IsActive    bool
	Note        *string
	TableSlots  []TableSlotView
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type BookingListFilter struct {
	UserID *uuid.UUID
	CafeID *uuid.UUID
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	List(ctx context.Context, filter BookingListFilter) ([]*BookingView, error)
}

type ListBookingsParams struct {
	CafeID  *uuid.UUID
	UserID  *uuid.UUID
	ShowAll bool
}

type BookingQueries interface {
	// GetByID enforces read permission: owners see their own bookings,
	// managers and admins see everything.
	GetByID(ctx context.Context, id uuid.UUID, actor user.Actor) (*BookingView, error)
	// GetByIDSystem skips the permission check. Used for read-after-write
	// inside command flows.
	GetByIDSystem(ctx context.Context, id uuid.UUID) (*BookingView, error)
	List(ctx context.Context, actor user.Actor, params ListBookingsParams) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID, actor user.Actor) (*BookingView, error) {
	view, err := q.GetByIDSystem(ctx, id)
	if err != nil {
		return nil, err
	}

	if !actor.IsStaff() && view.UserID != actor.UserID {
		return nil, ErrPermissionDenied
	}
	return view, nil
}

func (q *bookingQueriesImpl) GetByIDSystem(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	return view, nil
}

func (q *bookingQueriesImpl) List(ctx context.Context, actor user.Actor, params ListBookingsParams) ([]*BookingView, error) {
	filter := BookingListFilter{
		UserID: params.UserID,
		CafeID: params.CafeID,
	}

	// Customers only ever see their own bookings, regardless of filters.
	if !actor.IsStaff() || !params.ShowAll {
		ownID := actor.UserID
		filter.UserID = &ownID
	}

	views, err := q.store.List(ctx, filter)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	return views, nil
}
