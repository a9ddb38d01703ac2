package shared

import (
	"context"
	"time"

	"cafe-reservation/internal/domain/booking"

	"github.com/google/uuid"
)

// UnitOfWork scopes command-side validation and writes to one database
// transaction. Availability checks must run inside Within so the
// check-then-act window is closed by the transaction plus the occupancy
// uniqueness constraint (see infra/uow).
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Bookings() BookingRepository
	Reads() CommandReads
	// LockUserDate takes a transaction-scoped advisory lock serializing all
	// booking writes for one (user, date) pair. Required before the
	// user-conflict check: unlike table occupancy, user overlap cannot be
	// expressed as a uniqueness constraint.
	LockUserDate(ctx context.Context, userID uuid.UUID, date time.Time) error
}

// CommandReads are the read contracts the booking validator consumes. They
// own no business rules, only data access.
type CommandReads interface {
	CafeByID(ctx context.Context, id uuid.UUID) (*CafeSnapshot, error)
	TableByID(ctx context.Context, id uuid.UUID) (*TableSnapshot, error)
	SlotByID(ctx context.Context, id uuid.UUID) (*SlotSnapshot, error)
	BookingByID(ctx context.Context, id uuid.UUID) (*BookingSnapshot, error)
	// IsTableOccupied reports whether another occupying booking holds the
	// exact (table, slot) pair on the date. exclude skips the booking being
	// updated.
	IsTableOccupied(ctx context.Context, tableID, slotID uuid.UUID, date time.Time, exclude *uuid.UUID) (bool, error)
	// HasUserOverlap reports whether the user already holds an occupying
	// booking on the date whose slot interval overlaps the given one.
	HasUserOverlap(ctx context.Context, userID uuid.UUID, date time.Time, interval booking.TimeInterval, exclude *uuid.UUID) (bool, error)
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) (uuid.UUID, error)
	// Update rewrites the booking row and replaces its assignment rows,
	// keeping the denormalized occupancy columns in sync.
	Update(ctx context.Context, b *booking.Booking) error
}

type CafeSnapshot struct {
	ID     uuid.UUID
	Name   string
	Active bool
}

type TableSnapshot struct {
	ID     uuid.UUID
	CafeID uuid.UUID
	Seats  int
	Active bool
}

type SlotSnapshot struct {
	ID       uuid.UUID
	CafeID   uuid.UUID
	Interval booking.TimeInterval
	Active   bool
}

type BookingSnapshot struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	CafeID      uuid.UUID
	BookingDate time.Time
	GuestNumber int
	Status      booking.Status
	Active      bool
	Note        string
	Assignments []booking.Assignment
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type UserSnapshot struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         string
	Active       bool
}
