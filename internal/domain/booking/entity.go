package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus        = errors.New("invalid booking status")
	ErrInvalidInterval      = errors.New("interval start must be before end")
	ErrInvalidGuestNumber   = errors.New("guest number must be positive")
	ErrPastDate             = errors.New("booking date must be in the future")
	ErrNoAssignments        = errors.New("booking requires at least one table-slot assignment")
	ErrDuplicateAssignment  = errors.New("duplicate table-slot assignment")
	ErrNoteTooLong          = errors.New("note exceeds maximum length")
	ErrActiveStatusMismatch = errors.New("active flag inconsistent with status")
)

type Booking struct {
	id          uuid.UUID
	userID      uuid.UUID
	cafeID      uuid.UUID
	bookingDate time.Time
	guestNumber int
	status      Status
	active      bool
	note        Note
	assignments []Assignment
	createdAt   time.Time
	updatedAt   time.Time
}

// NewBooking builds a pending booking for a future date. The assignment set
// must be non-empty and duplicate-free; the date comparison is calendar-day
// based, so booking "today" is rejected.
func NewBooking(
	userID, cafeID uuid.UUID,
	bookingDate time.Time,
	guestNumber int,
	assignments []Assignment,
	note Note,
	now time.Time,
) (*Booking, error) {
	if guestNumber <= 0 {
		return nil, ErrInvalidGuestNumber
	}
	if err := ValidateDate(bookingDate, now); err != nil {
		return nil, err
	}
	if err := ValidateAssignmentSet(assignments); err != nil {
		return nil, err
	}

	status := StatusPending
	return &Booking{
		id:          uuid.New(),
		userID:      userID,
		cafeID:      cafeID,
		bookingDate: truncateToDay(bookingDate),
		guestNumber: guestNumber,
		status:      status,
		active:      ActiveFor(status),
		note:        note,
		assignments: assignments,
	}, nil
}

func ReconstructBooking(
	id, userID, cafeID uuid.UUID,
	bookingDate time.Time,
	guestNumber int,
	status Status,
	active bool,
	note Note,
	assignments []Assignment,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:          id,
		userID:      userID,
		cafeID:      cafeID,
		bookingDate: bookingDate,
		guestNumber: guestNumber,
		status:      status,
		active:      active,
		note:        note,
		assignments: assignments,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// ValidateDate rejects dates on or before the current calendar day.
func ValidateDate(bookingDate, now time.Time) error {
	if !truncateToDay(bookingDate).After(truncateToDay(now)) {
		return ErrPastDate
	}
	return nil
}

// ValidateAssignmentSet rejects empty sets and duplicated (table, slot) pairs.
func ValidateAssignmentSet(assignments []Assignment) error {
	if len(assignments) == 0 {
		return ErrNoAssignments
	}
	seen := make(map[Assignment]struct{}, len(assignments))
	for _, a := range assignments {
		if _, dup := seen[a]; dup {
			return ErrDuplicateAssignment
		}
		seen[a] = struct{}{}
	}
	return nil
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func (b *Booking) ID() uuid.UUID             { return b.id }
func (b *Booking) UserID() uuid.UUID         { return b.userID }
func (b *Booking) CafeID() uuid.UUID         { return b.cafeID }
func (b *Booking) BookingDate() time.Time    { return b.bookingDate }
func (b *Booking) GuestNumber() int          { return b.guestNumber }
func (b *Booking) Status() Status            { return b.status }
func (b *Booking) IsActive() bool            { return b.active }
func (b *Booking) Note() Note                { return b.note }
func (b *Booking) Assignments() []Assignment { return b.assignments }
func (b *Booking) CreatedAt() time.Time      { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time      { return b.updatedAt }

// Occupying reports whether this booking currently holds its tables:
// status pending/confirmed with the active flag set.
func (b *Booking) Occupying() bool {
	return b.active && ActiveFor(b.status)
}
