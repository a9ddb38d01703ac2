package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"cafe-reservation/internal/domain/booking"
	"cafe-reservation/internal/domain/user"
	"cafe-reservation/internal/infra"
	"cafe-reservation/internal/pkg/clock"
	"cafe-reservation/internal/pkg/errs"
	"cafe-reservation/internal/pkg/patch"
	"cafe-reservation/internal/usecase/queries"
	"cafe-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrCafeNotFound            = errs.New("cafe not found")
	ErrCafeInactive            = errs.New("cafe is not active")
	ErrTableNotFound           = errs.New("table not found")
	ErrTableInactive           = errs.New("table is not active")
	ErrSlotNotFound            = errs.New("slot not found")
	ErrSlotInactive            = errs.New("slot is not active")
	ErrTableAlreadyBooked      = errs.New("table is already booked for this slot")
	ErrUserAlreadyBooked       = errs.New("user already has a booking in this time window")
	ErrNotEnoughSeats          = errs.New("not enough seats for guest number")
	ErrInvalidGuestNumber      = errs.New("invalid guest number")
	ErrBookingPastDate         = errs.New("booking date must be in the future")
	ErrInvalidAssignments      = errs.New("invalid table-slot assignments")
	ErrInvalidNote             = errs.New("invalid note")
	ErrBookingNotFound         = errs.New("booking not found")
	ErrBookingInactive         = errs.New("booking is not active")
	ErrInsufficientPermissions = errs.New("insufficient permissions")
	ErrInvalidStatusTransition = errs.New("invalid status transition")
	ErrCannotActivateStatus    = errs.New("cannot activate booking in this status")
	ErrCannotDeactivateStatus  = errs.New("cannot deactivate booking in this status")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type BookingEvent struct {
	Type        string    `json:"type"`
	BookingID   uuid.UUID `json:"bookingId"`
	UserID      uuid.UUID `json:"userId"`
	CafeID      uuid.UUID `json:"cafeId"`
	Status      string    `json:"status"`
	BookingDate time.Time `json:"bookingDate"`
}

// EventPublisher fans booking events out to interested consumers. Publishing
// is best-effort: a broker outage must never fail a committed booking.
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, event BookingEvent) error
}

type CreateBookingInput struct {
	CafeID      uuid.UUID
	BookingDate time.Time
	GuestNumber int
	Assignments []booking.Assignment
	Note        *string
}

// UpdateBookingPatch is a partial update: nil fields are untouched. A nil
// Assignments slice means "keep the current set", an empty one is rejected.
type UpdateBookingPatch struct {
	CafeID      *uuid.UUID
	BookingDate *time.Time
	GuestNumber *int
	Assignments []booking.Assignment
	Note        *string
	Status      *booking.Status
	Active      *bool
}

type BookingCommands interface {
	Create(ctx context.Context, actor user.Actor, in CreateBookingInput) (*queries.BookingView, error)
	Update(ctx context.Context, actor user.Actor, bookingID uuid.UUID, p UpdateBookingPatch) (*queries.BookingView, error)
}

type bookingUseCaseImpl struct {
	uow            shared.UnitOfWork
	validator      *AssignmentValidator
	policy         *booking.Policy
	bookingQueries queries.BookingQueries
	publisher      EventPublisher
	clock          clock.Clock
}

func NewBookingUseCase(
	uow shared.UnitOfWork,
	validator *AssignmentValidator,
	policy *booking.Policy,
	bookingQueries queries.BookingQueries,
	publisher EventPublisher,
	clock clock.Clock,
) BookingCommands {
	return &bookingUseCaseImpl{
		uow:            uow,
		validator:      validator,
		policy:         policy,
		bookingQueries: bookingQueries,
		publisher:      publisher,
		clock:          clock,
	}
}

func (u *bookingUseCaseImpl) Create(
	ctx context.Context,
	actor user.Actor,
	in CreateBookingInput,
) (*queries.BookingView, error) {
	note, err := booking.NewNote(patch.Coalesce(in.Note, ""))
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidNote)
	}

	var bookingID uuid.UUID
	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := u.requireActiveCafe(ctx, tx, in.CafeID); err != nil {
			return err
		}

		entity, err := booking.NewBooking(
			actor.UserID, in.CafeID, in.BookingDate, in.GuestNumber, in.Assignments, note, u.clock.Now(),
		)
		if err != nil {
			return mapDomainErr(err)
		}

		// The advisory lock serializes concurrent writes for this user and
		// date, so the user-overlap check below cannot race.
		if err := tx.LockUserDate(ctx, actor.UserID, entity.BookingDate()); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err := u.validator.Validate(ctx, tx, ValidationInput{
			UserID:      actor.UserID,
			CafeID:      in.CafeID,
			BookingDate: entity.BookingDate(),
			GuestNumber: in.GuestNumber,
			Assignments: in.Assignments,
		}); err != nil {
			return err
		}

		id, err := tx.Bookings().Create(ctx, entity)
		if err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				// Lost the race against a concurrent insert on the occupancy
				// constraint.
				return ErrTableAlreadyBooked
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		bookingID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	view, err := u.bookingQueries.GetByIDSystem(ctx, bookingID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	u.publish(ctx, "booking.created", view)
	return view, nil
}

func (u *bookingUseCaseImpl) Update(
	ctx context.Context,
	actor user.Actor,
	bookingID uuid.UUID,
	p UpdateBookingPatch,
) (*queries.BookingView, error) {
	var changed bool
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().BookingByID(ctx, bookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if !actor.IsStaff() && snap.UserID != actor.UserID {
			return ErrInsufficientPermissions
		}
		if !snap.Active && actor.Role != user.RoleAdmin {
			return ErrBookingInactive
		}

		ch := diffPatch(snap, p)
		if ch.isEmpty() {
			// Repeating the current state is a no-op, not an error.
			return nil
		}

		status := snap.Status
		if ch.Status != nil {
			status, err = u.policy.ApplyTransition(snap.Status, *ch.Status, actor.Role)
			if err != nil {
				return mapDomainErr(err)
			}
		}
		active := booking.ActiveFor(status)
		if ch.Active != nil && *ch.Active != active {
			if err := u.policy.ValidateActiveOverride(status, *ch.Active, actor.Role); err != nil {
				return mapDomainErr(err)
			}
			active = *ch.Active
		}

		cafeID := snap.CafeID
		if ch.CafeID != nil {
			if err := u.requireActiveCafe(ctx, tx, *ch.CafeID); err != nil {
				return err
			}
			cafeID = *ch.CafeID
		}

		bookingDate := snap.BookingDate
		if ch.BookingDate != nil {
			if err := booking.ValidateDate(*ch.BookingDate, u.clock.Now()); err != nil {
				return mapDomainErr(err)
			}
			bookingDate = *ch.BookingDate
		}

		guestNumber := snap.GuestNumber
		if ch.GuestNumber != nil {
			if *ch.GuestNumber <= 0 {
				return ErrInvalidGuestNumber
			}
			guestNumber = *ch.GuestNumber
		}

		assignments := snap.Assignments
		if ch.Assignments != nil {
			if err := booking.ValidateAssignmentSet(ch.Assignments); err != nil {
				return mapDomainErr(err)
			}
			assignments = ch.Assignments
		}

		// Availability only needs rechecking when the occupied footprint
		// moved: new tables, a new cafe or a new date.
		if ch.Assignments != nil || ch.CafeID != nil || ch.BookingDate != nil {
			if err := tx.LockUserDate(ctx, snap.UserID, bookingDate); err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
			if err := u.validator.Validate(ctx, tx, ValidationInput{
				ExcludeID:   &snap.ID,
				UserID:      snap.UserID,
				CafeID:      cafeID,
				BookingDate: bookingDate,
				GuestNumber: guestNumber,
				Assignments: assignments,
			}); err != nil {
				return err
			}
		}

		note, err := booking.NewNote(patch.Coalesce(ch.Note, snap.Note))
		if err != nil {
			return errs.Mark(err, ErrInvalidNote)
		}

		entity := booking.ReconstructBooking(
			snap.ID, snap.UserID, cafeID, bookingDate, guestNumber,
			status, active, note, assignments, snap.CreatedAt, u.clock.Now(),
		)
		if err := tx.Bookings().Update(ctx, entity); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return ErrTableAlreadyBooked
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		changed = true
		return nil
	})
	if err != nil {
		return nil, err
	}

	view, err := u.bookingQueries.GetByIDSystem(ctx, bookingID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if changed {
		u.publish(ctx, "booking.updated", view)
	}
	return view, nil
}

func (u *bookingUseCaseImpl) requireActiveCafe(ctx context.Context, tx shared.Tx, cafeID uuid.UUID) error {
	cafe, err := tx.Reads().CafeByID(ctx, cafeID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrCafeNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !cafe.Active {
		return ErrCafeInactive
	}
	return nil
}

func (u *bookingUseCaseImpl) publish(ctx context.Context, routingKey string, view *queries.BookingView) {
	event := BookingEvent{
		Type:        routingKey,
		BookingID:   view.ID,
		UserID:      view.UserID,
		CafeID:      view.CafeID,
		Status:      view.Status,
		BookingDate: view.BookingDate,
	}
	if err := u.publisher.Publish(ctx, routingKey, event); err != nil {
		slog.Warn("failed to publish booking event",
			"routingKey", routingKey, "bookingId", view.ID, "error", err)
	}
}

// diffPatch drops fields that match the stored booking so repeated requests
// become no-ops before any transition or availability rule fires. An explicit
// active flag is only a no-op while the status stays put: alongside a status
// change it must survive the diff so it is validated against the resulting
// status, not the stored one.
func diffPatch(snap *shared.BookingSnapshot, p UpdateBookingPatch) UpdateBookingPatch {
	var out UpdateBookingPatch
	if p.CafeID != nil && *p.CafeID != snap.CafeID {
		out.CafeID = p.CafeID
	}
	if p.BookingDate != nil && !sameDay(*p.BookingDate, snap.BookingDate) {
		out.BookingDate = p.BookingDate
	}
	if p.GuestNumber != nil && *p.GuestNumber != snap.GuestNumber {
		out.GuestNumber = p.GuestNumber
	}
	if p.Note != nil && *p.Note != snap.Note {
		out.Note = p.Note
	}
	if p.Status != nil && *p.Status != snap.Status {
		out.Status = p.Status
	}
	if p.Active != nil && (out.Status != nil || *p.Active != snap.Active) {
		out.Active = p.Active
	}
	if p.Assignments != nil && !sameAssignments(p.Assignments, snap.Assignments) {
		out.Assignments = p.Assignments
	}
	return out
}

func (p UpdateBookingPatch) isEmpty() bool {
	return p.CafeID == nil &&
		p.BookingDate == nil &&
		p.GuestNumber == nil &&
		p.Assignments == nil &&
		p.Note == nil &&
		p.Status == nil &&
		p.Active == nil
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func sameAssignments(a, b []booking.Assignment) bool {
	if len(a) != len(b) {
		return false
	}
	set := make(map[booking.Assignment]struct{}, len(a))
	for _, x := range a {
		set[x] = struct{}{}
	}
	for _, x := range b {
		if _, ok := set[x]; !ok {
			return false
		}
	}
	return true
}

func mapDomainErr(err error) error {
	switch {
	case errors.Is(err, booking.ErrPastDate):
		return ErrBookingPastDate
	case errors.Is(err, booking.ErrInvalidGuestNumber):
		return ErrInvalidGuestNumber
	case errors.Is(err, booking.ErrNoAssignments),
		errors.Is(err, booking.ErrDuplicateAssignment):
		return errs.Mark(err, ErrInvalidAssignments)
	case errors.Is(err, booking.ErrNoteTooLong):
		return ErrInvalidNote
	case errors.Is(err, booking.ErrInvalidStatus),
		errors.Is(err, booking.ErrInvalidTransition):
		return errs.Mark(err, ErrInvalidStatusTransition)
	case errors.Is(err, booking.ErrCannotActivateInactiveStatus):
		return ErrCannotActivateStatus
	case errors.Is(err, booking.ErrCannotDeactivateActiveStatus):
		return ErrCannotDeactivateStatus
	default:
		return errs.Mark(err, ErrDomainValidation)
	}
}
