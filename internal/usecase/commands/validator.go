package commands

import (
	"context"
	"time"

	"cafe-reservation/internal/domain/booking"
	"cafe-reservation/internal/infra"
	"cafe-reservation/internal/pkg/errs"
	"cafe-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

// ValidationInput carries everything the availability checks need. ExcludeID
// is set on updates so the booking being modified does not conflict with
// itself.
type ValidationInput struct {
	ExcludeID   *uuid.UUID
	UserID      uuid.UUID
	CafeID      uuid.UUID
	BookingDate time.Time
	GuestNumber int
	Assignments []booking.Assignment
}

// AssignmentValidator runs the per-assignment existence, activity and
// availability checks. It must be called inside a unit of work, after the
// (user, date) advisory lock is held, so its verdict stays valid until
// commit.
type AssignmentValidator struct{}

func NewAssignmentValidator() *AssignmentValidator {
	return &AssignmentValidator{}
}

func (v *AssignmentValidator) Validate(ctx context.Context, tx shared.Tx, in ValidationInput) error {
	reads := tx.Reads()

	// Distinct tables only: booking the same table for two slots counts its
	// seats once.
	seatsByTable := make(map[uuid.UUID]int, len(in.Assignments))

	for _, a := range in.Assignments {
		table, err := reads.TableByID(ctx, a.TableID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrTableNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if table.CafeID != in.CafeID {
			// A table from another cafe is indistinguishable from a missing one.
			return ErrTableNotFound
		}
		if !table.Active {
			return ErrTableInactive
		}

		slot, err := reads.SlotByID(ctx, a.SlotID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrSlotNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if slot.CafeID != in.CafeID {
			return ErrSlotNotFound
		}
		if !slot.Active {
			return ErrSlotInactive
		}

		occupied, err := reads.IsTableOccupied(ctx, a.TableID, a.SlotID, in.BookingDate, in.ExcludeID)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if occupied {
			return ErrTableAlreadyBooked
		}

		busy, err := reads.HasUserOverlap(ctx, in.UserID, in.BookingDate, slot.Interval, in.ExcludeID)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if busy {
			return ErrUserAlreadyBooked
		}

		seatsByTable[table.ID] = table.Seats
	}

	totalSeats := 0
	for _, seats := range seatsByTable {
		totalSeats += seats
	}
	if in.GuestNumber > totalSeats {
		return ErrNotEnoughSeats
	}

	return nil
}
