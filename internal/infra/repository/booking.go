package repository

import (
	"context"
	"errors"

	"cafe-reservation/internal/domain/booking"
	"cafe-reservation/internal/infra"
	"cafe-reservation/internal/infra/db"
	"cafe-reservation/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	pgErrCodeUniqueViolation     = "23505"
	pgErrCodeForeignKeyViolation = "23503"

	// Partial unique index over occupying booking_slots rows. Hitting it
	// means another transaction claimed the same (table, slot, date) first.
	occupancyConstraint = "booking_slots_occupied_key"
)

type BookingRepository struct {
	db db.DBTX
}

func NewBookingRepository(db db.DBTX) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) (uuid.UUID, error) {
	_, err := r.db.Exec(ctx, `
		INSERT INTO bookings (id, user_id, cafe_id, booking_date, guest_number, status, active, note, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now(), now())`,
		b.ID(), b.UserID(), b.CafeID(), pgconv.DateToPgtype(b.BookingDate()),
		b.GuestNumber(), b.Status().String(), b.IsActive(), noteToPgtype(b.Note()),
	)
	if err != nil {
		return uuid.Nil, wrapWriteErr("failed to insert booking", err)
	}

	if err := r.insertAssignments(ctx, b); err != nil {
		return uuid.Nil, err
	}

	return b.ID(), nil
}

func (r *BookingRepository) Update(ctx context.Context, b *booking.Booking) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE bookings
		SET cafe_id = $2, booking_date = $3, guest_number = $4, status = $5, active = $6, note = $7, updated_at = now()
		WHERE id = $1`,
		b.ID(), b.CafeID(), pgconv.DateToPgtype(b.BookingDate()),
		b.GuestNumber(), b.Status().String(), b.IsActive(), noteToPgtype(b.Note()),
	)
	if err != nil {
		return wrapWriteErr("failed to update booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}

	// Assignment rows are replaced wholesale so the denormalized occupancy
	// columns always reflect the booking row.
	if _, err := r.db.Exec(ctx, `DELETE FROM booking_slots WHERE booking_id = $1`, b.ID()); err != nil {
		return wrapWriteErr("failed to clear booking assignments", err)
	}
	return r.insertAssignments(ctx, b)
}

func (r *BookingRepository) insertAssignments(ctx context.Context, b *booking.Booking) error {
	for _, a := range b.Assignments() {
		_, err := r.db.Exec(ctx, `
			INSERT INTO booking_slots (booking_id, table_id, slot_id, booking_date, occupying)
			VALUES ($1, $2, $3, $4, $5)`,
			b.ID(), a.TableID, a.SlotID, pgconv.DateToPgtype(b.BookingDate()), b.Occupying(),
		)
		if err != nil {
			return wrapWriteErr("failed to insert booking assignment", err)
		}
	}
	return nil
}

func noteToPgtype(n booking.Note) pgtype.Text {
	if n.IsEmpty() {
		return pgtype.Text{Valid: false}
	}
	return pgconv.StringToPgtype(n.String())
}

func wrapWriteErr(msg string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgErrCodeUniqueViolation:
			if pgErr.ConstraintName == occupancyConstraint {
				return infra.WrapRepoErr(msg, err, infra.KindConflict)
			}
			return infra.WrapRepoErr(msg, err, infra.KindDuplicateKey)
		case pgErrCodeForeignKeyViolation:
			return infra.WrapRepoErr(msg, err, infra.KindForeignKeyViolated)
		}
	}
	return infra.WrapRepoErr(msg, err)
}
