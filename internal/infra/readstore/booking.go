package readstore

import (
	"context"
	"fmt"
	"time"

	"cafe-reservation/internal/domain/booking"
	"cafe-reservation/internal/infra"
	"cafe-reservation/internal/infra/db"
	"cafe-reservation/internal/pkg/pgconv"
	"cafe-reservation/internal/usecase/queries"
	"cafe-reservation/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(db db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: db}
}

const bookingColumns = `id, user_id, cafe_id, booking_date, guest_number, status, active, note, created_at, updated_at`

type bookingRow struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	CafeID      uuid.UUID
	BookingDate pgtype.Date
	GuestNumber int
	Status      string
	Active      bool
	Note        pgtype.Text
	CreatedAt   pgtype.Timestamptz
	UpdatedAt   pgtype.Timestamptz
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row, err := r.findRow(ctx, id)
	if err != nil {
		return nil, err
	}

	assignments, err := r.assignmentsFor(ctx, []uuid.UUID{id})
	if err != nil {
		return nil, err
	}

	return rowToBookingView(row, assignments[id]), nil
}

func (r *BookingReadStore) List(ctx context.Context, filter queries.BookingListFilter) ([]*queries.BookingView, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings`
	var args []any
	var conds []string

	if filter.UserID != nil {
		args = append(args, *filter.UserID)
		conds = append(conds, fmt.Sprintf("user_id = $%d", len(args)))
	}
	if filter.CafeID != nil {
		args = append(args, *filter.CafeID)
		conds = append(conds, fmt.Sprintf("cafe_id = $%d", len(args)))
	}
	for i, cond := range conds {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}
	query += " ORDER BY booking_date DESC, created_at DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	var result []*queries.BookingView
	var ids []uuid.UUID
	for rows.Next() {
		var row bookingRow
		if err := scanBookingRow(rows, &row); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		result = append(result, rowToBookingView(&row, nil))
		ids = append(ids, row.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate bookings", err)
	}

	assignments, err := r.assignmentsFor(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, view := range result {
		view.TableSlots = assignments[view.ID]
	}

	return result, nil
}

// SnapshotByID is the command-side read: same row, domain-typed fields.
func (r *BookingReadStore) SnapshotByID(ctx context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	row, err := r.findRow(ctx, id)
	if err != nil {
		return nil, err
	}

	assignments, err := r.assignmentsFor(ctx, []uuid.UUID{id})
	if err != nil {
		return nil, err
	}

	domainAssignments := make([]booking.Assignment, 0, len(assignments[id]))
	for _, ts := range assignments[id] {
		domainAssignments = append(domainAssignments, booking.Assignment{
			TableID: ts.TableID,
			SlotID:  ts.SlotID,
		})
	}

	var note string
	if row.Note.Valid {
		note = row.Note.String
	}

	return &shared.BookingSnapshot{
		ID:          row.ID,
		UserID:      row.UserID,
		CafeID:      row.CafeID,
		BookingDate: pgconv.DateFromPgtype(row.BookingDate),
		GuestNumber: row.GuestNumber,
		Status:      booking.Status(row.Status),
		Active:      row.Active,
		Note:        note,
		Assignments: domainAssignments,
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:   pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

// IsTableOccupied checks the same predicate the occupancy uniqueness
// constraint enforces, so validation failures surface before the insert
// does.
func (r *BookingReadStore) IsTableOccupied(
	ctx context.Context,
	tableID, slotID uuid.UUID,
	date time.Time,
	exclude *uuid.UUID,
) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1
			FROM booking_slots bs
			WHERE bs.table_id = $1
			  AND bs.slot_id = $2
			  AND bs.booking_date = $3
			  AND bs.occupying
			  AND ($4::uuid IS NULL OR bs.booking_id <> $4)
		)`

	var occupied bool
	err := r.db.QueryRow(ctx, query,
		tableID, slotID, pgconv.DateToPgtype(date), pgconv.UUIDPtrToPgtype(exclude),
	).Scan(&occupied)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check table occupancy", err)
	}
	return occupied, nil
}

// HasUserOverlap reports whether the user holds any occupying booking on the
// date whose slot window intersects [start, end). Touching windows do not
// intersect.
func (r *BookingReadStore) HasUserOverlap(
	ctx context.Context,
	userID uuid.UUID,
	date time.Time,
	interval booking.TimeInterval,
	exclude *uuid.UUID,
) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1
			FROM bookings b
			JOIN booking_slots bs ON bs.booking_id = b.id
			JOIN slots s ON s.id = bs.slot_id
			WHERE b.user_id = $1
			  AND b.booking_date = $2
			  AND bs.occupying
			  AND s.start_minute < $4
			  AND $3 < s.end_minute
			  AND ($5::uuid IS NULL OR b.id <> $5)
		)`

	var busy bool
	err := r.db.QueryRow(ctx, query,
		userID, pgconv.DateToPgtype(date),
		int(interval.Start()), int(interval.End()),
		pgconv.UUIDPtrToPgtype(exclude),
	).Scan(&busy)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check user overlap", err)
	}
	return busy, nil
}

func (r *BookingReadStore) findRow(ctx context.Context, id uuid.UUID) (*bookingRow, error) {
	var row bookingRow
	err := scanBookingRow(r.db.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, id), &row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	return &row, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBookingRow(s rowScanner, row *bookingRow) error {
	return s.Scan(
		&row.ID, &row.UserID, &row.CafeID, &row.BookingDate, &row.GuestNumber,
		&row.Status, &row.Active, &row.Note, &row.CreatedAt, &row.UpdatedAt,
	)
}

func (r *BookingReadStore) assignmentsFor(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID][]queries.TableSlotView, error) {
	if len(ids) == 0 {
		return map[uuid.UUID][]queries.TableSlotView{}, nil
	}

	rows, err := r.db.Query(ctx, `
		SELECT booking_id, table_id, slot_id
		FROM booking_slots
		WHERE booking_id = ANY($1)
		ORDER BY table_id, slot_id`, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load booking assignments", err)
	}
	defer rows.Close()

	result := make(map[uuid.UUID][]queries.TableSlotView, len(ids))
	for rows.Next() {
		var bookingID uuid.UUID
		var ts queries.TableSlotView
		if err := rows.Scan(&bookingID, &ts.TableID, &ts.SlotID); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking assignment", err)
		}
		result[bookingID] = append(result[bookingID], ts)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking assignments", err)
	}
	return result, nil
}

func rowToBookingView(row *bookingRow, tableSlots []queries.TableSlotView) *queries.BookingView {
	return &queries.BookingView{
		ID:          row.ID,
		UserID:      row.UserID,
		CafeID:      row.CafeID,
		BookingDate: pgconv.DateFromPgtype(row.BookingDate),
		GuestNumber: row.GuestNumber,
		Status:      row.Status,
		IsActive:    row.Active,
		Note:        pgconv.StringPtrFromPgtype(row.Note),
		TableSlots:  tableSlots,
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:   pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
