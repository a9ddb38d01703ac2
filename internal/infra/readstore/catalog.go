package readstore

import (
	"context"

	"cafe-reservation/internal/domain/booking"
	"cafe-reservation/internal/infra"
	"cafe-reservation/internal/infra/db"
	"cafe-reservation/internal/pkg/pgconv"
	"cafe-reservation/internal/usecase/queries"
	"cafe-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

type CatalogReadStore struct {
	db db.DBTX
}

func NewCatalogReadStore(db db.DBTX) *CatalogReadStore {
	return &CatalogReadStore{db: db}
}

func (r *CatalogReadStore) ListCafes(ctx context.Context) ([]*queries.CafeView, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, active FROM cafes ORDER BY name`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list cafes", err)
	}
	defer rows.Close()

	var result []*queries.CafeView
	for rows.Next() {
		var view queries.CafeView
		if err := rows.Scan(&view.ID, &view.Name, &view.Active); err != nil {
			return nil, infra.WrapRepoErr("failed to scan cafe row", err)
		}
		result = append(result, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate cafes", err)
	}
	return result, nil
}

func (r *CatalogReadStore) ListSlotsByCafe(ctx context.Context, cafeID uuid.UUID) ([]*queries.SlotView, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, cafe_id, start_minute, end_minute, active
		FROM slots
		WHERE cafe_id = $1
		ORDER BY start_minute`, cafeID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list slots", err)
	}
	defer rows.Close()

	var result []*queries.SlotView
	for rows.Next() {
		var view queries.SlotView
		var startMinute, endMinute int
		if err := rows.Scan(&view.ID, &view.CafeID, &startMinute, &endMinute, &view.Active); err != nil {
			return nil, infra.WrapRepoErr("failed to scan slot row", err)
		}
		view.StartTime = booking.TimeOfDay(startMinute).String()
		view.EndTime = booking.TimeOfDay(endMinute).String()
		result = append(result, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate slots", err)
	}
	return result, nil
}

func (r *CatalogReadStore) CafeByID(ctx context.Context, id uuid.UUID) (*shared.CafeSnapshot, error) {
	var snap shared.CafeSnapshot
	err := r.db.QueryRow(ctx, `SELECT id, name, active FROM cafes WHERE id = $1`, id).
		Scan(&snap.ID, &snap.Name, &snap.Active)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("cafe not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find cafe by ID", err)
	}
	return &snap, nil
}

func (r *CatalogReadStore) TableByID(ctx context.Context, id uuid.UUID) (*shared.TableSnapshot, error) {
	var snap shared.TableSnapshot
	err := r.db.QueryRow(ctx, `SELECT id, cafe_id, seats, active FROM cafe_tables WHERE id = $1`, id).
		Scan(&snap.ID, &snap.CafeID, &snap.Seats, &snap.Active)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("table not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find table by ID", err)
	}
	return &snap, nil
}

func (r *CatalogReadStore) SlotByID(ctx context.Context, id uuid.UUID) (*shared.SlotSnapshot, error) {
	var snap shared.SlotSnapshot
	var startMinute, endMinute int
	err := r.db.QueryRow(ctx, `SELECT id, cafe_id, start_minute, end_minute, active FROM slots WHERE id = $1`, id).
		Scan(&snap.ID, &snap.CafeID, &startMinute, &endMinute, &snap.Active)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("slot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find slot by ID", err)
	}

	interval, err := booking.NewTimeInterval(booking.TimeOfDay(startMinute), booking.TimeOfDay(endMinute))
	if err != nil {
		return nil, infra.WrapRepoErr("slot has invalid time window", err)
	}
	snap.Interval = interval

	return &snap, nil
}
