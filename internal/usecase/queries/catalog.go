package queries

import (
	"context"

	"cafe-reservation/internal/pkg/errs"

	"github.com/google/uuid"
)

type CafeView struct {
	ID     uuid.UUID
	Name   string
	Active bool
}

type SlotView struct {
	ID        uuid.UUID
	CafeID    uuid.UUID
	StartTime string
	EndTime   string
	Active    bool
}

type CatalogReadStore interface {
	ListCafes(ctx context.Context) ([]*CafeView, error)
	ListSlotsByCafe(ctx context.Context, cafeID uuid.UUID) ([]*SlotView, error)
}

type CatalogQueries interface {
	ListCafes(ctx context.Context) ([]*CafeView, error)
	ListSlots(ctx context.Context, cafeID uuid.UUID) ([]*SlotView, error)
}

type catalogQueriesImpl struct {
	store CatalogReadStore
}

func NewCatalogQueries(store CatalogReadStore) CatalogQueries {
	return &catalogQueriesImpl{store: store}
}

func (q *catalogQueriesImpl) ListCafes(ctx context.Context) ([]*CafeView, error) {
	cafes, err := q.store.ListCafes(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	return cafes, nil
}

func (q *catalogQueriesImpl) ListSlots(ctx context.Context, cafeID uuid.UUID) ([]*SlotView, error) {
	slots, err := q.store.ListSlotsByCafe(ctx, cafeID)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	return slots, nil
}
