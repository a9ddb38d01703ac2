package response

import (
	"cafe-reservation/internal/usecase/queries"

	"github.com/google/uuid"
)

type CafeResponse struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Active bool      `json:"active"`
}

type SlotResponse struct {
	ID        uuid.UUID `json:"id"`
	CafeID    uuid.UUID `json:"cafeId"`
	StartTime string    `json:"startTime"`
	EndTime   string    `json:"endTime"`
	Active    bool      `json:"active"`
}

func FromCafeViews(views []*queries.CafeView) []*CafeResponse {
	result := make([]*CafeResponse, len(views))
	for i, view := range views {
		result[i] = &CafeResponse{
			ID:     view.ID,
			Name:   view.Name,
			Active: view.Active,
		}
	}
	return result
}

func FromSlotViews(views []*queries.SlotView) []*SlotResponse {
	result := make([]*SlotResponse, len(views))
	for i, view := range views {
		result[i] = &SlotResponse{
			ID:        view.ID,
			CafeID:    view.CafeID,
			StartTime: view.StartTime,
			EndTime:   view.EndTime,
			Active:    view.Active,
		}
	}
	return result
}
