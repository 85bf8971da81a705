package dto

import (
	"time"

	"github.com/google/uuid"

	"contractor-service/internal/core/domain"
)

type EstimateItemRequest struct {
	Description    string `json:"description" binding:"required,max=300"`
	Quantity       int    `json:"quantity" binding:"required,min=1"`
	UnitPriceCents int64  `json:"unit_price_cents" binding:"min=0"`
}

type CreateEstimateRequest struct {
	ClientID   uuid.UUID             `json:"client_id" binding:"required"`
	ProjectID  *uuid.UUID            `json:"project_id"`
	Title      string                `json:"title" binding:"required,max=200"`
	Notes      string                `json:"notes"`
	ValidUntil *time.Time            `json:"valid_until"`
	Items      []EstimateItemRequest `json:"items" binding:"required,min=1,dive"`
}

type UpdateEstimateRequest struct {
	Title      *string               `json:"title"`
	Notes      *string               `json:"notes"`
	Status     *string               `json:"status"`
	ValidUntil *time.Time            `json:"valid_until"`
	Items      []EstimateItemRequest `json:"items" binding:"omitempty,min=1,dive"`
}

type EstimateItemResponse struct {
	ID             uuid.UUID `json:"id"`
	Description    string    `json:"description"`
	Quantity       int       `json:"quantity"`
	UnitPriceCents int64     `json:"unit_price_cents"`
	AmountCents    int64     `json:"amount_cents"`
}

type EstimateResponse struct {
	ID         uuid.UUID              `json:"id"`
	CreatedAt  string                 `json:"created_at"`
	UpdatedAt  string                 `json:"updated_at"`
	ClientID   uuid.UUID              `json:"client_id"`
	ProjectID  *uuid.UUID             `json:"project_id,omitempty"`
	Title      string                 `json:"title"`
	Notes      string                 `json:"notes"`
	Status     string                 `json:"status"`
	TotalCents int64                  `json:"total_cents"`
	ValidUntil *string                `json:"valid_until,omitempty"`
	Items      []EstimateItemResponse `json:"items"`
}

type ListEstimatesResponse struct {
	Items      []EstimateResponse `json:"items"`
	Total      int                `json:"total"`
	PageSize   int                `json:"page_size"`
	NextOffset int                `json:"next_offset"`
}

func ToEstimateItems(items []EstimateItemRequest) []domain.EstimateItem {
	out := make([]domain.EstimateItem, 0, len(items))
	for _, item := range items {
		out = append(out, domain.EstimateItem{
			Description:    item.Description,
			Quantity:       item.Quantity,
			UnitPriceCents: item.UnitPriceCents,
		})
	}
	return out
}

func ToEstimateResponse(e *domain.Estimate) EstimateResponse {
	resp := EstimateResponse{
		ID:         e.ID,
		CreatedAt:  e.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  e.UpdatedAt.Format(time.RFC3339),
		ClientID:   e.ClientID,
		ProjectID:  e.ProjectID,
		Title:      e.Title,
		Notes:      e.Notes,
		Status:     string(e.Status),
		TotalCents: e.TotalCents,
		Items:      make([]EstimateItemResponse, 0, len(e.Items)),
	}
	if e.ValidUntil != nil {
		v := e.ValidUntil.Format(time.RFC3339)
		resp.ValidUntil = &v
	}
	for _, item := range e.Items {
		resp.Items = append(resp.Items, EstimateItemResponse{
			ID:             item.ID,
			Description:    item.Description,
			Quantity:       item.Quantity,
			UnitPriceCents: item.UnitPriceCents,
			AmountCents:    item.AmountCents(),
		})
	}
	return resp
}
