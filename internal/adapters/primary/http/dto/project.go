package dto

import (
	"time"

	"github.com/google/uuid"

	"contractor-service/internal/core/domain"
)

type CreateProjectRequest struct {
	ClientID    uuid.UUID  `json:"client_id" binding:"required"`
	Name        string     `json:"name" binding:"required,max=200"`
	Description string     `json:"description"`
	BudgetCents int64      `json:"budget_cents" binding:"omitempty,min=0"`
	StartsAt    *time.Time `json:"starts_at"`
	EndsAt      *time.Time `json:"ends_at"`
}

type UpdateProjectRequest struct {
	Name        *string    `json:"name"`
	Description *string    `json:"description"`
	BudgetCents *int64     `json:"budget_cents"`
	StartsAt    *time.Time `json:"starts_at"`
	EndsAt      *time.Time `json:"ends_at"`
}

type TransitionProjectRequest struct {
	Status string `json:"status" binding:"required"`
}

type ProjectResponse struct {
	ID          uuid.UUID `json:"id"`
	CreatedAt   string    `json:"created_at"`
	UpdatedAt   string    `json:"updated_at"`
	ClientID    uuid.UUID `json:"client_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	BudgetCents int64     `json:"budget_cents"`
	StartsAt    *string   `json:"starts_at,omitempty"`
	EndsAt      *string   `json:"ends_at,omitempty"`
}

type ListProjectsResponse struct {
	Items      []ProjectResponse `json:"items"`
	Total      int               `json:"total"`
	PageSize   int               `json:"page_size"`
	NextOffset int               `json:"next_offset"`
}

func ToProjectResponse(p *domain.Project) ProjectResponse {
	resp := ProjectResponse{
		ID:          p.ID,
		CreatedAt:   p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   p.UpdatedAt.Format(time.RFC3339),
		ClientID:    p.ClientID,
		Name:        p.Name,
		Description: p.Description,
		Status:      string(p.Status),
		BudgetCents: p.BudgetCents,
	}
	if p.StartsAt != nil {
		s := p.StartsAt.Format(time.RFC3339)
		resp.StartsAt = &s
	}
	if p.EndsAt != nil {
		e := p.EndsAt.Format(time.RFC3339)
		resp.EndsAt = &e
	}
	return resp
}
