package dto

import (
	"time"

	"github.com/google/uuid"

	"contractor-service/internal/core/domain"
)

type CreateEventRequest struct {
	AgentID   *uuid.UUID `json:"agent_id"`
	ProjectID *uuid.UUID `json:"project_id"`
	Title     string     `json:"title" binding:"required,max=200"`
	Notes     string     `json:"notes"`
	StartsAt  time.Time  `json:"starts_at" binding:"required"`
	EndsAt    time.Time  `json:"ends_at" binding:"required"`
}

type UpdateEventRequest struct {
	AgentID      *uuid.UUID `json:"agent_id"`
	ClearAgent   bool       `json:"clear_agent"`
	ProjectID    *uuid.UUID `json:"project_id"`
	ClearProject bool       `json:"clear_project"`
	Title        *string    `json:"title"`
	Notes        *string    `json:"notes"`
	StartsAt     *time.Time `json:"starts_at"`
	EndsAt       *time.Time `json:"ends_at"`
}

type EventResponse struct {
	ID        uuid.UUID  `json:"id"`
	CreatedAt string     `json:"created_at"`
	UpdatedAt string     `json:"updated_at"`
	AgentID   *uuid.UUID `json:"agent_id,omitempty"`
	ProjectID *uuid.UUID `json:"project_id,omitempty"`
	Title     string     `json:"title"`
	Notes     string     `json:"notes"`
	StartsAt  string     `json:"starts_at"`
	EndsAt    string     `json:"ends_at"`
}

type ListEventsResponse struct {
	Items      []EventResponse `json:"items"`
	Total      int             `json:"total"`
	PageSize   int             `json:"page_size"`
	NextOffset int             `json:"next_offset"`
}

func ToEventResponse(e *domain.Event) EventResponse {
	return EventResponse{
		ID:        e.ID,
		CreatedAt: e.CreatedAt.Format(time.RFC3339),
		UpdatedAt: e.UpdatedAt.Format(time.RFC3339),
		AgentID:   e.AgentID,
		ProjectID: e.ProjectID,
		Title:     e.Title,
		Notes:     e.Notes,
		StartsAt:  e.StartsAt.Format(time.RFC3339),
		EndsAt:    e.EndsAt.Format(time.RFC3339),
	}
}
