package dto

import (
	"time"

	"github.com/google/uuid"

	"contractor-service/internal/core/domain"
)

type CreateAgentRequest struct {
	Name  string `json:"name" binding:"required,max=150"`
	Email string `json:"email" binding:"omitempty,email"`
	Phone string `json:"phone"`
	Role  string `json:"role"`
}

type UpdateAgentRequest struct {
	Name   *string `json:"name"`
	Email  *string `json:"email"`
	Phone  *string `json:"phone"`
	Role   *string `json:"role"`
	Active *bool   `json:"active"`
}

type AgentResponse struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt string    `json:"created_at"`
	UpdatedAt string    `json:"updated_at"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Role      string    `json:"role"`
	Active    bool      `json:"active"`
}

type ListAgentsResponse struct {
	Items      []AgentResponse `json:"items"`
	Total      int             `json:"total"`
	PageSize   int             `json:"page_size"`
	NextOffset int             `json:"next_offset"`
}

type AgentScheduleResponse struct {
	AgentID uuid.UUID       `json:"agent_id"`
	From    string          `json:"from"`
	To      string          `json:"to"`
	Events  []EventResponse `json:"events"`
}

func ToAgentResponse(a *domain.Agent) AgentResponse {
	return AgentResponse{
		ID:        a.ID,
		CreatedAt: a.CreatedAt.Format(time.RFC3339),
		UpdatedAt: a.UpdatedAt.Format(time.RFC3339),
		Name:      a.Name,
		Email:     a.Email,
		Phone:     a.Phone,
		Role:      a.Role,
		Active:    a.Active,
	}
}
