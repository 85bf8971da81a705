package domain

import (
	"time"

	"github.com/google/uuid"
)

// Agent is a crew member who can be assigned to schedule events.
type Agent struct {
	ID           uuid.UUID `json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	ContractorID uuid.UUID `json:"contractor_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Role         string    `json:"role"`
	Active       bool      `json:"active"`
}

// Event is a schedule entry, optionally tied to an agent and a project.
type Event struct {
	ID           uuid.UUID  `json:"id"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	ContractorID uuid.UUID  `json:"contractor_id"`
	AgentID      *uuid.UUID `json:"agent_id"`
	ProjectID    *uuid.UUID `json:"project_id"`
	Title        string     `json:"title"`
	Notes        string     `json:"notes"`
	StartsAt     time.Time  `json:"starts_at"`
	EndsAt       time.Time  `json:"ends_at"`
}

// Overlaps tests two half-open intervals [aStart, aEnd) and
// [bStart, bEnd). Back-to-back events do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}
