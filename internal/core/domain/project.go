package domain

import (
	"time"

	"github.com/google/uuid"
)

type ProjectStatus string

const (
	ProjectStatusPending    ProjectStatus = "pending"
	ProjectStatusScheduled  ProjectStatus = "scheduled"
	ProjectStatusInProgress ProjectStatus = "in_progress"
	ProjectStatusOnHold     ProjectStatus = "on_hold"
	ProjectStatusCompleted  ProjectStatus = "completed"
	ProjectStatusCancelled  ProjectStatus = "cancelled"
)

// projectTransitions enumerates the allowed status moves. Completed and
// cancelled are terminal.
var projectTransitions = map[ProjectStatus][]ProjectStatus{
	ProjectStatusPending:    {ProjectStatusScheduled, ProjectStatusInProgress, ProjectStatusCancelled},
	ProjectStatusScheduled:  {ProjectStatusInProgress, ProjectStatusOnHold, ProjectStatusCancelled},
	ProjectStatusInProgress: {ProjectStatusOnHold, ProjectStatusCompleted, ProjectStatusCancelled},
	ProjectStatusOnHold:     {ProjectStatusScheduled, ProjectStatusInProgress, ProjectStatusCancelled},
}

func ValidateProjectStatus(status ProjectStatus) error {
	switch status {
	case ProjectStatusPending, ProjectStatusScheduled, ProjectStatusInProgress,
		ProjectStatusOnHold, ProjectStatusCompleted, ProjectStatusCancelled:
		return nil
	}
	return ErrInvalidProjectStatus
}

// CanTransition reports whether a project may move from one status to
// another. Same-status "transitions" are rejected.
func CanTransition(from, to ProjectStatus) bool {
	for _, allowed := range projectTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

type Project struct {
	ID           uuid.UUID     `json:"id"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
	ContractorID uuid.UUID     `json:"contractor_id"`
	ClientID     uuid.UUID     `json:"client_id"`
	Name         string        `json:"name"`
	Description  string        `json:"description"`
	Status       ProjectStatus `json:"status"`
	BudgetCents  int64         `json:"budget_cents"`
	StartsAt     *time.Time    `json:"starts_at"`
	EndsAt       *time.Time    `json:"ends_at"`
}
