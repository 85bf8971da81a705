package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from    ProjectStatus
		to      ProjectStatus
		allowed bool
	}{
		{ProjectStatusPending, ProjectStatusScheduled, true},
		{ProjectStatusPending, ProjectStatusInProgress, true},
		{ProjectStatusPending, ProjectStatusCancelled, true},
		{ProjectStatusPending, ProjectStatusCompleted, false},
		{ProjectStatusPending, ProjectStatusOnHold, false},
		{ProjectStatusScheduled, ProjectStatusInProgress, true},
		{ProjectStatusScheduled, ProjectStatusOnHold, true},
		{ProjectStatusScheduled, ProjectStatusCompleted, false},
		{ProjectStatusInProgress, ProjectStatusCompleted, true},
		{ProjectStatusInProgress, ProjectStatusOnHold, true},
		{ProjectStatusInProgress, ProjectStatusScheduled, false},
		{ProjectStatusOnHold, ProjectStatusScheduled, true},
		{ProjectStatusOnHold, ProjectStatusInProgress, true},
		{ProjectStatusOnHold, ProjectStatusCompleted, false},
		{ProjectStatusCompleted, ProjectStatusInProgress, false},
		{ProjectStatusCompleted, ProjectStatusCancelled, false},
		{ProjectStatusCancelled, ProjectStatusPending, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.allowed, CanTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestCanTransition_SameStatus(t *testing.T) {
	assert.False(t, CanTransition(ProjectStatusPending, ProjectStatusPending))
	assert.False(t, CanTransition(ProjectStatusInProgress, ProjectStatusInProgress))
}

func TestValidateProjectStatus(t *testing.T) {
	assert.NoError(t, ValidateProjectStatus(ProjectStatusPending))
	assert.NoError(t, ValidateProjectStatus(ProjectStatusCompleted))
	assert.ErrorIs(t, ValidateProjectStatus("bogus"), ErrInvalidProjectStatus)
}
