package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"contractor-service/internal/core/domain"
	"contractor-service/internal/testutil"
)

func TestAgentService_Create(t *testing.T) {
	repo := new(testutil.MockAgentRepo)
	svc := NewAgentService(repo, new(testutil.MockEventRepo))

	contractorID := uuid.New()
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Agent")).Return(nil)

	agent, err := svc.Create(context.Background(), contractorID, "Sam Reyes", "", "", "foreman")
	assert.NoError(t, err)
	assert.True(t, agent.Active)
	assert.Equal(t, contractorID, agent.ContractorID)
}

func TestAgentService_Create_EmptyName(t *testing.T) {
	svc := NewAgentService(new(testutil.MockAgentRepo), new(testutil.MockEventRepo))

	_, err := svc.Create(context.Background(), uuid.New(), "", "", "", "")
	assert.ErrorIs(t, err, domain.ErrInvalidAgentName)
}

func TestAgentService_Schedule(t *testing.T) {
	repo := new(testutil.MockAgentRepo)
	eventRepo := new(testutil.MockEventRepo)
	svc := NewAgentService(repo, eventRepo)

	contractorID := uuid.New()
	id := uuid.New()
	from := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 7)

	repo.On("GetByID", mock.Anything, contractorID, id).Return(&domain.Agent{ID: id}, nil)
	eventRepo.On("ListOverlapping", mock.Anything, contractorID, id, from, to, uuid.Nil).
		Return([]*domain.Event{{ID: uuid.New()}, {ID: uuid.New()}}, nil)

	events, err := svc.Schedule(context.Background(), contractorID, id, from, to)
	assert.NoError(t, err)
	assert.Len(t, events, 2)
	eventRepo.AssertExpectations(t)
}

func TestAgentService_Schedule_InvalidRange(t *testing.T) {
	svc := NewAgentService(new(testutil.MockAgentRepo), new(testutil.MockEventRepo))

	at := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	_, err := svc.Schedule(context.Background(), uuid.New(), uuid.New(), at, at)
	assert.ErrorIs(t, err, domain.ErrInvalidTimeRange)
}

func TestAgentService_Schedule_UnknownAgent(t *testing.T) {
	repo := new(testutil.MockAgentRepo)
	svc := NewAgentService(repo, new(testutil.MockEventRepo))

	contractorID := uuid.New()
	id := uuid.New()
	repo.On("GetByID", mock.Anything, contractorID, id).Return(nil, domain.ErrAgentNotFound)

	from := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	_, err := svc.Schedule(context.Background(), contractorID, id, from, from.Add(time.Hour))
	assert.ErrorIs(t, err, domain.ErrAgentNotFound)
}
