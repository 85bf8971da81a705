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

func TestEventService_Create(t *testing.T) {
	repo := new(testutil.MockEventRepo)
	agentRepo := new(testutil.MockAgentRepo)
	svc := NewEventService(repo, agentRepo, new(testutil.MockProjectRepo))

	contractorID := uuid.New()
	agentID := uuid.New()
	from := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	to := from.Add(4 * time.Hour)

	agentRepo.On("GetByID", mock.Anything, contractorID, agentID).Return(&domain.Agent{ID: agentID}, nil)
	repo.On("ListOverlapping", mock.Anything, contractorID, agentID, from, to, uuid.Nil).Return([]*domain.Event{}, nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Event")).Return(nil)

	event, err := svc.Create(context.Background(), contractorID, &agentID, nil, "Site visit", "", from, to)
	assert.NoError(t, err)
	assert.Equal(t, &agentID, event.AgentID)
	repo.AssertExpectations(t)
}

func TestEventService_Create_InvalidRange(t *testing.T) {
	svc := NewEventService(new(testutil.MockEventRepo), new(testutil.MockAgentRepo), new(testutil.MockProjectRepo))

	at := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	_, err := svc.Create(context.Background(), uuid.New(), nil, nil, "Site visit", "", at, at)
	assert.ErrorIs(t, err, domain.ErrInvalidTimeRange)
}

func TestEventService_Create_Conflict(t *testing.T) {
	repo := new(testutil.MockEventRepo)
	agentRepo := new(testutil.MockAgentRepo)
	svc := NewEventService(repo, agentRepo, new(testutil.MockProjectRepo))

	contractorID := uuid.New()
	agentID := uuid.New()
	from := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	to := from.Add(2 * time.Hour)

	agentRepo.On("GetByID", mock.Anything, contractorID, agentID).Return(&domain.Agent{ID: agentID}, nil)
	repo.On("ListOverlapping", mock.Anything, contractorID, agentID, from, to, uuid.Nil).Return([]*domain.Event{{ID: uuid.New()}}, nil)

	_, err := svc.Create(context.Background(), contractorID, &agentID, nil, "Site visit", "", from, to)
	assert.ErrorIs(t, err, domain.ErrScheduleConflict)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestEventService_Create_NoAgentSkipsConflictCheck(t *testing.T) {
	repo := new(testutil.MockEventRepo)
	svc := NewEventService(repo, new(testutil.MockAgentRepo), new(testutil.MockProjectRepo))

	from := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Event")).Return(nil)

	_, err := svc.Create(context.Background(), uuid.New(), nil, nil, "Material pickup", "", from, from.Add(time.Hour))
	assert.NoError(t, err)
	repo.AssertNotCalled(t, "ListOverlapping", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestEventService_Update_ExcludesOwnEvent(t *testing.T) {
	repo := new(testutil.MockEventRepo)
	svc := NewEventService(repo, new(testutil.MockAgentRepo), new(testutil.MockProjectRepo))

	contractorID := uuid.New()
	id := uuid.New()
	agentID := uuid.New()
	from := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	to := from.Add(2 * time.Hour)
	event := &domain.Event{ID: id, AgentID: &agentID, Title: "Site visit", StartsAt: from, EndsAt: to}

	repo.On("GetByID", mock.Anything, contractorID, id).Return(event, nil)
	repo.On("ListOverlapping", mock.Anything, contractorID, agentID, from, to.Add(time.Hour), id).Return([]*domain.Event{}, nil)
	repo.On("Update", mock.Anything, contractorID, mock.AnythingOfType("*domain.Event")).Return(nil)

	_, err := svc.Update(context.Background(), contractorID, id, map[string]interface{}{"ends_at": to.Add(time.Hour)})
	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestEventService_Update_SetProject(t *testing.T) {
	repo := new(testutil.MockEventRepo)
	projectRepo := new(testutil.MockProjectRepo)
	svc := NewEventService(repo, new(testutil.MockAgentRepo), projectRepo)

	contractorID := uuid.New()
	id := uuid.New()
	projectID := uuid.New()
	from := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	event := &domain.Event{ID: id, Title: "Site visit", StartsAt: from, EndsAt: from.Add(time.Hour)}

	repo.On("GetByID", mock.Anything, contractorID, id).Return(event, nil)
	projectRepo.On("GetByID", mock.Anything, contractorID, projectID).Return(&domain.Project{ID: projectID}, nil)
	repo.On("Update", mock.Anything, contractorID, mock.MatchedBy(func(e *domain.Event) bool {
		return e.ProjectID != nil && *e.ProjectID == projectID
	})).Return(nil)

	updated, err := svc.Update(context.Background(), contractorID, id, map[string]interface{}{"project_id": projectID})
	assert.NoError(t, err)
	assert.Equal(t, &projectID, updated.ProjectID)
	projectRepo.AssertExpectations(t)
}

func TestEventService_Update_SetProject_UnknownProject(t *testing.T) {
	repo := new(testutil.MockEventRepo)
	projectRepo := new(testutil.MockProjectRepo)
	svc := NewEventService(repo, new(testutil.MockAgentRepo), projectRepo)

	contractorID := uuid.New()
	id := uuid.New()
	projectID := uuid.New()
	from := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	event := &domain.Event{ID: id, Title: "Site visit", StartsAt: from, EndsAt: from.Add(time.Hour)}

	repo.On("GetByID", mock.Anything, contractorID, id).Return(event, nil)
	projectRepo.On("GetByID", mock.Anything, contractorID, projectID).Return(nil, domain.ErrProjectNotFound)

	_, err := svc.Update(context.Background(), contractorID, id, map[string]interface{}{"project_id": projectID})
	assert.ErrorIs(t, err, domain.ErrProjectNotFound)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestEventService_Update_ClearProject(t *testing.T) {
	repo := new(testutil.MockEventRepo)
	svc := NewEventService(repo, new(testutil.MockAgentRepo), new(testutil.MockProjectRepo))

	contractorID := uuid.New()
	id := uuid.New()
	projectID := uuid.New()
	from := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	event := &domain.Event{ID: id, ProjectID: &projectID, Title: "Site visit", StartsAt: from, EndsAt: from.Add(time.Hour)}

	repo.On("GetByID", mock.Anything, contractorID, id).Return(event, nil)
	repo.On("Update", mock.Anything, contractorID, mock.MatchedBy(func(e *domain.Event) bool {
		return e.ProjectID == nil
	})).Return(nil)

	_, err := svc.Update(context.Background(), contractorID, id, map[string]interface{}{"project_id": nil})
	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestEventService_Update_ClearAgent(t *testing.T) {
	repo := new(testutil.MockEventRepo)
	svc := NewEventService(repo, new(testutil.MockAgentRepo), new(testutil.MockProjectRepo))

	contractorID := uuid.New()
	id := uuid.New()
	agentID := uuid.New()
	from := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	event := &domain.Event{ID: id, AgentID: &agentID, Title: "Site visit", StartsAt: from, EndsAt: from.Add(time.Hour)}

	repo.On("GetByID", mock.Anything, contractorID, id).Return(event, nil)
	repo.On("Update", mock.Anything, contractorID, mock.MatchedBy(func(e *domain.Event) bool {
		return e.AgentID == nil
	})).Return(nil)

	_, err := svc.Update(context.Background(), contractorID, id, map[string]interface{}{"agent_id": nil})
	assert.NoError(t, err)
	repo.AssertNotCalled(t, "ListOverlapping", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
