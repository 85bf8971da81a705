package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"contractor-service/internal/core/domain"
	ports "contractor-service/internal/core/ports/output"
)

func TestCreateEvent(t *testing.T) {
	m, r := setupRouter()

	contractorID := uuid.New()
	agentID := uuid.New()
	from := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	m.agentRepo.On("GetByID", mock.Anything, contractorID, agentID).Return(&domain.Agent{ID: agentID}, nil)
	m.eventRepo.On("ListOverlapping", mock.Anything, contractorID, agentID, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time"), uuid.Nil).Return([]*domain.Event{}, nil)
	m.eventRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Event")).Return(nil)

	body, _ := json.Marshal(map[string]interface{}{
		"agent_id":  agentID.String(),
		"title":     "Site visit",
		"starts_at": from.Format(time.RFC3339),
		"ends_at":   from.Add(2 * time.Hour).Format(time.RFC3339),
	})
	req, _ := http.NewRequest("POST", "/api/v1/events", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Contractor-ID", contractorID.String())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	m.eventRepo.AssertExpectations(t)
}

func TestCreateEvent_Conflict(t *testing.T) {
	m, r := setupRouter()

	contractorID := uuid.New()
	agentID := uuid.New()
	from := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	m.agentRepo.On("GetByID", mock.Anything, contractorID, agentID).Return(&domain.Agent{ID: agentID}, nil)
	m.eventRepo.On("ListOverlapping", mock.Anything, contractorID, agentID, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time"), uuid.Nil).Return([]*domain.Event{{ID: uuid.New()}}, nil)

	body, _ := json.Marshal(map[string]interface{}{
		"agent_id":  agentID.String(),
		"title":     "Site visit",
		"starts_at": from.Format(time.RFC3339),
		"ends_at":   from.Add(2 * time.Hour).Format(time.RFC3339),
	})
	req, _ := http.NewRequest("POST", "/api/v1/events", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Contractor-ID", contractorID.String())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	m.eventRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestListEvents_SearchFilter(t *testing.T) {
	m, r := setupRouter()

	contractorID := uuid.New()
	m.eventRepo.On("List", mock.Anything, mock.MatchedBy(func(f ports.EventListFilter) bool {
		return f.Search == "visit"
	})).Return([]*domain.Event{}, 0, nil)

	req, _ := http.NewRequest("GET", "/api/v1/events?search=visit", nil)
	req.Header.Set("Contractor-ID", contractorID.String())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	m.eventRepo.AssertExpectations(t)
}

func TestUpdateEvent_SetProject(t *testing.T) {
	m, r := setupRouter()

	contractorID := uuid.New()
	id := uuid.New()
	projectID := uuid.New()
	from := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	event := &domain.Event{ID: id, Title: "Site visit", StartsAt: from, EndsAt: from.Add(time.Hour), CreatedAt: from, UpdatedAt: from}

	m.eventRepo.On("GetByID", mock.Anything, contractorID, id).Return(event, nil)
	m.projectRepo.On("GetByID", mock.Anything, contractorID, projectID).Return(&domain.Project{ID: projectID}, nil)
	m.eventRepo.On("Update", mock.Anything, contractorID, mock.MatchedBy(func(e *domain.Event) bool {
		return e.ProjectID != nil && *e.ProjectID == projectID
	})).Return(nil)

	body, _ := json.Marshal(map[string]interface{}{"project_id": projectID.String()})
	req, _ := http.NewRequest("PATCH", "/api/v1/events/"+id.String(), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Contractor-ID", contractorID.String())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, projectID.String(), resp["project_id"])
	m.eventRepo.AssertExpectations(t)
}

func TestUpdateEvent_ClearProject(t *testing.T) {
	m, r := setupRouter()

	contractorID := uuid.New()
	id := uuid.New()
	projectID := uuid.New()
	from := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	event := &domain.Event{ID: id, ProjectID: &projectID, Title: "Site visit", StartsAt: from, EndsAt: from.Add(time.Hour), CreatedAt: from, UpdatedAt: from}

	m.eventRepo.On("GetByID", mock.Anything, contractorID, id).Return(event, nil)
	m.eventRepo.On("Update", mock.Anything, contractorID, mock.MatchedBy(func(e *domain.Event) bool {
		return e.ProjectID == nil
	})).Return(nil)

	body, _ := json.Marshal(map[string]interface{}{"clear_project": true})
	req, _ := http.NewRequest("PATCH", "/api/v1/events/"+id.String(), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Contractor-ID", contractorID.String())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NotContains(t, resp, "project_id")
}

func TestGetAgentSchedule_InvalidRange(t *testing.T) {
	_, r := setupRouter()

	req, _ := http.NewRequest("GET", "/api/v1/agents/"+uuid.New().String()+"/schedule?from=not-a-time&to=2026-03-09T00:00:00Z", nil)
	req.Header.Set("Contractor-ID", uuid.New().String())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
