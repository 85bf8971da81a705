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
)

func TestListClients(t *testing.T) {
	m, r := setupRouter()

	contractorID := uuid.New()
	clients := []*domain.Client{
		{ID: uuid.New(), ContractorID: contractorID, Name: "Dana Fox", CreatedAt: time.Now(), UpdatedAt: time.Now()},
	}
	m.clientRepo.On("List", mock.Anything, mock.AnythingOfType("ports.ListFilter")).Return(clients, 1, nil)

	req, _ := http.NewRequest("GET", "/api/v1/clients?limit=10&offset=0", nil)
	req.Header.Set("Contractor-ID", contractorID.String())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, float64(1), resp["total"])
}

func TestListClients_MissingContractorID(t *testing.T) {
	_, r := setupRouter()

	req, _ := http.NewRequest("GET", "/api/v1/clients", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListClients_MalformedContractorID(t *testing.T) {
	_, r := setupRouter()

	req, _ := http.NewRequest("GET", "/api/v1/clients", nil)
	req.Header.Set("Contractor-ID", "not-a-uuid")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, domain.ErrInvalidContractorID.Error(), resp["error"])
}

func TestCreateClient(t *testing.T) {
	m, r := setupRouter()

	contractorID := uuid.New()
	m.clientRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Client")).Return(nil)

	body, _ := json.Marshal(map[string]interface{}{"name": "Dana Fox", "email": "dana@foxbuilds.test"})
	req, _ := http.NewRequest("POST", "/api/v1/clients", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Contractor-ID", contractorID.String())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	m.clientRepo.AssertExpectations(t)
}

func TestGetClient_NotFound(t *testing.T) {
	m, r := setupRouter()

	contractorID := uuid.New()
	id := uuid.New()
	m.clientRepo.On("GetByID", mock.Anything, contractorID, id).Return(nil, domain.ErrClientNotFound)

	req, _ := http.NewRequest("GET", "/api/v1/clients/"+id.String(), nil)
	req.Header.Set("Contractor-ID", contractorID.String())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteClient_HasProjects(t *testing.T) {
	m, r := setupRouter()

	contractorID := uuid.New()
	id := uuid.New()
	m.clientRepo.On("GetByID", mock.Anything, contractorID, id).Return(&domain.Client{ID: id}, nil)
	m.projectRepo.On("CountByClient", mock.Anything, contractorID, id).Return(2, nil)

	req, _ := http.NewRequest("DELETE", "/api/v1/clients/"+id.String(), nil)
	req.Header.Set("Contractor-ID", contractorID.String())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
