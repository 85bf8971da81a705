package handlers

import (
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

func TestConvertEstimate(t *testing.T) {
	m, r := setupRouter()

	contractorID := uuid.New()
	id := uuid.New()
	projectID := uuid.New()
	estimate := &domain.Estimate{
		ID: id, ContractorID: contractorID, ClientID: uuid.New(), ProjectID: &projectID,
		Title: "Deck build", Status: domain.EstimateStatusApproved, TotalCents: 150_000,
		CreatedAt: time.Now(), UpdatedAt: time.Now(),
		Items: []domain.EstimateItem{{ID: uuid.New(), Description: "Framing", Quantity: 1, UnitPriceCents: 150_000}},
	}
	m.estimateRepo.On("GetByID", mock.Anything, contractorID, id).Return(estimate, nil)
	m.invoiceRepo.On("NextNumber", mock.Anything, contractorID).Return(12, nil)
	m.invoiceRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Invoice")).Return(nil)
	m.estimateRepo.On("Update", mock.Anything, contractorID, mock.AnythingOfType("*domain.Estimate")).Return(nil)

	req, _ := http.NewRequest("POST", "/api/v1/estimates/"+id.String()+"/convert", nil)
	req.Header.Set("Contractor-ID", contractorID.String())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, float64(12), resp["number"])
	assert.Equal(t, "pending", resp["status"])
	assert.Equal(t, id.String(), resp["estimate_id"])
}

func TestConvertEstimate_NotApproved(t *testing.T) {
	m, r := setupRouter()

	contractorID := uuid.New()
	id := uuid.New()
	m.estimateRepo.On("GetByID", mock.Anything, contractorID, id).Return(&domain.Estimate{ID: id, Status: domain.EstimateStatusDraft}, nil)

	req, _ := http.NewRequest("POST", "/api/v1/estimates/"+id.String()+"/convert", nil)
	req.Header.Set("Contractor-ID", contractorID.String())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestConvertEstimate_AlreadyConverted(t *testing.T) {
	m, r := setupRouter()

	contractorID := uuid.New()
	id := uuid.New()
	m.estimateRepo.On("GetByID", mock.Anything, contractorID, id).Return(&domain.Estimate{ID: id, Status: domain.EstimateStatusConverted}, nil)

	req, _ := http.NewRequest("POST", "/api/v1/estimates/"+id.String()+"/convert", nil)
	req.Header.Set("Contractor-ID", contractorID.String())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}
