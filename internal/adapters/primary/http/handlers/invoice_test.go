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

func TestListInvoices_SearchFilter(t *testing.T) {
	m, r := setupRouter()

	contractorID := uuid.New()
	m.invoiceRepo.On("List", mock.Anything, mock.MatchedBy(func(f ports.InvoiceListFilter) bool {
		return f.Search == "42"
	})).Return([]*domain.Invoice{}, 0, nil)

	req, _ := http.NewRequest("GET", "/api/v1/invoices?search=42", nil)
	req.Header.Set("Contractor-ID", contractorID.String())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	m.invoiceRepo.AssertExpectations(t)
}

func TestRecordPayment(t *testing.T) {
	m, r := setupRouter()

	contractorID := uuid.New()
	id := uuid.New()
	invoice := &domain.Invoice{
		ID: id, ContractorID: contractorID, ClientID: uuid.New(),
		Number: 3, Status: domain.InvoiceStatusPending, TotalCents: 100_000,
		CreatedAt: time.Now(), UpdatedAt: time.Now(), IssuedAt: time.Now(), DueAt: time.Now(),
	}
	m.invoiceRepo.On("GetByID", mock.Anything, contractorID, id).Return(invoice, nil)
	m.invoiceRepo.On("UpdatePayment", mock.Anything, contractorID, id, int64(40_000), domain.InvoiceStatusPartiallyPaid).Return(nil)

	body, _ := json.Marshal(map[string]interface{}{"amount_cents": 40_000})
	req, _ := http.NewRequest("POST", "/api/v1/invoices/"+id.String()+"/payments", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Contractor-ID", contractorID.String())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "partially_paid", resp["status"])
	assert.Equal(t, float64(40_000), resp["amount_paid_cents"])
	assert.Equal(t, float64(60_000), resp["outstanding_cents"])
}

func TestRecordPayment_Overpayment(t *testing.T) {
	m, r := setupRouter()

	contractorID := uuid.New()
	id := uuid.New()
	invoice := &domain.Invoice{ID: id, Status: domain.InvoiceStatusPending, TotalCents: 10_000}
	m.invoiceRepo.On("GetByID", mock.Anything, contractorID, id).Return(invoice, nil)

	body, _ := json.Marshal(map[string]interface{}{"amount_cents": 20_000})
	req, _ := http.NewRequest("POST", "/api/v1/invoices/"+id.String()+"/payments", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Contractor-ID", contractorID.String())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	m.invoiceRepo.AssertNotCalled(t, "UpdatePayment", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDeleteInvoice_Paid(t *testing.T) {
	m, r := setupRouter()

	contractorID := uuid.New()
	id := uuid.New()
	m.invoiceRepo.On("GetByID", mock.Anything, contractorID, id).Return(&domain.Invoice{ID: id, AmountPaidCents: 5_000}, nil)

	req, _ := http.NewRequest("DELETE", "/api/v1/invoices/"+id.String(), nil)
	req.Header.Set("Contractor-ID", contractorID.String())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
