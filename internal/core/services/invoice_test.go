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

func TestInvoiceService_Create_AssignsSequentialNumber(t *testing.T) {
	repo := new(testutil.MockInvoiceRepo)
	clientRepo := new(testutil.MockClientRepo)
	svc := NewInvoiceService(repo, clientRepo, new(testutil.MockProjectRepo), 30)

	contractorID := uuid.New()
	clientID := uuid.New()
	clientRepo.On("GetByID", mock.Anything, contractorID, clientID).Return(&domain.Client{ID: clientID}, nil)
	repo.On("NextNumber", mock.Anything, contractorID).Return(4, nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Invoice")).Return(nil)

	items := []domain.InvoiceItem{{Description: "Labor", Quantity: 8, UnitPriceCents: 9_500}}
	invoice, err := svc.Create(context.Background(), contractorID, clientID, nil, items, nil, false)
	assert.NoError(t, err)
	assert.Equal(t, 4, invoice.Number)
	assert.Equal(t, domain.InvoiceStatusPending, invoice.Status)
	assert.Equal(t, int64(76_000), invoice.TotalCents)
}

func TestInvoiceService_Create_Draft(t *testing.T) {
	repo := new(testutil.MockInvoiceRepo)
	clientRepo := new(testutil.MockClientRepo)
	svc := NewInvoiceService(repo, clientRepo, new(testutil.MockProjectRepo), 30)

	contractorID := uuid.New()
	clientID := uuid.New()
	clientRepo.On("GetByID", mock.Anything, contractorID, clientID).Return(&domain.Client{ID: clientID}, nil)
	repo.On("NextNumber", mock.Anything, contractorID).Return(1, nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Invoice")).Return(nil)

	items := []domain.InvoiceItem{{Description: "Materials", Quantity: 1, UnitPriceCents: 12_000}}
	invoice, err := svc.Create(context.Background(), contractorID, clientID, nil, items, nil, true)
	assert.NoError(t, err)
	assert.Equal(t, domain.InvoiceStatusDraft, invoice.Status)
}

func TestInvoiceService_Create_NoItems(t *testing.T) {
	svc := NewInvoiceService(new(testutil.MockInvoiceRepo), new(testutil.MockClientRepo), new(testutil.MockProjectRepo), 30)

	_, err := svc.Create(context.Background(), uuid.New(), uuid.New(), nil, nil, nil, false)
	assert.ErrorIs(t, err, domain.ErrInvoiceHasNoItems)
}

func TestInvoiceService_Pay_Partial(t *testing.T) {
	repo := new(testutil.MockInvoiceRepo)
	svc := NewInvoiceService(repo, new(testutil.MockClientRepo), new(testutil.MockProjectRepo), 30)

	contractorID := uuid.New()
	id := uuid.New()
	invoice := &domain.Invoice{ID: id, Status: domain.InvoiceStatusPending, TotalCents: 100_000}

	repo.On("GetByID", mock.Anything, contractorID, id).Return(invoice, nil)
	repo.On("UpdatePayment", mock.Anything, contractorID, id, int64(40_000), domain.InvoiceStatusPartiallyPaid).Return(nil)

	paid, err := svc.Pay(context.Background(), contractorID, id, 40_000)
	assert.NoError(t, err)
	assert.Equal(t, domain.InvoiceStatusPartiallyPaid, paid.Status)
	repo.AssertExpectations(t)
}

func TestInvoiceService_Pay_SettlementPromotesProject(t *testing.T) {
	repo := new(testutil.MockInvoiceRepo)
	projectRepo := new(testutil.MockProjectRepo)
	svc := NewInvoiceService(repo, new(testutil.MockClientRepo), projectRepo, 30)

	contractorID := uuid.New()
	id := uuid.New()
	projectID := uuid.New()
	invoice := &domain.Invoice{ID: id, ProjectID: &projectID, Status: domain.InvoiceStatusPending, TotalCents: 50_000}

	repo.On("GetByID", mock.Anything, contractorID, id).Return(invoice, nil)
	repo.On("UpdatePayment", mock.Anything, contractorID, id, int64(50_000), domain.InvoiceStatusPaid).Return(nil)
	projectRepo.On("GetByID", mock.Anything, contractorID, projectID).Return(&domain.Project{ID: projectID, Status: domain.ProjectStatusPending}, nil)
	projectRepo.On("Update", mock.Anything, contractorID, mock.MatchedBy(func(p *domain.Project) bool {
		return p.Status == domain.ProjectStatusInProgress
	})).Return(nil)

	_, err := svc.Pay(context.Background(), contractorID, id, 50_000)
	assert.NoError(t, err)
	projectRepo.AssertExpectations(t)
}

func TestInvoiceService_Pay_SettlementSkipsNonPendingProject(t *testing.T) {
	repo := new(testutil.MockInvoiceRepo)
	projectRepo := new(testutil.MockProjectRepo)
	svc := NewInvoiceService(repo, new(testutil.MockClientRepo), projectRepo, 30)

	contractorID := uuid.New()
	id := uuid.New()
	projectID := uuid.New()
	invoice := &domain.Invoice{ID: id, ProjectID: &projectID, Status: domain.InvoiceStatusPending, TotalCents: 50_000}

	repo.On("GetByID", mock.Anything, contractorID, id).Return(invoice, nil)
	repo.On("UpdatePayment", mock.Anything, contractorID, id, int64(50_000), domain.InvoiceStatusPaid).Return(nil)
	projectRepo.On("GetByID", mock.Anything, contractorID, projectID).Return(&domain.Project{ID: projectID, Status: domain.ProjectStatusCompleted}, nil)

	_, err := svc.Pay(context.Background(), contractorID, id, 50_000)
	assert.NoError(t, err)
	projectRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestInvoiceService_Pay_PromotionFailureDoesNotFailPayment(t *testing.T) {
	repo := new(testutil.MockInvoiceRepo)
	projectRepo := new(testutil.MockProjectRepo)
	svc := NewInvoiceService(repo, new(testutil.MockClientRepo), projectRepo, 30)

	contractorID := uuid.New()
	id := uuid.New()
	projectID := uuid.New()
	invoice := &domain.Invoice{ID: id, ProjectID: &projectID, Status: domain.InvoiceStatusPending, TotalCents: 50_000}

	repo.On("GetByID", mock.Anything, contractorID, id).Return(invoice, nil)
	repo.On("UpdatePayment", mock.Anything, contractorID, id, int64(50_000), domain.InvoiceStatusPaid).Return(nil)
	projectRepo.On("GetByID", mock.Anything, contractorID, projectID).Return(nil, domain.ErrProjectNotFound)

	_, err := svc.Pay(context.Background(), contractorID, id, 50_000)
	assert.NoError(t, err)
}

func TestInvoiceService_Pay_Overpayment(t *testing.T) {
	repo := new(testutil.MockInvoiceRepo)
	svc := NewInvoiceService(repo, new(testutil.MockClientRepo), new(testutil.MockProjectRepo), 30)

	contractorID := uuid.New()
	id := uuid.New()
	repo.On("GetByID", mock.Anything, contractorID, id).Return(&domain.Invoice{ID: id, Status: domain.InvoiceStatusPending, TotalCents: 10_000}, nil)

	_, err := svc.Pay(context.Background(), contractorID, id, 10_001)
	assert.ErrorIs(t, err, domain.ErrPaymentExceedsBalance)
	repo.AssertNotCalled(t, "UpdatePayment", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestInvoiceService_Update_AfterPayment(t *testing.T) {
	repo := new(testutil.MockInvoiceRepo)
	svc := NewInvoiceService(repo, new(testutil.MockClientRepo), new(testutil.MockProjectRepo), 30)

	contractorID := uuid.New()
	id := uuid.New()
	repo.On("GetByID", mock.Anything, contractorID, id).Return(&domain.Invoice{ID: id, Status: domain.InvoiceStatusPartiallyPaid, TotalCents: 10_000, AmountPaidCents: 5_000}, nil)

	_, err := svc.Update(context.Background(), contractorID, id, map[string]interface{}{"status": "cancelled"}, nil)
	assert.ErrorIs(t, err, domain.ErrInvoiceNotPayable)
}

func TestInvoiceService_Delete_AfterPayment(t *testing.T) {
	repo := new(testutil.MockInvoiceRepo)
	svc := NewInvoiceService(repo, new(testutil.MockClientRepo), new(testutil.MockProjectRepo), 30)

	contractorID := uuid.New()
	id := uuid.New()
	repo.On("GetByID", mock.Anything, contractorID, id).Return(&domain.Invoice{ID: id, AmountPaidCents: 100}, nil)

	err := svc.Delete(context.Background(), contractorID, id)
	assert.ErrorIs(t, err, domain.ErrCannotDeleteInvoice)
}

func TestInvoiceService_MarkOverdue(t *testing.T) {
	repo := new(testutil.MockInvoiceRepo)
	svc := NewInvoiceService(repo, new(testutil.MockClientRepo), new(testutil.MockProjectRepo), 30)

	repo.On("MarkOverdue", mock.Anything, mock.AnythingOfType("time.Time")).Return(int64(3), nil)

	flipped, err := svc.MarkOverdue(context.Background(), time.Now())
	assert.NoError(t, err)
	assert.Equal(t, int64(3), flipped)
}
