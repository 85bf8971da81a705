package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"contractor-service/internal/core/domain"
	ports "contractor-service/internal/core/ports/output"
)

type InvoiceService struct {
	repo        ports.InvoiceRepository
	clientRepo  ports.ClientRepository
	projectRepo ports.ProjectRepository
	netTermDays int
}

func NewInvoiceService(repo ports.InvoiceRepository, clientRepo ports.ClientRepository, projectRepo ports.ProjectRepository, netTermDays int) *InvoiceService {
	if netTermDays <= 0 {
		netTermDays = 30
	}
	return &InvoiceService{
		repo:        repo,
		clientRepo:  clientRepo,
		projectRepo: projectRepo,
		netTermDays: netTermDays,
	}
}

func (s *InvoiceService) Create(ctx context.Context, contractorID, clientID uuid.UUID, projectID *uuid.UUID, items []domain.InvoiceItem, dueAt *time.Time, draft bool) (*domain.Invoice, error) {
	if len(items) == 0 {
		return nil, domain.ErrInvoiceHasNoItems
	}

	if _, err := s.clientRepo.GetByID(ctx, contractorID, clientID); err != nil {
		return nil, err
	}
	if projectID != nil {
		if _, err := s.projectRepo.GetByID(ctx, contractorID, *projectID); err != nil {
			return nil, err
		}
	}

	number, err := s.repo.NextNumber(ctx, contractorID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	status := domain.InvoiceStatusPending
	if draft {
		status = domain.InvoiceStatusDraft
	}
	due := now.AddDate(0, 0, s.netTermDays)
	if dueAt != nil {
		due = *dueAt
	}

	invoice := &domain.Invoice{
		ID:           uuid.New(),
		CreatedAt:    now,
		UpdatedAt:    now,
		ContractorID: contractorID,
		ClientID:     clientID,
		ProjectID:    projectID,
		Number:       number,
		Status:       status,
		IssuedAt:     now,
		DueAt:        due,
	}
	for i := range items {
		items[i].ID = uuid.New()
		items[i].InvoiceID = invoice.ID
	}
	invoice.Items = items
	invoice.TotalCents = domain.SumInvoiceItems(items)

	if err := s.repo.Create(ctx, invoice); err != nil {
		return nil, err
	}
	return invoice, nil
}

func (s *InvoiceService) Get(ctx context.Context, contractorID, id uuid.UUID) (*domain.Invoice, error) {
	return s.repo.GetByID(ctx, contractorID, id)
}

func (s *InvoiceService) List(ctx context.Context, filter ports.InvoiceListFilter) ([]*domain.Invoice, int, error) {
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}
	return s.repo.List(ctx, filter)
}

func (s *InvoiceService) Update(ctx context.Context, contractorID, id uuid.UUID, updates map[string]interface{}, items []domain.InvoiceItem) (*domain.Invoice, error) {
	invoice, err := s.repo.GetByID(ctx, contractorID, id)
	if err != nil {
		return nil, err
	}
	if invoice.AmountPaidCents > 0 {
		return nil, domain.ErrInvoiceNotPayable
	}

	if v, ok := updates["due_at"]; ok && v != nil {
		invoice.DueAt = v.(time.Time)
	}
	if v, ok := updates["status"]; ok && v != nil {
		status := domain.InvoiceStatus(v.(string))
		// Only the draft→pending (issue) and →cancelled moves are
		// allowed here; payment drives the rest.
		switch {
		case invoice.Status == domain.InvoiceStatusDraft && status == domain.InvoiceStatusPending:
			invoice.Status = status
		case status == domain.InvoiceStatusCancelled && invoice.AmountPaidCents == 0:
			invoice.Status = status
		default:
			return nil, domain.ErrInvoiceNotPayable
		}
	}
	if items != nil {
		if len(items) == 0 {
			return nil, domain.ErrInvoiceHasNoItems
		}
		for i := range items {
			items[i].ID = uuid.New()
			items[i].InvoiceID = invoice.ID
		}
		invoice.Items = items
		invoice.TotalCents = domain.SumInvoiceItems(items)
	}

	if err := s.repo.Update(ctx, contractorID, invoice); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, contractorID, id)
}

func (s *InvoiceService) Delete(ctx context.Context, contractorID, id uuid.UUID) error {
	invoice, err := s.repo.GetByID(ctx, contractorID, id)
	if err != nil {
		return err
	}
	if invoice.AmountPaidCents > 0 {
		return domain.ErrCannotDeleteInvoice
	}
	return s.repo.Delete(ctx, contractorID, id)
}

// Pay applies a payment to an open invoice. When the payment settles the
// invoice in full and the invoice is linked to a still-pending project,
// the project is promoted to in_progress.
func (s *InvoiceService) Pay(ctx context.Context, contractorID, id uuid.UUID, amountCents int64) (*domain.Invoice, error) {
	invoice, err := s.repo.GetByID(ctx, contractorID, id)
	if err != nil {
		return nil, err
	}

	if err := invoice.ApplyPayment(amountCents); err != nil {
		return nil, err
	}

	if err := s.repo.UpdatePayment(ctx, contractorID, id, invoice.AmountPaidCents, invoice.Status); err != nil {
		return nil, err
	}

	if invoice.Status == domain.InvoiceStatusPaid && invoice.ProjectID != nil {
		s.promoteProject(ctx, contractorID, *invoice.ProjectID)
	}

	return s.repo.GetByID(ctx, contractorID, id)
}

// promoteProject is opportunistic: a failure here never fails the
// payment that triggered it.
func (s *InvoiceService) promoteProject(ctx context.Context, contractorID, projectID uuid.UUID) {
	project, err := s.projectRepo.GetByID(ctx, contractorID, projectID)
	if err != nil {
		log.WithError(err).WithField("project_id", projectID).Warn("paid invoice references missing project")
		return
	}
	if project.Status != domain.ProjectStatusPending {
		return
	}
	project.Status = domain.ProjectStatusInProgress
	if err := s.projectRepo.Update(ctx, contractorID, project); err != nil {
		log.WithError(err).WithField("project_id", projectID).Warn("project promotion after payment failed")
	}
}

// MarkOverdue flips open invoices past their due date to overdue. Runs
// from the background job across all tenants.
func (s *InvoiceService) MarkOverdue(ctx context.Context, asOf time.Time) (int64, error) {
	return s.repo.MarkOverdue(ctx, asOf)
}
