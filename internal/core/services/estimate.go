package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"contractor-service/internal/core/domain"
	ports "contractor-service/internal/core/ports/output"
)

type EstimateService struct {
	repo        ports.EstimateRepository
	clientRepo  ports.ClientRepository
	projectRepo ports.ProjectRepository
	invoiceRepo ports.InvoiceRepository
	netTermDays int
}

func NewEstimateService(repo ports.EstimateRepository, clientRepo ports.ClientRepository, projectRepo ports.ProjectRepository, invoiceRepo ports.InvoiceRepository, netTermDays int) *EstimateService {
	if netTermDays <= 0 {
		netTermDays = 30
	}
	return &EstimateService{
		repo:        repo,
		clientRepo:  clientRepo,
		projectRepo: projectRepo,
		invoiceRepo: invoiceRepo,
		netTermDays: netTermDays,
	}
}

func (s *EstimateService) Create(ctx context.Context, contractorID, clientID uuid.UUID, projectID *uuid.UUID, title, notes string, items []domain.EstimateItem, validUntil *time.Time) (*domain.Estimate, error) {
	if title == "" {
		return nil, domain.ErrInvalidEstimateTitle
	}
	if len(items) == 0 {
		return nil, domain.ErrEstimateHasNoItems
	}

	if _, err := s.clientRepo.GetByID(ctx, contractorID, clientID); err != nil {
		return nil, err
	}
	if projectID != nil {
		if _, err := s.projectRepo.GetByID(ctx, contractorID, *projectID); err != nil {
			return nil, err
		}
	}

	now := time.Now()
	estimate := &domain.Estimate{
		ID:           uuid.New(),
		CreatedAt:    now,
		UpdatedAt:    now,
		ContractorID: contractorID,
		ClientID:     clientID,
		ProjectID:    projectID,
		Title:        title,
		Notes:        notes,
		Status:       domain.EstimateStatusDraft,
		ValidUntil:   validUntil,
	}
	for i := range items {
		items[i].ID = uuid.New()
		items[i].EstimateID = estimate.ID
	}
	estimate.Items = items
	estimate.TotalCents = domain.SumEstimateItems(items)

	if err := s.repo.Create(ctx, estimate); err != nil {
		return nil, err
	}
	return estimate, nil
}

func (s *EstimateService) Get(ctx context.Context, contractorID, id uuid.UUID) (*domain.Estimate, error) {
	return s.repo.GetByID(ctx, contractorID, id)
}

func (s *EstimateService) List(ctx context.Context, filter ports.EstimateListFilter) ([]*domain.Estimate, int, error) {
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}
	return s.repo.List(ctx, filter)
}

func (s *EstimateService) Update(ctx context.Context, contractorID, id uuid.UUID, updates map[string]interface{}, items []domain.EstimateItem) (*domain.Estimate, error) {
	estimate, err := s.repo.GetByID(ctx, contractorID, id)
	if err != nil {
		return nil, err
	}
	if estimate.Status == domain.EstimateStatusConverted {
		return nil, domain.ErrCannotModifyConverted
	}

	if v, ok := updates["title"]; ok && v != nil {
		if v.(string) == "" {
			return nil, domain.ErrInvalidEstimateTitle
		}
		estimate.Title = v.(string)
	}
	if v, ok := updates["notes"]; ok && v != nil {
		estimate.Notes = v.(string)
	}
	if v, ok := updates["status"]; ok && v != nil {
		status := domain.EstimateStatus(v.(string))
		if err := domain.ValidateEstimateStatus(status); err != nil {
			return nil, err
		}
		// converted is only reachable through Convert
		if status == domain.EstimateStatusConverted {
			return nil, domain.ErrInvalidEstimateStatus
		}
		estimate.Status = status
	}
	if v, ok := updates["valid_until"]; ok && v != nil {
		t := v.(time.Time)
		estimate.ValidUntil = &t
	}
	if items != nil {
		if len(items) == 0 {
			return nil, domain.ErrEstimateHasNoItems
		}
		for i := range items {
			items[i].ID = uuid.New()
			items[i].EstimateID = estimate.ID
		}
		estimate.Items = items
		estimate.TotalCents = domain.SumEstimateItems(items)
	}

	if err := s.repo.Update(ctx, contractorID, estimate); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, contractorID, id)
}

func (s *EstimateService) Delete(ctx context.Context, contractorID, id uuid.UUID) error {
	estimate, err := s.repo.GetByID(ctx, contractorID, id)
	if err != nil {
		return err
	}
	if estimate.Status == domain.EstimateStatusConverted {
		return domain.ErrCannotModifyConverted
	}
	return s.repo.Delete(ctx, contractorID, id)
}

// Convert turns an approved estimate into a pending invoice. Items are
// copied over, the invoice gets the next sequential number for the
// tenant, and the estimate is marked converted. An estimate without a
// project gets one created in pending status so the invoice payment
// flow can later promote it.
func (s *EstimateService) Convert(ctx context.Context, contractorID, id uuid.UUID) (*domain.Invoice, error) {
	estimate, err := s.repo.GetByID(ctx, contractorID, id)
	if err != nil {
		return nil, err
	}
	if err := estimate.Convertible(); err != nil {
		return nil, err
	}

	projectID := estimate.ProjectID
	if projectID == nil {
		now := time.Now()
		project := &domain.Project{
			ID:           uuid.New(),
			CreatedAt:    now,
			UpdatedAt:    now,
			ContractorID: contractorID,
			ClientID:     estimate.ClientID,
			Name:         estimate.Title,
			Status:       domain.ProjectStatusPending,
			BudgetCents:  estimate.TotalCents,
		}
		if err := s.projectRepo.Create(ctx, project); err != nil {
			return nil, err
		}
		projectID = &project.ID
	}

	number, err := s.invoiceRepo.NextNumber(ctx, contractorID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	invoice := &domain.Invoice{
		ID:           uuid.New(),
		CreatedAt:    now,
		UpdatedAt:    now,
		ContractorID: contractorID,
		ClientID:     estimate.ClientID,
		ProjectID:    projectID,
		EstimateID:   &estimate.ID,
		Number:       number,
		Status:       domain.InvoiceStatusPending,
		TotalCents:   estimate.TotalCents,
		IssuedAt:     now,
		DueAt:        now.AddDate(0, 0, s.netTermDays),
	}
	for _, item := range estimate.Items {
		invoice.Items = append(invoice.Items, domain.InvoiceItem{
			ID:             uuid.New(),
			InvoiceID:      invoice.ID,
			Description:    item.Description,
			Quantity:       item.Quantity,
			UnitPriceCents: item.UnitPriceCents,
		})
	}

	if err := s.invoiceRepo.Create(ctx, invoice); err != nil {
		return nil, err
	}

	estimate.Status = domain.EstimateStatusConverted
	estimate.ProjectID = projectID
	if err := s.repo.Update(ctx, contractorID, estimate); err != nil {
		// The invoice exists at this point; surface the failure but
		// leave reconciliation to the caller retrying the conversion.
		log.WithError(err).WithField("estimate_id", estimate.ID).
			Error("invoice created but estimate not marked converted")
		return nil, err
	}

	return invoice, nil
}
