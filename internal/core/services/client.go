package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"contractor-service/internal/core/domain"
	ports "contractor-service/internal/core/ports/output"
)

type ClientService struct {
	repo        ports.ClientRepository
	projectRepo ports.ProjectRepository
}

func NewClientService(repo ports.ClientRepository, projectRepo ports.ProjectRepository) *ClientService {
	return &ClientService{repo: repo, projectRepo: projectRepo}
}

func (s *ClientService) Create(ctx context.Context, contractorID uuid.UUID, name, company, email, phone, address, notes string) (*domain.Client, error) {
	if name == "" {
		return nil, domain.ErrInvalidClientName
	}

	now := time.Now()
	client := &domain.Client{
		ID:           uuid.New(),
		CreatedAt:    now,
		UpdatedAt:    now,
		ContractorID: contractorID,
		Name:         name,
		Company:      company,
		Email:        email,
		Phone:        phone,
		Address:      address,
		Notes:        notes,
	}

	if err := s.repo.Create(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

func (s *ClientService) Get(ctx context.Context, contractorID, id uuid.UUID) (*domain.Client, error) {
	return s.repo.GetByID(ctx, contractorID, id)
}

func (s *ClientService) List(ctx context.Context, filter ports.ListFilter) ([]*domain.Client, int, error) {
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}
	return s.repo.List(ctx, filter)
}

func (s *ClientService) Update(ctx context.Context, contractorID, id uuid.UUID, updates map[string]interface{}) (*domain.Client, error) {
	client, err := s.repo.GetByID(ctx, contractorID, id)
	if err != nil {
		return nil, err
	}

	if v, ok := updates["name"]; ok && v != nil {
		if v.(string) == "" {
			return nil, domain.ErrInvalidClientName
		}
		client.Name = v.(string)
	}
	if v, ok := updates["company"]; ok && v != nil {
		client.Company = v.(string)
	}
	if v, ok := updates["email"]; ok && v != nil {
		client.Email = v.(string)
	}
	if v, ok := updates["phone"]; ok && v != nil {
		client.Phone = v.(string)
	}
	if v, ok := updates["address"]; ok && v != nil {
		client.Address = v.(string)
	}
	if v, ok := updates["notes"]; ok && v != nil {
		client.Notes = v.(string)
	}

	if err := s.repo.Update(ctx, contractorID, client); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, contractorID, id)
}

// Delete refuses to remove a client that still owns projects.
func (s *ClientService) Delete(ctx context.Context, contractorID, id uuid.UUID) error {
	if _, err := s.repo.GetByID(ctx, contractorID, id); err != nil {
		return err
	}

	count, err := s.projectRepo.CountByClient(ctx, contractorID, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrClientHasProjects
	}

	return s.repo.Delete(ctx, contractorID, id)
}
