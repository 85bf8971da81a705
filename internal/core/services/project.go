package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"contractor-service/internal/core/domain"
	ports "contractor-service/internal/core/ports/output"
)

type ProjectService struct {
	repo       ports.ProjectRepository
	clientRepo ports.ClientRepository
}

func NewProjectService(repo ports.ProjectRepository, clientRepo ports.ClientRepository) *ProjectService {
	return &ProjectService{repo: repo, clientRepo: clientRepo}
}

func (s *ProjectService) Create(ctx context.Context, contractorID, clientID uuid.UUID, name, description string, budgetCents int64, startsAt, endsAt *time.Time) (*domain.Project, error) {
	if name == "" {
		return nil, domain.ErrInvalidProjectName
	}

	if _, err := s.clientRepo.GetByID(ctx, contractorID, clientID); err != nil {
		return nil, err
	}

	now := time.Now()
	project := &domain.Project{
		ID:           uuid.New(),
		CreatedAt:    now,
		UpdatedAt:    now,
		ContractorID: contractorID,
		ClientID:     clientID,
		Name:         name,
		Description:  description,
		Status:       domain.ProjectStatusPending,
		BudgetCents:  budgetCents,
		StartsAt:     startsAt,
		EndsAt:       endsAt,
	}

	if err := s.repo.Create(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

func (s *ProjectService) Get(ctx context.Context, contractorID, id uuid.UUID) (*domain.Project, error) {
	return s.repo.GetByID(ctx, contractorID, id)
}

func (s *ProjectService) List(ctx context.Context, filter ports.ProjectListFilter) ([]*domain.Project, int, error) {
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}
	return s.repo.List(ctx, filter)
}

func (s *ProjectService) Update(ctx context.Context, contractorID, id uuid.UUID, updates map[string]interface{}) (*domain.Project, error) {
	project, err := s.repo.GetByID(ctx, contractorID, id)
	if err != nil {
		return nil, err
	}

	if v, ok := updates["name"]; ok && v != nil {
		if v.(string) == "" {
			return nil, domain.ErrInvalidProjectName
		}
		project.Name = v.(string)
	}
	if v, ok := updates["description"]; ok && v != nil {
		project.Description = v.(string)
	}
	if v, ok := updates["budget_cents"]; ok && v != nil {
		project.BudgetCents = v.(int64)
	}
	if v, ok := updates["starts_at"]; ok && v != nil {
		t := v.(time.Time)
		project.StartsAt = &t
	}
	if v, ok := updates["ends_at"]; ok && v != nil {
		t := v.(time.Time)
		project.EndsAt = &t
	}

	if err := s.repo.Update(ctx, contractorID, project); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, contractorID, id)
}

// Transition moves a project along the allowed status graph. Status is
// never changed through Update.
func (s *ProjectService) Transition(ctx context.Context, contractorID, id uuid.UUID, to domain.ProjectStatus) (*domain.Project, error) {
	if err := domain.ValidateProjectStatus(to); err != nil {
		return nil, err
	}

	project, err := s.repo.GetByID(ctx, contractorID, id)
	if err != nil {
		return nil, err
	}

	if !domain.CanTransition(project.Status, to) {
		return nil, domain.ErrInvalidStatusTransition
	}

	project.Status = to
	if err := s.repo.Update(ctx, contractorID, project); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, contractorID, id)
}

func (s *ProjectService) Delete(ctx context.Context, contractorID, id uuid.UUID) error {
	if _, err := s.repo.GetByID(ctx, contractorID, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, contractorID, id)
}
