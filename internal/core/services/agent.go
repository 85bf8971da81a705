package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"contractor-service/internal/core/domain"
	ports "contractor-service/internal/core/ports/output"
)

type AgentService struct {
	repo      ports.AgentRepository
	eventRepo ports.EventRepository
}

func NewAgentService(repo ports.AgentRepository, eventRepo ports.EventRepository) *AgentService {
	return &AgentService{repo: repo, eventRepo: eventRepo}
}

func (s *AgentService) Create(ctx context.Context, contractorID uuid.UUID, name, email, phone, role string) (*domain.Agent, error) {
	if name == "" {
		return nil, domain.ErrInvalidAgentName
	}

	now := time.Now()
	agent := &domain.Agent{
		ID:           uuid.New(),
		CreatedAt:    now,
		UpdatedAt:    now,
		ContractorID: contractorID,
		Name:         name,
		Email:        email,
		Phone:        phone,
		Role:         role,
		Active:       true,
	}

	if err := s.repo.Create(ctx, agent); err != nil {
		return nil, err
	}
	return agent, nil
}

func (s *AgentService) Get(ctx context.Context, contractorID, id uuid.UUID) (*domain.Agent, error) {
	return s.repo.GetByID(ctx, contractorID, id)
}

func (s *AgentService) List(ctx context.Context, filter ports.AgentListFilter) ([]*domain.Agent, int, error) {
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}
	return s.repo.List(ctx, filter)
}

func (s *AgentService) Update(ctx context.Context, contractorID, id uuid.UUID, updates map[string]interface{}) (*domain.Agent, error) {
	agent, err := s.repo.GetByID(ctx, contractorID, id)
	if err != nil {
		return nil, err
	}

	if v, ok := updates["name"]; ok && v != nil {
		if v.(string) == "" {
			return nil, domain.ErrInvalidAgentName
		}
		agent.Name = v.(string)
	}
	if v, ok := updates["email"]; ok && v != nil {
		agent.Email = v.(string)
	}
	if v, ok := updates["phone"]; ok && v != nil {
		agent.Phone = v.(string)
	}
	if v, ok := updates["role"]; ok && v != nil {
		agent.Role = v.(string)
	}
	if v, ok := updates["active"]; ok && v != nil {
		agent.Active = v.(bool)
	}

	if err := s.repo.Update(ctx, contractorID, agent); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, contractorID, id)
}

func (s *AgentService) Delete(ctx context.Context, contractorID, id uuid.UUID) error {
	if _, err := s.repo.GetByID(ctx, contractorID, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, contractorID, id)
}

// Schedule returns all of the agent's events touching [from, to).
func (s *AgentService) Schedule(ctx context.Context, contractorID, id uuid.UUID, from, to time.Time) ([]*domain.Event, error) {
	if !from.Before(to) {
		return nil, domain.ErrInvalidTimeRange
	}
	if _, err := s.repo.GetByID(ctx, contractorID, id); err != nil {
		return nil, err
	}

	return s.eventRepo.ListOverlapping(ctx, contractorID, id, from, to, uuid.Nil)
}
