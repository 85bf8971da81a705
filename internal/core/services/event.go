package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"contractor-service/internal/core/domain"
	ports "contractor-service/internal/core/ports/output"
)

type EventService struct {
	repo        ports.EventRepository
	agentRepo   ports.AgentRepository
	projectRepo ports.ProjectRepository
}

func NewEventService(repo ports.EventRepository, agentRepo ports.AgentRepository, projectRepo ports.ProjectRepository) *EventService {
	return &EventService{repo: repo, agentRepo: agentRepo, projectRepo: projectRepo}
}

func (s *EventService) Create(ctx context.Context, contractorID uuid.UUID, agentID, projectID *uuid.UUID, title, notes string, startsAt, endsAt time.Time) (*domain.Event, error) {
	if title == "" {
		return nil, domain.ErrInvalidEventTitle
	}
	if !startsAt.Before(endsAt) {
		return nil, domain.ErrInvalidTimeRange
	}

	if agentID != nil {
		if _, err := s.agentRepo.GetByID(ctx, contractorID, *agentID); err != nil {
			return nil, err
		}
		if err := s.checkConflict(ctx, contractorID, *agentID, startsAt, endsAt, uuid.Nil); err != nil {
			return nil, err
		}
	}
	if projectID != nil {
		if _, err := s.projectRepo.GetByID(ctx, contractorID, *projectID); err != nil {
			return nil, err
		}
	}

	now := time.Now()
	event := &domain.Event{
		ID:           uuid.New(),
		CreatedAt:    now,
		UpdatedAt:    now,
		ContractorID: contractorID,
		AgentID:      agentID,
		ProjectID:    projectID,
		Title:        title,
		Notes:        notes,
		StartsAt:     startsAt,
		EndsAt:       endsAt,
	}

	if err := s.repo.Create(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *EventService) Get(ctx context.Context, contractorID, id uuid.UUID) (*domain.Event, error) {
	return s.repo.GetByID(ctx, contractorID, id)
}

func (s *EventService) List(ctx context.Context, filter ports.EventListFilter) ([]*domain.Event, int, error) {
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}
	return s.repo.List(ctx, filter)
}

func (s *EventService) Update(ctx context.Context, contractorID, id uuid.UUID, updates map[string]interface{}) (*domain.Event, error) {
	event, err := s.repo.GetByID(ctx, contractorID, id)
	if err != nil {
		return nil, err
	}

	if v, ok := updates["title"]; ok && v != nil {
		if v.(string) == "" {
			return nil, domain.ErrInvalidEventTitle
		}
		event.Title = v.(string)
	}
	if v, ok := updates["notes"]; ok && v != nil {
		event.Notes = v.(string)
	}
	if v, ok := updates["starts_at"]; ok && v != nil {
		event.StartsAt = v.(time.Time)
	}
	if v, ok := updates["ends_at"]; ok && v != nil {
		event.EndsAt = v.(time.Time)
	}
	if v, ok := updates["agent_id"]; ok {
		if v == nil {
			event.AgentID = nil
		} else {
			agentID := v.(uuid.UUID)
			if _, err := s.agentRepo.GetByID(ctx, contractorID, agentID); err != nil {
				return nil, err
			}
			event.AgentID = &agentID
		}
	}
	if v, ok := updates["project_id"]; ok {
		if v == nil {
			event.ProjectID = nil
		} else {
			projectID := v.(uuid.UUID)
			if _, err := s.projectRepo.GetByID(ctx, contractorID, projectID); err != nil {
				return nil, err
			}
			event.ProjectID = &projectID
		}
	}

	if !event.StartsAt.Before(event.EndsAt) {
		return nil, domain.ErrInvalidTimeRange
	}

	if event.AgentID != nil {
		if err := s.checkConflict(ctx, contractorID, *event.AgentID, event.StartsAt, event.EndsAt, event.ID); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Update(ctx, contractorID, event); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, contractorID, id)
}

func (s *EventService) Delete(ctx context.Context, contractorID, id uuid.UUID) error {
	if _, err := s.repo.GetByID(ctx, contractorID, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, contractorID, id)
}

func (s *EventService) checkConflict(ctx context.Context, contractorID, agentID uuid.UUID, start, end time.Time, excludeID uuid.UUID) error {
	overlapping, err := s.repo.ListOverlapping(ctx, contractorID, agentID, start, end, excludeID)
	if err != nil {
		return err
	}
	if len(overlapping) > 0 {
		return domain.ErrScheduleConflict
	}
	return nil
}
