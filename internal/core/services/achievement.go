package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"contractor-service/internal/core/domain"
	ports "contractor-service/internal/core/ports/output"
)

type AchievementService struct {
	repo           ports.AchievementRepository
	statsRepo      ports.StatsRepository
	contractorRepo ports.ContractorRepository
}

func NewAchievementService(repo ports.AchievementRepository, statsRepo ports.StatsRepository, contractorRepo ports.ContractorRepository) *AchievementService {
	return &AchievementService{repo: repo, statsRepo: statsRepo, contractorRepo: contractorRepo}
}

// List returns the catalog merged with the tenant's earned records.
func (s *AchievementService) List(ctx context.Context, contractorID uuid.UUID) ([]*domain.AchievementStatus, error) {
	definitions, err := s.repo.ListDefinitions(ctx)
	if err != nil {
		return nil, err
	}
	earned, err := s.repo.ListEarned(ctx, contractorID)
	if err != nil {
		return nil, err
	}

	earnedByCode := make(map[domain.AchievementCode]*domain.EarnedAchievement, len(earned))
	for _, e := range earned {
		earnedByCode[e.Code] = e
	}

	statuses := make([]*domain.AchievementStatus, 0, len(definitions))
	for _, def := range definitions {
		status := &domain.AchievementStatus{AchievementDefinition: *def}
		if e, ok := earnedByCode[def.Code]; ok {
			status.Earned = true
			earnedAt := e.EarnedAt
			status.EarnedAt = &earnedAt
		}
		statuses = append(statuses, status)
	}
	return statuses, nil
}

// Evaluate computes the tenant's stats and awards everything it now
// qualifies for. Returns the codes that were newly awarded.
func (s *AchievementService) Evaluate(ctx context.Context, contractorID uuid.UUID) ([]domain.AchievementCode, error) {
	stats, err := s.statsRepo.Dashboard(ctx, contractorID, time.Now())
	if err != nil {
		return nil, err
	}

	earned, err := s.repo.ListEarned(ctx, contractorID)
	if err != nil {
		return nil, err
	}
	already := make(map[domain.AchievementCode]bool, len(earned))
	for _, e := range earned {
		already[e.Code] = true
	}

	var awarded []domain.AchievementCode
	for _, code := range domain.EligibleAchievements(stats) {
		if already[code] {
			continue
		}
		if err := s.repo.Award(ctx, contractorID, code); err != nil {
			return nil, err
		}
		awarded = append(awarded, code)
	}
	return awarded, nil
}

// EvaluateAll runs Evaluate for every tenant. One tenant failing does
// not stop the sweep; failures are logged and counted.
func (s *AchievementService) EvaluateAll(ctx context.Context) error {
	ids, err := s.contractorRepo.ListIDs(ctx)
	if err != nil {
		return err
	}

	failures := 0
	for _, id := range ids {
		if _, err := s.Evaluate(ctx, id); err != nil {
			failures++
			log.WithError(err).WithField("contractor_id", id).Warn("achievement evaluation failed")
		}
	}
	if failures > 0 {
		log.WithField("failures", failures).Warn("achievement sweep finished with failures")
	}
	return nil
}
