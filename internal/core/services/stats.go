package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"contractor-service/internal/core/domain"
	ports "contractor-service/internal/core/ports/output"
)

type StatsService struct {
	repo  ports.StatsRepository
	cache ports.StatsCache
}

// NewStatsService builds the dashboard service. cache may be nil when
// Redis is disabled.
func NewStatsService(repo ports.StatsRepository, cache ports.StatsCache) *StatsService {
	return &StatsService{repo: repo, cache: cache}
}

// Dashboard returns the tenant's aggregate snapshot, served from cache
// when possible. Cache failures fall through to the database.
func (s *StatsService) Dashboard(ctx context.Context, contractorID uuid.UUID) (*domain.DashboardStats, error) {
	if s.cache != nil {
		cached, err := s.cache.GetDashboard(ctx, contractorID)
		if err != nil {
			log.WithError(err).Warn("dashboard cache read failed")
		} else if cached != nil {
			return cached, nil
		}
	}

	stats, err := s.repo.Dashboard(ctx, contractorID, time.Now())
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetDashboard(ctx, contractorID, stats); err != nil {
			log.WithError(err).Warn("dashboard cache write failed")
		}
	}
	return stats, nil
}
