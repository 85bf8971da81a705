package ports

import (
	"context"

	"github.com/google/uuid"

	"contractor-service/internal/core/domain"
)

// AnalysisClient talks to the AI cost-analysis backend.
type AnalysisClient interface {
	IsAvailable() bool
	AnalyzeCost(ctx context.Context, req *domain.CostAnalysisRequest) (*domain.CostAnalysis, error)
}

// StatsCache is a read-through cache for dashboard snapshots.
// GetDashboard returns (nil, nil) on a miss.
type StatsCache interface {
	GetDashboard(ctx context.Context, contractorID uuid.UUID) (*domain.DashboardStats, error)
	SetDashboard(ctx context.Context, contractorID uuid.UUID, stats *domain.DashboardStats) error
}
