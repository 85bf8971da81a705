package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"contractor-service/internal/core/domain"
	"contractor-service/internal/testutil"
)

func TestStatsService_Dashboard_CacheHit(t *testing.T) {
	repo := new(testutil.MockStatsRepo)
	cache := new(testutil.MockStatsCache)
	svc := NewStatsService(repo, cache)

	contractorID := uuid.New()
	cached := &domain.DashboardStats{Clients: 4, ActiveProjects: 2}
	cache.On("GetDashboard", mock.Anything, contractorID).Return(cached, nil)

	stats, err := svc.Dashboard(context.Background(), contractorID)
	assert.NoError(t, err)
	assert.Equal(t, cached, stats)
	repo.AssertNotCalled(t, "Dashboard", mock.Anything, mock.Anything, mock.Anything)
}

func TestStatsService_Dashboard_CacheMiss(t *testing.T) {
	repo := new(testutil.MockStatsRepo)
	cache := new(testutil.MockStatsCache)
	svc := NewStatsService(repo, cache)

	contractorID := uuid.New()
	fresh := &domain.DashboardStats{Clients: 1}
	cache.On("GetDashboard", mock.Anything, contractorID).Return(nil, nil)
	repo.On("Dashboard", mock.Anything, contractorID, mock.AnythingOfType("time.Time")).Return(fresh, nil)
	cache.On("SetDashboard", mock.Anything, contractorID, fresh).Return(nil)

	stats, err := svc.Dashboard(context.Background(), contractorID)
	assert.NoError(t, err)
	assert.Equal(t, fresh, stats)
	cache.AssertExpectations(t)
}

func TestStatsService_Dashboard_CacheErrorFallsThrough(t *testing.T) {
	repo := new(testutil.MockStatsRepo)
	cache := new(testutil.MockStatsCache)
	svc := NewStatsService(repo, cache)

	contractorID := uuid.New()
	fresh := &domain.DashboardStats{Clients: 1}
	cache.On("GetDashboard", mock.Anything, contractorID).Return(nil, errors.New("connection refused"))
	repo.On("Dashboard", mock.Anything, contractorID, mock.AnythingOfType("time.Time")).Return(fresh, nil)
	cache.On("SetDashboard", mock.Anything, contractorID, fresh).Return(errors.New("connection refused"))

	stats, err := svc.Dashboard(context.Background(), contractorID)
	assert.NoError(t, err)
	assert.Equal(t, fresh, stats)
}

func TestStatsService_Dashboard_NoCache(t *testing.T) {
	repo := new(testutil.MockStatsRepo)
	svc := NewStatsService(repo, nil)

	contractorID := uuid.New()
	fresh := &domain.DashboardStats{OutstandingCents: 120_000}
	repo.On("Dashboard", mock.Anything, contractorID, mock.AnythingOfType("time.Time")).Return(fresh, nil)

	stats, err := svc.Dashboard(context.Background(), contractorID)
	assert.NoError(t, err)
	assert.Equal(t, fresh, stats)
}
