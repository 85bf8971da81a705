package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"contractor-service/internal/core/domain"
	"contractor-service/internal/testutil"
)

func TestAchievementService_List(t *testing.T) {
	repo := new(testutil.MockAchievementRepo)
	svc := NewAchievementService(repo, new(testutil.MockStatsRepo), new(testutil.MockContractorRepo))

	contractorID := uuid.New()
	earnedAt := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	repo.On("ListDefinitions", mock.Anything).Return([]*domain.AchievementDefinition{
		{Code: domain.AchievementFirstClient, Name: "First Client", Points: 10},
		{Code: domain.AchievementRevenue10K, Name: "Revenue Milestone", Points: 50},
	}, nil)
	repo.On("ListEarned", mock.Anything, contractorID).Return([]*domain.EarnedAchievement{
		{ContractorID: contractorID, Code: domain.AchievementFirstClient, EarnedAt: earnedAt},
	}, nil)

	statuses, err := svc.List(context.Background(), contractorID)
	assert.NoError(t, err)
	assert.Len(t, statuses, 2)
	assert.True(t, statuses[0].Earned)
	assert.Equal(t, earnedAt, *statuses[0].EarnedAt)
	assert.False(t, statuses[1].Earned)
	assert.Nil(t, statuses[1].EarnedAt)
}

func TestAchievementService_Evaluate_AwardsOnlyNew(t *testing.T) {
	repo := new(testutil.MockAchievementRepo)
	statsRepo := new(testutil.MockStatsRepo)
	svc := NewAchievementService(repo, statsRepo, new(testutil.MockContractorRepo))

	contractorID := uuid.New()
	statsRepo.On("Dashboard", mock.Anything, contractorID, mock.AnythingOfType("time.Time")).Return(&domain.DashboardStats{
		Clients:           2,
		CompletedProjects: 1,
	}, nil)
	repo.On("ListEarned", mock.Anything, contractorID).Return([]*domain.EarnedAchievement{
		{ContractorID: contractorID, Code: domain.AchievementFirstClient},
	}, nil)
	repo.On("Award", mock.Anything, contractorID, domain.AchievementFirstProjectCompleted).Return(nil)

	awarded, err := svc.Evaluate(context.Background(), contractorID)
	assert.NoError(t, err)
	assert.Equal(t, []domain.AchievementCode{domain.AchievementFirstProjectCompleted}, awarded)
	repo.AssertNotCalled(t, "Award", mock.Anything, contractorID, domain.AchievementFirstClient)
}

func TestAchievementService_Evaluate_NothingNew(t *testing.T) {
	repo := new(testutil.MockAchievementRepo)
	statsRepo := new(testutil.MockStatsRepo)
	svc := NewAchievementService(repo, statsRepo, new(testutil.MockContractorRepo))

	contractorID := uuid.New()
	statsRepo.On("Dashboard", mock.Anything, contractorID, mock.AnythingOfType("time.Time")).Return(&domain.DashboardStats{}, nil)
	repo.On("ListEarned", mock.Anything, contractorID).Return([]*domain.EarnedAchievement{}, nil)

	awarded, err := svc.Evaluate(context.Background(), contractorID)
	assert.NoError(t, err)
	assert.Empty(t, awarded)
}

func TestAchievementService_EvaluateAll_ContinuesOnFailure(t *testing.T) {
	repo := new(testutil.MockAchievementRepo)
	statsRepo := new(testutil.MockStatsRepo)
	contractorRepo := new(testutil.MockContractorRepo)
	svc := NewAchievementService(repo, statsRepo, contractorRepo)

	failing := uuid.New()
	healthy := uuid.New()
	contractorRepo.On("ListIDs", mock.Anything).Return([]uuid.UUID{failing, healthy}, nil)
	statsRepo.On("Dashboard", mock.Anything, failing, mock.AnythingOfType("time.Time")).Return(nil, errors.New("query timeout"))
	statsRepo.On("Dashboard", mock.Anything, healthy, mock.AnythingOfType("time.Time")).Return(&domain.DashboardStats{Clients: 1}, nil)
	repo.On("ListEarned", mock.Anything, healthy).Return([]*domain.EarnedAchievement{}, nil)
	repo.On("Award", mock.Anything, healthy, domain.AchievementFirstClient).Return(nil)

	err := svc.EvaluateAll(context.Background())
	assert.NoError(t, err)
	repo.AssertExpectations(t)
}
