package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"contractor-service/internal/core/domain"
	"contractor-service/internal/testutil"
)

func TestAnalysisService_AnalyzeCost(t *testing.T) {
	client := new(testutil.MockAnalysisClient)
	svc := NewAnalysisService(client, new(testutil.MockEstimateRepo))

	contractorID := uuid.New()
	items := []domain.AnalysisItem{{Description: "Drywall", Quantity: 10, UnitPriceCents: 4_500}}
	verdict := &domain.CostAnalysis{SuggestedLowCents: 40_000, SuggestedHighCents: 55_000, Confidence: 0.8}

	client.On("IsAvailable").Return(true)
	client.On("AnalyzeCost", mock.Anything, mock.MatchedBy(func(req *domain.CostAnalysisRequest) bool {
		return req.ContractorID == contractorID && len(req.Items) == 1
	})).Return(verdict, nil)

	result, err := svc.AnalyzeCost(context.Background(), contractorID, nil, items)
	assert.NoError(t, err)
	assert.Equal(t, verdict, result)
}

func TestAnalysisService_AnalyzeCost_Unavailable(t *testing.T) {
	client := new(testutil.MockAnalysisClient)
	svc := NewAnalysisService(client, new(testutil.MockEstimateRepo))

	client.On("IsAvailable").Return(false)

	_, err := svc.AnalyzeCost(context.Background(), uuid.New(), nil, []domain.AnalysisItem{{Description: "Drywall"}})
	assert.ErrorIs(t, err, domain.ErrAnalysisNotAvailable)
	client.AssertNotCalled(t, "AnalyzeCost", mock.Anything, mock.Anything)
}

func TestAnalysisService_AnalyzeCost_NilClient(t *testing.T) {
	svc := NewAnalysisService(nil, new(testutil.MockEstimateRepo))

	_, err := svc.AnalyzeCost(context.Background(), uuid.New(), nil, []domain.AnalysisItem{{Description: "Drywall"}})
	assert.ErrorIs(t, err, domain.ErrAnalysisNotAvailable)
}

func TestAnalysisService_AnalyzeCost_FromEstimate(t *testing.T) {
	client := new(testutil.MockAnalysisClient)
	estimateRepo := new(testutil.MockEstimateRepo)
	svc := NewAnalysisService(client, estimateRepo)

	contractorID := uuid.New()
	estimateID := uuid.New()
	estimate := &domain.Estimate{
		ID: estimateID,
		Items: []domain.EstimateItem{
			{Description: "Tile", Quantity: 30, UnitPriceCents: 1_200},
			{Description: "Grout", Quantity: 2, UnitPriceCents: 3_000},
		},
	}

	client.On("IsAvailable").Return(true)
	estimateRepo.On("GetByID", mock.Anything, contractorID, estimateID).Return(estimate, nil)
	client.On("AnalyzeCost", mock.Anything, mock.MatchedBy(func(req *domain.CostAnalysisRequest) bool {
		return len(req.Items) == 2 && req.Items[0].Description == "Tile"
	})).Return(&domain.CostAnalysis{}, nil)

	_, err := svc.AnalyzeCost(context.Background(), contractorID, &estimateID, nil)
	assert.NoError(t, err)
	client.AssertExpectations(t)
}

func TestAnalysisService_AnalyzeCost_NoItems(t *testing.T) {
	client := new(testutil.MockAnalysisClient)
	svc := NewAnalysisService(client, new(testutil.MockEstimateRepo))

	client.On("IsAvailable").Return(true)

	_, err := svc.AnalyzeCost(context.Background(), uuid.New(), nil, nil)
	assert.ErrorIs(t, err, domain.ErrNoAnalysisItems)
}
