package services

import (
	"context"

	"github.com/google/uuid"

	"contractor-service/internal/core/domain"
	ports "contractor-service/internal/core/ports/output"
)

type AnalysisService struct {
	client       ports.AnalysisClient
	estimateRepo ports.EstimateRepository
}

func NewAnalysisService(client ports.AnalysisClient, estimateRepo ports.EstimateRepository) *AnalysisService {
	return &AnalysisService{client: client, estimateRepo: estimateRepo}
}

// AnalyzeCost asks the analysis backend for a verdict on a set of line
// items, either loaded from a stored estimate or passed ad hoc.
func (s *AnalysisService) AnalyzeCost(ctx context.Context, contractorID uuid.UUID, estimateID *uuid.UUID, items []domain.AnalysisItem) (*domain.CostAnalysis, error) {
	if s.client == nil || !s.client.IsAvailable() {
		return nil, domain.ErrAnalysisNotAvailable
	}

	if estimateID != nil {
		estimate, err := s.estimateRepo.GetByID(ctx, contractorID, *estimateID)
		if err != nil {
			return nil, err
		}
		items = items[:0]
		for _, item := range estimate.Items {
			items = append(items, domain.AnalysisItem{
				Description:    item.Description,
				Quantity:       item.Quantity,
				UnitPriceCents: item.UnitPriceCents,
			})
		}
	}
	if len(items) == 0 {
		return nil, domain.ErrNoAnalysisItems
	}

	return s.client.AnalyzeCost(ctx, &domain.CostAnalysisRequest{
		ContractorID: contractorID,
		EstimateID:   estimateID,
		Items:        items,
	})
}
