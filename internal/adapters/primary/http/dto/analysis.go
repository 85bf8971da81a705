package dto

import (
	"github.com/google/uuid"

	"contractor-service/internal/core/domain"
)

type AnalysisItemRequest struct {
	Description    string `json:"description" binding:"required,max=300"`
	Quantity       int    `json:"quantity" binding:"required,min=1"`
	UnitPriceCents int64  `json:"unit_price_cents" binding:"min=0"`
}

// CostAnalysisRequest submits either a stored estimate or ad hoc items.
type CostAnalysisRequest struct {
	EstimateID *uuid.UUID            `json:"estimate_id"`
	Items      []AnalysisItemRequest `json:"items" binding:"omitempty,dive"`
}

type ItemAssessmentResponse struct {
	Description string `json:"description"`
	Verdict     string `json:"verdict"`
}

type CostAnalysisResponse struct {
	SuggestedLowCents  int64                    `json:"suggested_low_cents"`
	SuggestedHighCents int64                    `json:"suggested_high_cents"`
	Confidence         float64                  `json:"confidence"`
	Summary            string                   `json:"summary"`
	Assessments        []ItemAssessmentResponse `json:"assessments"`
}

func ToAnalysisItems(items []AnalysisItemRequest) []domain.AnalysisItem {
	out := make([]domain.AnalysisItem, 0, len(items))
	for _, item := range items {
		out = append(out, domain.AnalysisItem{
			Description:    item.Description,
			Quantity:       item.Quantity,
			UnitPriceCents: item.UnitPriceCents,
		})
	}
	return out
}

func ToCostAnalysisResponse(a *domain.CostAnalysis) CostAnalysisResponse {
	resp := CostAnalysisResponse{
		SuggestedLowCents:  a.SuggestedLowCents,
		SuggestedHighCents: a.SuggestedHighCents,
		Confidence:         a.Confidence,
		Summary:            a.Summary,
		Assessments:        make([]ItemAssessmentResponse, 0, len(a.Assessments)),
	}
	for _, assessment := range a.Assessments {
		resp.Assessments = append(resp.Assessments, ItemAssessmentResponse{
			Description: assessment.Description,
			Verdict:     assessment.Verdict,
		})
	}
	return resp
}
