package domain

import "github.com/google/uuid"

// AnalysisItem is one line of work submitted for cost analysis, either
// taken from a stored estimate or supplied ad hoc.
type AnalysisItem struct {
	Description    string `json:"description"`
	Quantity       int    `json:"quantity"`
	UnitPriceCents int64  `json:"unit_price_cents"`
}

type CostAnalysisRequest struct {
	ContractorID uuid.UUID      `json:"contractor_id"`
	EstimateID   *uuid.UUID     `json:"estimate_id"`
	Items        []AnalysisItem `json:"items"`
}

type ItemAssessment struct {
	Description string `json:"description"`
	Verdict     string `json:"verdict"`
}

// CostAnalysis is the structured verdict from the analysis backend.
type CostAnalysis struct {
	SuggestedLowCents  int64            `json:"suggested_low_cents"`
	SuggestedHighCents int64            `json:"suggested_high_cents"`
	Confidence         float64          `json:"confidence"`
	Summary            string           `json:"summary"`
	Assessments        []ItemAssessment `json:"assessments"`
}
