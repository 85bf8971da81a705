package domain

import (
	"time"

	"github.com/google/uuid"
)

type EstimateStatus string

const (
	EstimateStatusDraft     EstimateStatus = "draft"
	EstimateStatusSent      EstimateStatus = "sent"
	EstimateStatusApproved  EstimateStatus = "approved"
	EstimateStatusRejected  EstimateStatus = "rejected"
	EstimateStatusConverted EstimateStatus = "converted"
)

func ValidateEstimateStatus(status EstimateStatus) error {
	switch status {
	case EstimateStatusDraft, EstimateStatusSent, EstimateStatusApproved,
		EstimateStatusRejected, EstimateStatusConverted:
		return nil
	}
	return ErrInvalidEstimateStatus
}

type EstimateItem struct {
	ID             uuid.UUID `json:"id"`
	EstimateID     uuid.UUID `json:"estimate_id"`
	Description    string    `json:"description"`
	Quantity       int       `json:"quantity"`
	UnitPriceCents int64     `json:"unit_price_cents"`
}

func (i EstimateItem) AmountCents() int64 {
	return int64(i.Quantity) * i.UnitPriceCents
}

type Estimate struct {
	ID           uuid.UUID      `json:"id"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	ContractorID uuid.UUID      `json:"contractor_id"`
	ClientID     uuid.UUID      `json:"client_id"`
	ProjectID    *uuid.UUID     `json:"project_id"`
	Title        string         `json:"title"`
	Notes        string         `json:"notes"`
	Status       EstimateStatus `json:"status"`
	TotalCents   int64          `json:"total_cents"`
	ValidUntil   *time.Time     `json:"valid_until"`
	Items        []EstimateItem `json:"items"`
}

// SumEstimateItems totals the line items. Stored estimate totals are
// always derived through this so the header never drifts from the items.
func SumEstimateItems(items []EstimateItem) int64 {
	var total int64
	for _, item := range items {
		total += item.AmountCents()
	}
	return total
}

// Convertible reports whether the estimate can become an invoice.
func (e *Estimate) Convertible() error {
	switch e.Status {
	case EstimateStatusConverted:
		return ErrEstimateAlreadyConverted
	case EstimateStatusApproved:
		return nil
	default:
		return ErrEstimateNotApproved
	}
}
