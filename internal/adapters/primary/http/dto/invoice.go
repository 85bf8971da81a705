package dto

import (
	"time"

	"github.com/google/uuid"

	"contractor-service/internal/core/domain"
)

type InvoiceItemRequest struct {
	Description    string `json:"description" binding:"required,max=300"`
	Quantity       int    `json:"quantity" binding:"required,min=1"`
	UnitPriceCents int64  `json:"unit_price_cents" binding:"min=0"`
}

type CreateInvoiceRequest struct {
	ClientID  uuid.UUID            `json:"client_id" binding:"required"`
	ProjectID *uuid.UUID           `json:"project_id"`
	Draft     bool                 `json:"draft"`
	DueAt     *time.Time           `json:"due_at"`
	Items     []InvoiceItemRequest `json:"items" binding:"required,min=1,dive"`
}

type UpdateInvoiceRequest struct {
	Status *string              `json:"status"`
	DueAt  *time.Time           `json:"due_at"`
	Items  []InvoiceItemRequest `json:"items" binding:"omitempty,min=1,dive"`
}

type RecordPaymentRequest struct {
	AmountCents int64 `json:"amount_cents" binding:"required"`
}

type InvoiceItemResponse struct {
	ID             uuid.UUID `json:"id"`
	Description    string    `json:"description"`
	Quantity       int       `json:"quantity"`
	UnitPriceCents int64     `json:"unit_price_cents"`
	AmountCents    int64     `json:"amount_cents"`
}

type InvoiceResponse struct {
	ID               uuid.UUID             `json:"id"`
	CreatedAt        string                `json:"created_at"`
	UpdatedAt        string                `json:"updated_at"`
	ClientID         uuid.UUID             `json:"client_id"`
	ProjectID        *uuid.UUID            `json:"project_id,omitempty"`
	EstimateID       *uuid.UUID            `json:"estimate_id,omitempty"`
	Number           int                   `json:"number"`
	Status           string                `json:"status"`
	TotalCents       int64                 `json:"total_cents"`
	AmountPaidCents  int64                 `json:"amount_paid_cents"`
	OutstandingCents int64                 `json:"outstanding_cents"`
	IssuedAt         string                `json:"issued_at"`
	DueAt            string                `json:"due_at"`
	Items            []InvoiceItemResponse `json:"items"`
}

type ListInvoicesResponse struct {
	Items      []InvoiceResponse `json:"items"`
	Total      int               `json:"total"`
	PageSize   int               `json:"page_size"`
	NextOffset int               `json:"next_offset"`
}

func ToInvoiceItems(items []InvoiceItemRequest) []domain.InvoiceItem {
	out := make([]domain.InvoiceItem, 0, len(items))
	for _, item := range items {
		out = append(out, domain.InvoiceItem{
			Description:    item.Description,
			Quantity:       item.Quantity,
			UnitPriceCents: item.UnitPriceCents,
		})
	}
	return out
}

func ToInvoiceResponse(inv *domain.Invoice) InvoiceResponse {
	resp := InvoiceResponse{
		ID:               inv.ID,
		CreatedAt:        inv.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        inv.UpdatedAt.Format(time.RFC3339),
		ClientID:         inv.ClientID,
		ProjectID:        inv.ProjectID,
		EstimateID:       inv.EstimateID,
		Number:           inv.Number,
		Status:           string(inv.Status),
		TotalCents:       inv.TotalCents,
		AmountPaidCents:  inv.AmountPaidCents,
		OutstandingCents: inv.OutstandingCents(),
		IssuedAt:         inv.IssuedAt.Format(time.RFC3339),
		DueAt:            inv.DueAt.Format(time.RFC3339),
		Items:            make([]InvoiceItemResponse, 0, len(inv.Items)),
	}
	for _, item := range inv.Items {
		resp.Items = append(resp.Items, InvoiceItemResponse{
			ID:             item.ID,
			Description:    item.Description,
			Quantity:       item.Quantity,
			UnitPriceCents: item.UnitPriceCents,
			AmountCents:    item.AmountCents(),
		})
	}
	return resp
}
