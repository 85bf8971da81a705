package domain

import (
	"time"

	"github.com/google/uuid"
)

type InvoiceStatus string

const (
	InvoiceStatusDraft         InvoiceStatus = "draft"
	InvoiceStatusPending       InvoiceStatus = "pending"
	InvoiceStatusPartiallyPaid InvoiceStatus = "partially_paid"
	InvoiceStatusPaid          InvoiceStatus = "paid"
	InvoiceStatusOverdue       InvoiceStatus = "overdue"
	InvoiceStatusCancelled     InvoiceStatus = "cancelled"
)

type InvoiceItem struct {
	ID             uuid.UUID `json:"id"`
	InvoiceID      uuid.UUID `json:"invoice_id"`
	Description    string    `json:"description"`
	Quantity       int       `json:"quantity"`
	UnitPriceCents int64     `json:"unit_price_cents"`
}

func (i InvoiceItem) AmountCents() int64 {
	return int64(i.Quantity) * i.UnitPriceCents
}

type Invoice struct {
	ID              uuid.UUID     `json:"id"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
	ContractorID    uuid.UUID     `json:"contractor_id"`
	ClientID        uuid.UUID     `json:"client_id"`
	ProjectID       *uuid.UUID    `json:"project_id"`
	EstimateID      *uuid.UUID    `json:"estimate_id"`
	Number          int           `json:"number"`
	Status          InvoiceStatus `json:"status"`
	TotalCents      int64         `json:"total_cents"`
	AmountPaidCents int64         `json:"amount_paid_cents"`
	IssuedAt        time.Time     `json:"issued_at"`
	DueAt           time.Time     `json:"due_at"`
	Items           []InvoiceItem `json:"items"`
}

func SumInvoiceItems(items []InvoiceItem) int64 {
	var total int64
	for _, item := range items {
		total += item.AmountCents()
	}
	return total
}

// OutstandingCents is the unpaid balance.
func (inv *Invoice) OutstandingCents() int64 {
	return inv.TotalCents - inv.AmountPaidCents
}

// Payable reports whether a payment may be applied in the current status.
func (inv *Invoice) Payable() bool {
	switch inv.Status {
	case InvoiceStatusPending, InvoiceStatusPartiallyPaid, InvoiceStatusOverdue:
		return true
	}
	return false
}

// ApplyPayment increments the paid amount and advances the status:
// partially_paid while a balance remains, paid once settled in full.
// The caller persists the result.
func (inv *Invoice) ApplyPayment(amountCents int64) error {
	if !inv.Payable() {
		return ErrInvoiceNotPayable
	}
	if amountCents <= 0 {
		return ErrInvalidPaymentAmount
	}
	if amountCents > inv.OutstandingCents() {
		return ErrPaymentExceedsBalance
	}

	inv.AmountPaidCents += amountCents
	if inv.AmountPaidCents >= inv.TotalCents {
		inv.Status = InvoiceStatusPaid
	} else {
		inv.Status = InvoiceStatusPartiallyPaid
	}
	return nil
}
