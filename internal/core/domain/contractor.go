package domain

import (
	"time"

	"github.com/google/uuid"
)

type Plan string

const (
	PlanFree     Plan = "free"
	PlanPro      Plan = "pro"
	PlanBusiness Plan = "business"
)

func ValidatePlan(plan Plan) error {
	switch plan {
	case PlanFree, PlanPro, PlanBusiness:
		return nil
	}
	return ErrInvalidPlan
}

type SubscriptionStatus string

const (
	SubscriptionActive   SubscriptionStatus = "active"
	SubscriptionPastDue  SubscriptionStatus = "past_due"
	SubscriptionCanceled SubscriptionStatus = "canceled"
)

func ValidateSubscriptionStatus(status SubscriptionStatus) error {
	switch status {
	case SubscriptionActive, SubscriptionPastDue, SubscriptionCanceled:
		return nil
	}
	return ErrInvalidSubscription
}

// Contractor is the tenant. Every other record in the system is scoped
// to exactly one contractor.
type Contractor struct {
	ID                 uuid.UUID          `json:"id"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
	CompanyName        string             `json:"company_name"`
	Email              string             `json:"email"`
	Phone              string             `json:"phone"`
	Plan               Plan               `json:"plan"`
	SubscriptionStatus SubscriptionStatus `json:"subscription_status"`
	RenewsAt           *time.Time         `json:"renews_at"`
}
