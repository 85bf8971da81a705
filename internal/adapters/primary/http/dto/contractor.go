package dto

import (
	"time"

	"github.com/google/uuid"

	"contractor-service/internal/core/domain"
)

type RegisterContractorRequest struct {
	CompanyName string `json:"company_name" binding:"required,max=150"`
	Email       string `json:"email" binding:"required,email"`
	Phone       string `json:"phone"`
}

type UpdateSubscriptionRequest struct {
	Plan   string `json:"plan" binding:"required"`
	Cancel bool   `json:"cancel"`
}

type ContractorResponse struct {
	ID                 uuid.UUID `json:"id"`
	CreatedAt          string    `json:"created_at"`
	UpdatedAt          string    `json:"updated_at"`
	CompanyName        string    `json:"company_name"`
	Email              string    `json:"email"`
	Phone              string    `json:"phone"`
	Plan               string    `json:"plan"`
	SubscriptionStatus string    `json:"subscription_status"`
	RenewsAt           *string   `json:"renews_at,omitempty"`
}

func ToContractorResponse(c *domain.Contractor) ContractorResponse {
	resp := ContractorResponse{
		ID:                 c.ID,
		CreatedAt:          c.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          c.UpdatedAt.Format(time.RFC3339),
		CompanyName:        c.CompanyName,
		Email:              c.Email,
		Phone:              c.Phone,
		Plan:               string(c.Plan),
		SubscriptionStatus: string(c.SubscriptionStatus),
	}
	if c.RenewsAt != nil {
		renews := c.RenewsAt.Format(time.RFC3339)
		resp.RenewsAt = &renews
	}
	return resp
}
