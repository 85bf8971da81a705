package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"contractor-service/internal/core/domain"
	ports "contractor-service/internal/core/ports/output"
)

type ContractorService struct {
	repo ports.ContractorRepository
}

func NewContractorService(repo ports.ContractorRepository) *ContractorService {
	return &ContractorService{repo: repo}
}

// Register creates a new tenant on the free plan.
func (s *ContractorService) Register(ctx context.Context, companyName, email, phone string) (*domain.Contractor, error) {
	if companyName == "" {
		return nil, domain.ErrInvalidContractorName
	}
	if email == "" {
		return nil, domain.ErrInvalidContractorEmail
	}

	now := time.Now()
	contractor := &domain.Contractor{
		ID:                 uuid.New(),
		CreatedAt:          now,
		UpdatedAt:          now,
		CompanyName:        companyName,
		Email:              email,
		Phone:              phone,
		Plan:               domain.PlanFree,
		SubscriptionStatus: domain.SubscriptionActive,
	}

	if err := s.repo.Create(ctx, contractor); err != nil {
		return nil, err
	}
	return contractor, nil
}

func (s *ContractorService) Get(ctx context.Context, id uuid.UUID) (*domain.Contractor, error) {
	return s.repo.GetByID(ctx, id)
}

// ChangePlan switches the subscription plan. Upgrading or re-activating
// sets the subscription active and pushes the renewal date out a month.
func (s *ContractorService) ChangePlan(ctx context.Context, id uuid.UUID, plan domain.Plan) (*domain.Contractor, error) {
	if err := domain.ValidatePlan(plan); err != nil {
		return nil, err
	}

	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	renewsAt := time.Now().AddDate(0, 1, 0)
	if err := s.repo.UpdateSubscription(ctx, id, plan, domain.SubscriptionActive, &renewsAt); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

// CancelSubscription drops the tenant back to the free plan.
func (s *ContractorService) CancelSubscription(ctx context.Context, id uuid.UUID) (*domain.Contractor, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateSubscription(ctx, id, domain.PlanFree, domain.SubscriptionCanceled, nil); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}
