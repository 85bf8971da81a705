package testutil

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"contractor-service/internal/core/domain"
	ports "contractor-service/internal/core/ports/output"
)

// MockContractorRepo is a mock of ContractorRepository.
type MockContractorRepo struct {
	mock.Mock
}

func (m *MockContractorRepo) Create(ctx context.Context, contractor *domain.Contractor) error {
	args := m.Called(ctx, contractor)
	return args.Error(0)
}

func (m *MockContractorRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Contractor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Contractor), args.Error(1)
}

func (m *MockContractorRepo) UpdateSubscription(ctx context.Context, id uuid.UUID, plan domain.Plan, status domain.SubscriptionStatus, renewsAt *time.Time) error {
	args := m.Called(ctx, id, plan, status, renewsAt)
	return args.Error(0)
}

func (m *MockContractorRepo) ListIDs(ctx context.Context) ([]uuid.UUID, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

// MockClientRepo is a mock of ClientRepository.
type MockClientRepo struct {
	mock.Mock
}

func (m *MockClientRepo) Create(ctx context.Context, client *domain.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepo) GetByID(ctx context.Context, contractorID, id uuid.UUID) (*domain.Client, error) {
	args := m.Called(ctx, contractorID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientRepo) Update(ctx context.Context, contractorID uuid.UUID, client *domain.Client) error {
	args := m.Called(ctx, contractorID, client)
	return args.Error(0)
}

func (m *MockClientRepo) Delete(ctx context.Context, contractorID, id uuid.UUID) error {
	args := m.Called(ctx, contractorID, id)
	return args.Error(0)
}

func (m *MockClientRepo) List(ctx context.Context, filter ports.ListFilter) ([]*domain.Client, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*domain.Client), args.Int(1), args.Error(2)
}

// MockProjectRepo is a mock of ProjectRepository.
type MockProjectRepo struct {
	mock.Mock
}

func (m *MockProjectRepo) Create(ctx context.Context, project *domain.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepo) GetByID(ctx context.Context, contractorID, id uuid.UUID) (*domain.Project, error) {
	args := m.Called(ctx, contractorID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

func (m *MockProjectRepo) Update(ctx context.Context, contractorID uuid.UUID, project *domain.Project) error {
	args := m.Called(ctx, contractorID, project)
	return args.Error(0)
}

func (m *MockProjectRepo) Delete(ctx context.Context, contractorID, id uuid.UUID) error {
	args := m.Called(ctx, contractorID, id)
	return args.Error(0)
}

func (m *MockProjectRepo) List(ctx context.Context, filter ports.ProjectListFilter) ([]*domain.Project, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*domain.Project), args.Int(1), args.Error(2)
}

func (m *MockProjectRepo) CountByClient(ctx context.Context, contractorID, clientID uuid.UUID) (int, error) {
	args := m.Called(ctx, contractorID, clientID)
	return args.Int(0), args.Error(1)
}

// MockEstimateRepo is a mock of EstimateRepository.
type MockEstimateRepo struct {
	mock.Mock
}

func (m *MockEstimateRepo) Create(ctx context.Context, estimate *domain.Estimate) error {
	args := m.Called(ctx, estimate)
	return args.Error(0)
}

func (m *MockEstimateRepo) GetByID(ctx context.Context, contractorID, id uuid.UUID) (*domain.Estimate, error) {
	args := m.Called(ctx, contractorID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Estimate), args.Error(1)
}

func (m *MockEstimateRepo) Update(ctx context.Context, contractorID uuid.UUID, estimate *domain.Estimate) error {
	args := m.Called(ctx, contractorID, estimate)
	return args.Error(0)
}

func (m *MockEstimateRepo) Delete(ctx context.Context, contractorID, id uuid.UUID) error {
	args := m.Called(ctx, contractorID, id)
	return args.Error(0)
}

func (m *MockEstimateRepo) List(ctx context.Context, filter ports.EstimateListFilter) ([]*domain.Estimate, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*domain.Estimate), args.Int(1), args.Error(2)
}

// MockInvoiceRepo is a mock of InvoiceRepository.
type MockInvoiceRepo struct {
	mock.Mock
}

func (m *MockInvoiceRepo) Create(ctx context.Context, invoice *domain.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *MockInvoiceRepo) GetByID(ctx context.Context, contractorID, id uuid.UUID) (*domain.Invoice, error) {
	args := m.Called(ctx, contractorID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepo) Update(ctx context.Context, contractorID uuid.UUID, invoice *domain.Invoice) error {
	args := m.Called(ctx, contractorID, invoice)
	return args.Error(0)
}

func (m *MockInvoiceRepo) Delete(ctx context.Context, contractorID, id uuid.UUID) error {
	args := m.Called(ctx, contractorID, id)
	return args.Error(0)
}

func (m *MockInvoiceRepo) List(ctx context.Context, filter ports.InvoiceListFilter) ([]*domain.Invoice, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*domain.Invoice), args.Int(1), args.Error(2)
}

func (m *MockInvoiceRepo) NextNumber(ctx context.Context, contractorID uuid.UUID) (int, error) {
	args := m.Called(ctx, contractorID)
	return args.Int(0), args.Error(1)
}

func (m *MockInvoiceRepo) UpdatePayment(ctx context.Context, contractorID, id uuid.UUID, amountPaidCents int64, status domain.InvoiceStatus) error {
	args := m.Called(ctx, contractorID, id, amountPaidCents, status)
	return args.Error(0)
}

func (m *MockInvoiceRepo) MarkOverdue(ctx context.Context, asOf time.Time) (int64, error) {
	args := m.Called(ctx, asOf)
	return args.Get(0).(int64), args.Error(1)
}

// MockAgentRepo is a mock of AgentRepository.
type MockAgentRepo struct {
	mock.Mock
}

func (m *MockAgentRepo) Create(ctx context.Context, agent *domain.Agent) error {
	args := m.Called(ctx, agent)
	return args.Error(0)
}

func (m *MockAgentRepo) GetByID(ctx context.Context, contractorID, id uuid.UUID) (*domain.Agent, error) {
	args := m.Called(ctx, contractorID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Agent), args.Error(1)
}

func (m *MockAgentRepo) Update(ctx context.Context, contractorID uuid.UUID, agent *domain.Agent) error {
	args := m.Called(ctx, contractorID, agent)
	return args.Error(0)
}

func (m *MockAgentRepo) Delete(ctx context.Context, contractorID, id uuid.UUID) error {
	args := m.Called(ctx, contractorID, id)
	return args.Error(0)
}

func (m *MockAgentRepo) List(ctx context.Context, filter ports.AgentListFilter) ([]*domain.Agent, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*domain.Agent), args.Int(1), args.Error(2)
}

// MockEventRepo is a mock of EventRepository.
type MockEventRepo struct {
	mock.Mock
}

func (m *MockEventRepo) Create(ctx context.Context, event *domain.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventRepo) GetByID(ctx context.Context, contractorID, id uuid.UUID) (*domain.Event, error) {
	args := m.Called(ctx, contractorID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Event), args.Error(1)
}

func (m *MockEventRepo) Update(ctx context.Context, contractorID uuid.UUID, event *domain.Event) error {
	args := m.Called(ctx, contractorID, event)
	return args.Error(0)
}

func (m *MockEventRepo) Delete(ctx context.Context, contractorID, id uuid.UUID) error {
	args := m.Called(ctx, contractorID, id)
	return args.Error(0)
}

func (m *MockEventRepo) List(ctx context.Context, filter ports.EventListFilter) ([]*domain.Event, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*domain.Event), args.Int(1), args.Error(2)
}

func (m *MockEventRepo) ListOverlapping(ctx context.Context, contractorID, agentID uuid.UUID, start, end time.Time, excludeID uuid.UUID) ([]*domain.Event, error) {
	args := m.Called(ctx, contractorID, agentID, start, end, excludeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Event), args.Error(1)
}

// MockAchievementRepo is a mock of AchievementRepository.
type MockAchievementRepo struct {
	mock.Mock
}

func (m *MockAchievementRepo) ListDefinitions(ctx context.Context) ([]*domain.AchievementDefinition, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.AchievementDefinition), args.Error(1)
}

func (m *MockAchievementRepo) ListEarned(ctx context.Context, contractorID uuid.UUID) ([]*domain.EarnedAchievement, error) {
	args := m.Called(ctx, contractorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.EarnedAchievement), args.Error(1)
}

func (m *MockAchievementRepo) Award(ctx context.Context, contractorID uuid.UUID, code domain.AchievementCode) error {
	args := m.Called(ctx, contractorID, code)
	return args.Error(0)
}

// MockStatsRepo is a mock of StatsRepository.
type MockStatsRepo struct {
	mock.Mock
}

func (m *MockStatsRepo) Dashboard(ctx context.Context, contractorID uuid.UUID, now time.Time) (*domain.DashboardStats, error) {
	args := m.Called(ctx, contractorID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardStats), args.Error(1)
}

// MockStatsCache is a mock of StatsCache.
type MockStatsCache struct {
	mock.Mock
}

func (m *MockStatsCache) GetDashboard(ctx context.Context, contractorID uuid.UUID) (*domain.DashboardStats, error) {
	args := m.Called(ctx, contractorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardStats), args.Error(1)
}

func (m *MockStatsCache) SetDashboard(ctx context.Context, contractorID uuid.UUID, stats *domain.DashboardStats) error {
	args := m.Called(ctx, contractorID, stats)
	return args.Error(0)
}

// MockAnalysisClient is a mock of AnalysisClient.
type MockAnalysisClient struct {
	mock.Mock
}

func (m *MockAnalysisClient) IsAvailable() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockAnalysisClient) AnalyzeCost(ctx context.Context, req *domain.CostAnalysisRequest) (*domain.CostAnalysis, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CostAnalysis), args.Error(1)
}
