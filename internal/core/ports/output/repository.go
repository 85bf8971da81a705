package ports

import (
	"context"
	"time"

	"github.com/google/uuid"

	"contractor-service/internal/core/domain"
)

// ListFilter carries the pagination and sorting fields shared by every
// list operation.
type ListFilter struct {
	ContractorID uuid.UUID
	Search       string
	SortBy       string
	Order        string
	Limit        int
	Offset       int
}

type ProjectListFilter struct {
	ListFilter
	ClientID uuid.UUID
	Status   string
}

type EstimateListFilter struct {
	ListFilter
	ClientID uuid.UUID
	Status   string
}

type InvoiceListFilter struct {
	ListFilter
	ClientID  uuid.UUID
	ProjectID uuid.UUID
	Status    string
}

type AgentListFilter struct {
	ListFilter
	Active *bool
}

type EventListFilter struct {
	ListFilter
	AgentID   uuid.UUID
	ProjectID uuid.UUID
	From      time.Time
	To        time.Time
}

type ContractorRepository interface {
	Create(ctx context.Context, contractor *domain.Contractor) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Contractor, error)
	UpdateSubscription(ctx context.Context, id uuid.UUID, plan domain.Plan, status domain.SubscriptionStatus, renewsAt *time.Time) error
	ListIDs(ctx context.Context) ([]uuid.UUID, error)
}

type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) error
	GetByID(ctx context.Context, contractorID, id uuid.UUID) (*domain.Client, error)
	Update(ctx context.Context, contractorID uuid.UUID, client *domain.Client) error
	Delete(ctx context.Context, contractorID, id uuid.UUID) error
	List(ctx context.Context, filter ListFilter) ([]*domain.Client, int, error)
}

type ProjectRepository interface {
	Create(ctx context.Context, project *domain.Project) error
	GetByID(ctx context.Context, contractorID, id uuid.UUID) (*domain.Project, error)
	Update(ctx context.Context, contractorID uuid.UUID, project *domain.Project) error
	Delete(ctx context.Context, contractorID, id uuid.UUID) error
	List(ctx context.Context, filter ProjectListFilter) ([]*domain.Project, int, error)
	CountByClient(ctx context.Context, contractorID, clientID uuid.UUID) (int, error)
}

type EstimateRepository interface {
	Create(ctx context.Context, estimate *domain.Estimate) error
	GetByID(ctx context.Context, contractorID, id uuid.UUID) (*domain.Estimate, error)
	Update(ctx context.Context, contractorID uuid.UUID, estimate *domain.Estimate) error
	Delete(ctx context.Context, contractorID, id uuid.UUID) error
	List(ctx context.Context, filter EstimateListFilter) ([]*domain.Estimate, int, error)
}

type InvoiceRepository interface {
	Create(ctx context.Context, invoice *domain.Invoice) error
	GetByID(ctx context.Context, contractorID, id uuid.UUID) (*domain.Invoice, error)
	Update(ctx context.Context, contractorID uuid.UUID, invoice *domain.Invoice) error
	Delete(ctx context.Context, contractorID, id uuid.UUID) error
	List(ctx context.Context, filter InvoiceListFilter) ([]*domain.Invoice, int, error)
	NextNumber(ctx context.Context, contractorID uuid.UUID) (int, error)
	UpdatePayment(ctx context.Context, contractorID, id uuid.UUID, amountPaidCents int64, status domain.InvoiceStatus) error
	MarkOverdue(ctx context.Context, asOf time.Time) (int64, error)
}

type AgentRepository interface {
	Create(ctx context.Context, agent *domain.Agent) error
	GetByID(ctx context.Context, contractorID, id uuid.UUID) (*domain.Agent, error)
	Update(ctx context.Context, contractorID uuid.UUID, agent *domain.Agent) error
	Delete(ctx context.Context, contractorID, id uuid.UUID) error
	List(ctx context.Context, filter AgentListFilter) ([]*domain.Agent, int, error)
}

type EventRepository interface {
	Create(ctx context.Context, event *domain.Event) error
	GetByID(ctx context.Context, contractorID, id uuid.UUID) (*domain.Event, error)
	Update(ctx context.Context, contractorID uuid.UUID, event *domain.Event) error
	Delete(ctx context.Context, contractorID, id uuid.UUID) error
	List(ctx context.Context, filter EventListFilter) ([]*domain.Event, int, error)
	// ListOverlapping returns the agent's events intersecting
	// [start, end), excluding excludeID when non-nil.
	ListOverlapping(ctx context.Context, contractorID, agentID uuid.UUID, start, end time.Time, excludeID uuid.UUID) ([]*domain.Event, error)
}

type AchievementRepository interface {
	ListDefinitions(ctx context.Context) ([]*domain.AchievementDefinition, error)
	ListEarned(ctx context.Context, contractorID uuid.UUID) ([]*domain.EarnedAchievement, error)
	// Award records an earned achievement. Awarding an already-earned
	// code is a no-op.
	Award(ctx context.Context, contractorID uuid.UUID, code domain.AchievementCode) error
}

type StatsRepository interface {
	Dashboard(ctx context.Context, contractorID uuid.UUID, now time.Time) (*domain.DashboardStats, error)
}
