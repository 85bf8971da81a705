package domain

import (
	"time"

	"github.com/google/uuid"
)

type AchievementCode string

const (
	AchievementFirstClient           AchievementCode = "first_client"
	AchievementFirstProjectCompleted AchievementCode = "first_project_completed"
	AchievementTenProjectsCompleted  AchievementCode = "ten_projects_completed"
	AchievementFirstInvoicePaid      AchievementCode = "first_invoice_paid"
	AchievementRevenue10K            AchievementCode = "revenue_10k"
	AchievementFullyBookedWeek       AchievementCode = "fully_booked_week"
)

// AchievementDefinition is a catalog entry. The catalog is seeded by
// migration and read back from the database.
type AchievementDefinition struct {
	Code        AchievementCode `json:"code"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Points      int             `json:"points"`
}

// EarnedAchievement records that a contractor unlocked a catalog entry.
type EarnedAchievement struct {
	ContractorID uuid.UUID       `json:"contractor_id"`
	Code         AchievementCode `json:"code"`
	EarnedAt     time.Time       `json:"earned_at"`
}

// AchievementStatus is a catalog entry merged with the tenant's progress.
type AchievementStatus struct {
	AchievementDefinition
	Earned   bool       `json:"earned"`
	EarnedAt *time.Time `json:"earned_at,omitempty"`
}

// EligibleAchievements derives the codes a tenant qualifies for from its
// aggregate stats. Awarding is idempotent, so already-earned codes may
// appear here.
func EligibleAchievements(stats *DashboardStats) []AchievementCode {
	var codes []AchievementCode
	if stats.Clients >= 1 {
		codes = append(codes, AchievementFirstClient)
	}
	if stats.CompletedProjects >= 1 {
		codes = append(codes, AchievementFirstProjectCompleted)
	}
	if stats.CompletedProjects >= 10 {
		codes = append(codes, AchievementTenProjectsCompleted)
	}
	if stats.PaidInvoices >= 1 {
		codes = append(codes, AchievementFirstInvoicePaid)
	}
	if stats.CollectedCents >= 1_000_000 {
		codes = append(codes, AchievementRevenue10K)
	}
	if stats.EventsThisWeek >= 5 {
		codes = append(codes, AchievementFullyBookedWeek)
	}
	return codes
}
