package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"contractor-service/internal/core/domain"
	ports "contractor-service/internal/core/ports/output"
)

type statsRepo struct {
	pool *pgxpool.Pool
}

func NewStatsRepository(pool *pgxpool.Pool) ports.StatsRepository {
	return &statsRepo{pool: pool}
}

// Dashboard computes the tenant snapshot in a single round trip.
// "This week" is the Monday-anchored week containing now.
func (r *statsRepo) Dashboard(ctx context.Context, contractorID uuid.UUID, now time.Time) (*domain.DashboardStats, error) {
	weekStart := startOfWeek(now)
	weekEnd := weekStart.AddDate(0, 0, 7)
	upcomingEnd := now.AddDate(0, 0, 7)

	query := `
		SELECT
			(SELECT COUNT(*) FROM clients WHERE contractor_id=$1),
			(SELECT COUNT(*) FROM projects WHERE contractor_id=$1 AND status IN ('scheduled','in_progress')),
			(SELECT COUNT(*) FROM projects WHERE contractor_id=$1 AND status='completed'),
			(SELECT COUNT(*) FROM invoices WHERE contractor_id=$1 AND status IN ('pending','partially_paid','overdue')),
			(SELECT COUNT(*) FROM invoices WHERE contractor_id=$1 AND status='paid'),
			(SELECT COUNT(*) FROM events WHERE contractor_id=$1 AND starts_at >= $2 AND starts_at < $3),
			(SELECT COUNT(*) FROM events WHERE contractor_id=$1 AND starts_at >= $4 AND starts_at < $5),
			(SELECT COALESCE(SUM(total_cents - amount_paid_cents), 0) FROM invoices WHERE contractor_id=$1 AND status IN ('pending','partially_paid','overdue')),
			(SELECT COALESCE(SUM(amount_paid_cents), 0) FROM invoices WHERE contractor_id=$1)
	`
	stats := &domain.DashboardStats{}
	err := r.pool.QueryRow(ctx, query, contractorID, now, upcomingEnd, weekStart, weekEnd).Scan(
		&stats.Clients,
		&stats.ActiveProjects,
		&stats.CompletedProjects,
		&stats.OpenInvoices,
		&stats.PaidInvoices,
		&stats.UpcomingEvents,
		&stats.EventsThisWeek,
		&stats.OutstandingCents,
		&stats.CollectedCents,
	)
	if err != nil {
		return nil, fmt.Errorf("dashboard stats: %w", err)
	}
	return stats, nil
}

func startOfWeek(t time.Time) time.Time {
	t = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	return t.AddDate(0, 0, -(weekday - 1))
}
