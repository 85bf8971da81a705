package domain

// DashboardStats aggregates a tenant's headline numbers. The same
// snapshot feeds the dashboard endpoint and achievement evaluation.
type DashboardStats struct {
	Clients           int   `json:"clients"`
	ActiveProjects    int   `json:"active_projects"`
	CompletedProjects int   `json:"completed_projects"`
	OpenInvoices      int   `json:"open_invoices"`
	PaidInvoices      int   `json:"paid_invoices"`
	UpcomingEvents    int   `json:"upcoming_events"`
	EventsThisWeek    int   `json:"events_this_week"`
	OutstandingCents  int64 `json:"outstanding_cents"`
	CollectedCents    int64 `json:"collected_cents"`
}
