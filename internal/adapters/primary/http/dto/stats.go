package dto

import "contractor-service/internal/core/domain"

type DashboardStatsResponse struct {
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

func ToDashboardStatsResponse(s *domain.DashboardStats) DashboardStatsResponse {
	return DashboardStatsResponse{
		Clients:           s.Clients,
		ActiveProjects:    s.ActiveProjects,
		CompletedProjects: s.CompletedProjects,
		OpenInvoices:      s.OpenInvoices,
		PaidInvoices:      s.PaidInvoices,
		UpcomingEvents:    s.UpcomingEvents,
		EventsThisWeek:    s.EventsThisWeek,
		OutstandingCents:  s.OutstandingCents,
		CollectedCents:    s.CollectedCents,
	}
}
