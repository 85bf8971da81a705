package handlers

import (
	"contractor-service/internal/core/services"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	contractorSvc  *services.ContractorService
	clientSvc      *services.ClientService
	projectSvc     *services.ProjectService
	estimateSvc    *services.EstimateService
	invoiceSvc     *services.InvoiceService
	agentSvc       *services.AgentService
	eventSvc       *services.EventService
	achievementSvc *services.AchievementService
	analysisSvc    *services.AnalysisService
	statsSvc       *services.StatsService
}

func New(
	contractorSvc *services.ContractorService,
	clientSvc *services.ClientService,
	projectSvc *services.ProjectService,
	estimateSvc *services.EstimateService,
	invoiceSvc *services.InvoiceService,
	agentSvc *services.AgentService,
	eventSvc *services.EventService,
	achievementSvc *services.AchievementService,
	analysisSvc *services.AnalysisService,
	statsSvc *services.StatsService,
) *Handler {
	return &Handler{
		contractorSvc:  contractorSvc,
		clientSvc:      clientSvc,
		projectSvc:     projectSvc,
		estimateSvc:    estimateSvc,
		invoiceSvc:     invoiceSvc,
		agentSvc:       agentSvc,
		eventSvc:       eventSvc,
		achievementSvc: achievementSvc,
		analysisSvc:    analysisSvc,
		statsSvc:       statsSvc,
	}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	// Contractors (tenant registration is the only unscoped call)
	r.POST("/contractors", h.RegisterContractor)
	r.GET("/contractors/me", h.GetContractor)
	r.GET("/billing/subscription", h.GetSubscription)
	r.PUT("/billing/subscription", h.UpdateSubscription)

	// Clients
	r.GET("/clients", h.ListClients)
	r.GET("/clients/:id", h.GetClient)
	r.POST("/clients", h.CreateClient)
	r.PATCH("/clients/:id", h.UpdateClient)
	r.DELETE("/clients/:id", h.DeleteClient)

	// Projects
	r.GET("/projects", h.ListProjects)
	r.GET("/projects/:id", h.GetProject)
	r.POST("/projects", h.CreateProject)
	r.PATCH("/projects/:id", h.UpdateProject)
	r.DELETE("/projects/:id", h.DeleteProject)
	r.POST("/projects/:id/status", h.TransitionProject)

	// Estimates
	r.GET("/estimates", h.ListEstimates)
	r.GET("/estimates/:id", h.GetEstimate)
	r.POST("/estimates", h.CreateEstimate)
	r.PATCH("/estimates/:id", h.UpdateEstimate)
	r.DELETE("/estimates/:id", h.DeleteEstimate)
	r.POST("/estimates/:id/convert", h.ConvertEstimate)

	// Invoices
	r.GET("/invoices", h.ListInvoices)
	r.GET("/invoices/:id", h.GetInvoice)
	r.POST("/invoices", h.CreateInvoice)
	r.PATCH("/invoices/:id", h.UpdateInvoice)
	r.DELETE("/invoices/:id", h.DeleteInvoice)
	r.POST("/invoices/:id/payments", h.RecordPayment)

	// Agents & schedule
	r.GET("/agents", h.ListAgents)
	r.GET("/agents/:id", h.GetAgent)
	r.POST("/agents", h.CreateAgent)
	r.PATCH("/agents/:id", h.UpdateAgent)
	r.DELETE("/agents/:id", h.DeleteAgent)
	r.GET("/agents/:id/schedule", h.GetAgentSchedule)

	// Events
	r.GET("/events", h.ListEvents)
	r.GET("/events/:id", h.GetEvent)
	r.POST("/events", h.CreateEvent)
	r.PATCH("/events/:id", h.UpdateEvent)
	r.DELETE("/events/:id", h.DeleteEvent)

	// Achievements
	r.GET("/achievements", h.ListAchievements)
	r.POST("/achievements/evaluate", h.EvaluateAchievements)

	// Analysis & stats
	r.POST("/analysis/cost", h.AnalyzeCost)
	r.GET("/stats/dashboard", h.GetDashboardStats)
}
