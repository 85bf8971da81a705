package handlers

import (
	"github.com/gin-gonic/gin"

	"contractor-service/internal/core/services"
	"contractor-service/internal/testutil"
)

type repoMocks struct {
	contractorRepo  *testutil.MockContractorRepo
	clientRepo      *testutil.MockClientRepo
	projectRepo     *testutil.MockProjectRepo
	estimateRepo    *testutil.MockEstimateRepo
	invoiceRepo     *testutil.MockInvoiceRepo
	agentRepo       *testutil.MockAgentRepo
	eventRepo       *testutil.MockEventRepo
	achievementRepo *testutil.MockAchievementRepo
	statsRepo       *testutil.MockStatsRepo
	analysisClient  *testutil.MockAnalysisClient
}

func setupRouter() (*repoMocks, *gin.Engine) {
	gin.SetMode(gin.TestMode)
	m := &repoMocks{
		contractorRepo:  new(testutil.MockContractorRepo),
		clientRepo:      new(testutil.MockClientRepo),
		projectRepo:     new(testutil.MockProjectRepo),
		estimateRepo:    new(testutil.MockEstimateRepo),
		invoiceRepo:     new(testutil.MockInvoiceRepo),
		agentRepo:       new(testutil.MockAgentRepo),
		eventRepo:       new(testutil.MockEventRepo),
		achievementRepo: new(testutil.MockAchievementRepo),
		statsRepo:       new(testutil.MockStatsRepo),
		analysisClient:  new(testutil.MockAnalysisClient),
	}

	h := New(
		services.NewContractorService(m.contractorRepo),
		services.NewClientService(m.clientRepo, m.projectRepo),
		services.NewProjectService(m.projectRepo, m.clientRepo),
		services.NewEstimateService(m.estimateRepo, m.clientRepo, m.projectRepo, m.invoiceRepo, 30),
		services.NewInvoiceService(m.invoiceRepo, m.clientRepo, m.projectRepo, 30),
		services.NewAgentService(m.agentRepo, m.eventRepo),
		services.NewEventService(m.eventRepo, m.agentRepo, m.projectRepo),
		services.NewAchievementService(m.achievementRepo, m.statsRepo, m.contractorRepo),
		services.NewAnalysisService(m.analysisClient, m.estimateRepo),
		services.NewStatsService(m.statsRepo, nil),
	)

	r := gin.New()
	api := r.Group("/api/v1")
	h.RegisterRoutes(api)
	return m, r
}
