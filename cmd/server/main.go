package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"contractor-service/internal/adapters/primary/http/handlers"
	"contractor-service/internal/adapters/primary/http/middleware"
	"contractor-service/internal/adapters/secondary/openai"
	"contractor-service/internal/adapters/secondary/postgres"
	"contractor-service/internal/adapters/secondary/redis"
	"contractor-service/internal/config"
	ports "contractor-service/internal/core/ports/output"
	"contractor-service/internal/core/services"
	"contractor-service/internal/jobs"
	"contractor-service/internal/metrics"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	initLogger(cfg)

	if cfg.Database.Migrate {
		if err := postgres.Migrate(cfg.Database.MigrationsPath, cfg.Database.URL()); err != nil {
			log.Fatalf("run migrations: %v", err)
		}
		log.Info("database migrations applied")
	}

	// Create database pool
	poolCfg, err := pgxpool.ParseConfig(cfg.Database.DSN())
	if err != nil {
		log.Fatalf("parse db config: %v", err)
	}
	poolCfg.MaxConns = int32(cfg.Database.MaxOpenConns)
	poolCfg.MinConns = int32(cfg.Database.MaxIdleConns)
	poolCfg.MaxConnLifetime = cfg.Database.ConnMaxLifetime

	pool, err := pgxpool.NewWithConfig(context.Background(), poolCfg)
	if err != nil {
		log.Fatalf("create db pool: %v", err)
	}
	defer pool.Close()

	if err := pool.Ping(context.Background()); err != nil {
		log.Fatalf("ping db: %v", err)
	}
	log.Info("database connection established")

	// Secondary adapters (output ports)
	contractorRepo := postgres.NewContractorRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	projectRepo := postgres.NewProjectRepository(pool)
	estimateRepo := postgres.NewEstimateRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	agentRepo := postgres.NewAgentRepository(pool)
	eventRepo := postgres.NewEventRepository(pool)
	achievementRepo := postgres.NewAchievementRepository(pool)
	statsRepo := postgres.NewStatsRepository(pool)

	// Redis cache (optional, based on config)
	var statsCache ports.StatsCache
	if cfg.Redis.Enabled {
		cache, err := redis.NewStatsCache(&cfg.Redis)
		if err != nil {
			log.Warnf("redis cache init failed (continuing without dashboard cache): %v", err)
		} else {
			statsCache = cache
			log.Info("dashboard cache initialized")
		}
	} else {
		log.Info("dashboard cache disabled")
	}

	// Cost analysis client (optional, based on config)
	analysisClient := openai.NewAnalysisClient(&cfg.Analysis)
	if cfg.Analysis.Enabled {
		log.Info("cost analysis client initialized")
	} else {
		log.Info("cost analysis disabled")
	}

	// Core services (application layer)
	contractorSvc := services.NewContractorService(contractorRepo)
	clientSvc := services.NewClientService(clientRepo, projectRepo)
	projectSvc := services.NewProjectService(projectRepo, clientRepo)
	estimateSvc := services.NewEstimateService(estimateRepo, clientRepo, projectRepo, invoiceRepo, cfg.Billing.InvoiceNetTermDays)
	invoiceSvc := services.NewInvoiceService(invoiceRepo, clientRepo, projectRepo, cfg.Billing.InvoiceNetTermDays)
	agentSvc := services.NewAgentService(agentRepo, eventRepo)
	eventSvc := services.NewEventService(eventRepo, agentRepo, projectRepo)
	achievementSvc := services.NewAchievementService(achievementRepo, statsRepo, contractorRepo)
	analysisSvc := services.NewAnalysisService(analysisClient, estimateRepo)
	statsSvc := services.NewStatsService(statsRepo, statsCache)

	// Primary adapter (HTTP handlers)
	h := handlers.New(contractorSvc, clientSvc, projectSvc, estimateSvc, invoiceSvc, agentSvc, eventSvc, achievementSvc, analysisSvc, statsSvc)

	// Setup router
	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Logging(), metrics.Instrument(), gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.CORS.AllowedOrigins,
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", "Contractor-ID", "X-Request-ID"},
		ExposeHeaders: []string{"X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}))

	api := router.Group("/api/v1")
	h.RegisterRoutes(api)

	// Health check with DB ping
	router.GET("/healthz", func(c *gin.Context) {
		if err := pool.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	// Background jobs (optional, based on config)
	var runner *jobs.Runner
	if cfg.Jobs.Enabled {
		runner = jobs.NewRunner(&cfg.Jobs, invoiceSvc, achievementSvc)
		if err := runner.Start(); err != nil {
			log.Fatalf("start background jobs: %v", err)
		}
	} else {
		log.Info("background jobs disabled")
	}

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		log.Infof("starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server...")

	if runner != nil {
		runner.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced shutdown: %v", err)
	}

	log.Info("server stopped")
}

func initLogger(cfg *config.Config) {
	level, err := log.ParseLevel(cfg.Logger.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if cfg.Logger.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
}
