package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"

	"contractor-service/internal/config"
	"contractor-service/internal/core/services"
	"contractor-service/internal/metrics"
)

// Runner owns the background sweeps: flipping open invoices past their
// due date to overdue, and re-evaluating achievements for every tenant.
type Runner struct {
	cron           *cron.Cron
	invoiceSvc     *services.InvoiceService
	achievementSvc *services.AchievementService
	cfg            *config.JobsConfig
}

func NewRunner(cfg *config.JobsConfig, invoiceSvc *services.InvoiceService, achievementSvc *services.AchievementService) *Runner {
	return &Runner{
		cron:           cron.New(),
		invoiceSvc:     invoiceSvc,
		achievementSvc: achievementSvc,
		cfg:            cfg,
	}
}

func (r *Runner) Start() error {
	if _, err := r.cron.AddFunc(r.cfg.OverdueSpec, r.markOverdue); err != nil {
		return err
	}
	if _, err := r.cron.AddFunc(r.cfg.AchievementsSpec, r.evaluateAchievements); err != nil {
		return err
	}

	r.cron.Start()
	log.WithFields(log.Fields{
		"overdue_spec":      r.cfg.OverdueSpec,
		"achievements_spec": r.cfg.AchievementsSpec,
	}).Info("background jobs started")
	return nil
}

// Stop halts scheduling and waits for in-flight runs to finish.
func (r *Runner) Stop() {
	<-r.cron.Stop().Done()
	log.Info("background jobs stopped")
}

func (r *Runner) markOverdue() {
	start := time.Now()
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	flipped, err := r.invoiceSvc.MarkOverdue(ctx, time.Now())
	metrics.RecordJobRun("mark_overdue", time.Since(start), err == nil)
	if err != nil {
		log.WithError(err).Error("overdue invoice sweep failed")
		return
	}
	if flipped > 0 {
		log.WithField("invoices", flipped).Info("invoices marked overdue")
	}
}

func (r *Runner) evaluateAchievements() {
	start := time.Now()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	err := r.achievementSvc.EvaluateAll(ctx)
	metrics.RecordJobRun("evaluate_achievements", time.Since(start), err == nil)
	if err != nil {
		log.WithError(err).Error("achievement sweep failed")
	}
}
