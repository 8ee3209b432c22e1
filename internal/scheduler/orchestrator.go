package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/fortuna/gridiron/internal/ingest/pfr"
)

// Orchestrator manages scheduled tasks for data ingestion
type Orchestrator struct {
	ingester *pfr.Ingester
	config   *Config
	cancel   context.CancelFunc

	dailyCtx    context.Context
	dailyCancel context.CancelFunc
}

// Config holds scheduler configuration
type Config struct {
	DailyIngestionHour   int           // Default: 6 (6 AM, after west-coast games finish)
	CatchUpDays          int           // How many past days each run covers. Default: 2
	EnableDailyIngestion bool          // Default: true
	MaxRetries           int           // Default: 3
	RetryDelay           time.Duration // Default: 30s
}

// DefaultConfig returns default scheduler configuration
func DefaultConfig() *Config {
	return &Config{
		DailyIngestionHour:   6,
		CatchUpDays:          2,
		EnableDailyIngestion: true,
		MaxRetries:           3,
		RetryDelay:           30 * time.Second,
	}
}

// NewOrchestrator creates a new scheduler orchestrator around an existing
// ingester. The ingester is shared with the backfill service, which keeps
// all scraping behind a single rate limiter.
func NewOrchestrator(ingester *pfr.Ingester, config *Config) *Orchestrator {
	if config == nil {
		config = DefaultConfig()
	}

	return &Orchestrator{
		ingester: ingester,
		config:   config,
	}
}

// Start begins all scheduled tasks and blocks until the context is cancelled
func (o *Orchestrator) Start(ctx context.Context) {
	log.Println("╔════════════════════════════════════════╗")
	log.Println("║   Gridiron Scheduler Orchestrator     ║")
	log.Println("╚════════════════════════════════════════╝")
	log.Printf("Daily ingestion: %v (at %02d:00, covering %d past days)",
		o.config.EnableDailyIngestion, o.config.DailyIngestionHour, o.config.CatchUpDays)
	log.Println()

	ctx, cancel := context.WithCancel(ctx)
	o.cancel = cancel

	if o.config.EnableDailyIngestion {
		o.dailyCtx, o.dailyCancel = context.WithCancel(ctx)
		go o.runDailyIngestion(o.dailyCtx)
	}

	<-ctx.Done()
	log.Println("Scheduler orchestrator stopping...")
}

// runDailyIngestion wakes once a day and ingests recently completed games
func (o *Orchestrator) runDailyIngestion(ctx context.Context) {
	log.Printf("→ Daily ingestion scheduler started (runs at %02d:00 daily)", o.config.DailyIngestionHour)

	for {
		now := time.Now()
		nextRun := time.Date(now.Year(), now.Month(), now.Day(), o.config.DailyIngestionHour, 0, 0, 0, now.Location())

		// If we've passed today's run time, schedule for tomorrow
		if now.After(nextRun) {
			nextRun = nextRun.Add(24 * time.Hour)
		}

		waitDuration := time.Until(nextRun)
		log.Printf("  Next daily ingestion: %s (in %v)", nextRun.Format("2006-01-02 15:04:05"), waitDuration.Round(time.Second))

		select {
		case <-ctx.Done():
			log.Println("→ Daily ingestion scheduler stopped")
			return
		case <-time.After(waitDuration):
			log.Println()
			log.Println("═══ Daily Ingestion Starting ═══")
			o.runDailyIngestionTask(ctx)
			log.Println("═══ Daily Ingestion Complete ═══")
			log.Println()
		}
	}
}

// runDailyIngestionTask ingests the last CatchUpDays calendar days. Covering
// more than one day picks up games whose stat pages were still incomplete on
// the previous run.
func (o *Orchestrator) runDailyIngestionTask(ctx context.Context) {
	startTime := time.Now()
	totalRecords := 0

	for daysBack := o.config.CatchUpDays; daysBack >= 1; daysBack-- {
		date := time.Now().AddDate(0, 0, -daysBack)
		log.Printf("Ingesting games from %s", date.Format("2006-01-02"))

		count, err := o.ingestDateWithRetry(ctx, date)
		if err != nil {
			log.Printf("❌ Ingestion for %s failed: %v", date.Format("2006-01-02"), err)
			continue
		}
		totalRecords += count
	}

	duration := time.Since(startTime)
	log.Printf("✓ Daily ingestion complete: %d player records in %v", totalRecords, duration.Round(time.Second))
}

// ingestDateWithRetry retries transient failures before giving up on a date
func (o *Orchestrator) ingestDateWithRetry(ctx context.Context, date time.Time) (int, error) {
	var count int
	var err error

	for attempt := 1; attempt <= o.config.MaxRetries; attempt++ {
		count, err = o.ingester.IngestDate(ctx, date)
		if err == nil {
			return count, nil
		}

		log.Printf("  ⚠️  Ingestion attempt %d/%d failed: %v", attempt, o.config.MaxRetries, err)

		if attempt < o.config.MaxRetries {
			log.Printf("  Retrying in %v...", o.config.RetryDelay)
			select {
			case <-ctx.Done():
				return 0, ctx.Err()
			case <-time.After(o.config.RetryDelay):
			}
		}
	}

	return 0, err
}

// Stop gracefully stops the scheduler
func (o *Orchestrator) Stop() {
	log.Println("Stopping scheduler orchestrator...")

	if o.dailyCancel != nil {
		o.dailyCancel()
	}
	if o.cancel != nil {
		o.cancel()
	}

	log.Println("✓ Scheduler orchestrator stopped")
}

// TriggerManualIngestion runs an ingestion for a specific date outside the
// daily schedule
func (o *Orchestrator) TriggerManualIngestion(ctx context.Context, date time.Time) (int, error) {
	log.Printf("Manual ingestion triggered for %s", date.Format("2006-01-02"))

	count, err := o.ingester.IngestDate(ctx, date)
	if err != nil {
		return 0, err
	}

	log.Printf("✓ Manual ingestion complete for %s (%d records)", date.Format("2006-01-02"), count)
	return count, nil
}

// GetStatus returns current scheduler status
func (o *Orchestrator) GetStatus() map[string]interface{} {
	return map[string]interface{}{
		"daily_ingestion_enabled": o.config.EnableDailyIngestion,
		"daily_ingestion_hour":    o.config.DailyIngestionHour,
		"catch_up_days":           o.config.CatchUpDays,
	}
}
