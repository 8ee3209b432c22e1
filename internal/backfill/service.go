package backfill

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/fortuna/gridiron/internal/ingest/pfr"
	"github.com/fortuna/gridiron/internal/publisher"
	"github.com/fortuna/gridiron/internal/store"
)

// Request represents a backfill invocation request.
type Request struct {
	Season    int
	StartDate *time.Time
	EndDate   *time.Time
	GamePaths []string
	DryRun    bool
}

// DeriveType infers the job type based on populated fields.
func (r Request) DeriveType() (JobType, error) {
	if len(r.GamePaths) > 0 {
		return JobTypeGame, nil
	}
	if r.StartDate != nil && r.EndDate != nil {
		return JobTypeDateRange, nil
	}
	if r.Season != 0 {
		return JobTypeSeason, nil
	}
	return "", fmt.Errorf("unable to determine job type from request")
}

// Service coordinates job persistence, execution, and status reporting.
type Service struct {
	repo   *Repository
	runner *Runner
	pub    *publisher.RedisStreamPublisher

	historyLimit int

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *log.Logger
}

// NewService constructs a Service around an existing ingester. The
// publisher may be nil; status changes then stay database-only. Call Start
// to launch the worker.
func NewService(db *store.Database, ingester *pfr.Ingester, pub *publisher.RedisStreamPublisher, logger *log.Logger) *Service {
	ctx, cancel := context.WithCancel(context.Background())

	if logger == nil {
		logger = log.New(log.Writer(), "[backfill] ", log.LstdFlags)
	}

	return &Service{
		repo:         NewRepository(db),
		runner:       NewRunner(ingester),
		pub:          pub,
		historyLimit: 10,
		ctx:          ctx,
		cancel:       cancel,
		logger:       logger,
	}
}

// Start launches the background worker loop.
func (s *Service) Start() {
	if err := s.repo.ResetStuckJobs(s.ctx); err != nil {
		s.logger.Printf("failed to reset jobs: %v", err)
	}

	s.wg.Add(1)
	go s.worker()
}

// Shutdown stops workers and waits for completion.
func (s *Service) Shutdown(ctx context.Context) error {
	s.cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		s.wg.Wait()
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-done:
		return nil
	}
}

// Enqueue creates a new job from the provided request.
func (s *Service) Enqueue(ctx context.Context, req Request) (*Job, error) {
	jobType, err := req.DeriveType()
	if err != nil {
		return nil, err
	}

	job := &Job{
		JobType:         jobType,
		Status:          JobStatusQueued,
		StatusMessage:   sql.NullString{String: "Queued", Valid: true},
		ProgressCurrent: 0,
	}

	switch jobType {
	case JobTypeGame:
		if req.Season == 0 {
			return nil, fmt.Errorf("game job requires a season")
		}
		job.GamePaths = req.GamePaths
		job.Season = sql.NullInt64{Int64: int64(req.Season), Valid: true}
		job.ProgressTotal = len(req.GamePaths)
	case JobTypeSeason:
		start, end := seasonWindow(req.Season)
		job.Season = sql.NullInt64{Int64: int64(req.Season), Valid: true}
		job.StartDate = sql.NullTime{Time: start, Valid: true}
		job.EndDate = sql.NullTime{Time: end, Valid: true}
	case JobTypeDateRange:
		if req.StartDate == nil || req.EndDate == nil {
			return nil, fmt.Errorf("date range job requires start_date and end_date")
		}
		job.Season = sql.NullInt64{Int64: int64(req.Season), Valid: req.Season != 0}
		job.StartDate = sql.NullTime{Time: truncateDate(*req.StartDate), Valid: true}
		job.EndDate = sql.NullTime{Time: truncateDate(*req.EndDate), Valid: true}
		job.ProgressTotal = len(enumerateDates(job.StartDate.Time, job.EndDate.Time))
	}

	stored, err := s.repo.CreateJob(ctx, job)
	if err != nil {
		return nil, err
	}

	_ = s.repo.AppendEvent(ctx, stored.JobID, "queued", "Job queued", nil, nil)

	return stored, nil
}

// GetStatus returns the currently running job plus recent history.
func (s *Service) GetStatus(ctx context.Context) (*StatusSummary, error) {
	active, err := s.repo.GetActiveJob(ctx)
	if err != nil {
		return nil, err
	}

	history, err := s.repo.ListRecentJobs(ctx, s.historyLimit)
	if err != nil {
		return nil, err
	}

	return &StatusSummary{
		ActiveJob: active,
		History:   history,
	}, nil
}

func (s *Service) worker() {
	defer s.wg.Done()

	ticker := time.NewTicker(3 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-s.ctx.Done():
			return
		default:
			job, err := s.repo.MarkNextJobRunning(s.ctx)
			if err != nil {
				s.logger.Printf("claim job error: %v", err)
				time.Sleep(time.Second)
				continue
			}
			if job == nil {
				select {
				case <-s.ctx.Done():
					return
				case <-ticker.C:
					continue
				}
			}

			s.executeJob(job)
		}
	}
}

func (s *Service) executeJob(job *Job) {
	spec, err := s.buildSpec(job)
	if err != nil {
		s.logger.Printf("invalid job spec %s: %v", job.JobID, err)
		_ = s.repo.UpdateStatus(s.ctx, job.JobID, JobStatusFailed, "Invalid job specification", err)
		return
	}

	reporter := &jobReporter{
		ctx:   s.ctx,
		repo:  s.repo,
		jobID: job.JobID,
		total: job.ProgressTotal,
	}

	if job.ProgressTotal == 0 {
		_ = s.repo.UpdateProgress(s.ctx, job.JobID, 0, reporter.total, "Starting job...")
	}

	s.publishStatus(job.JobID, JobStatusRunning, "Job started")

	if err := s.runner.Run(s.ctx, spec, reporter); err != nil {
		_ = s.repo.UpdateStatus(s.ctx, job.JobID, JobStatusFailed, "Job failed", err)
		s.publishStatus(job.JobID, JobStatusFailed, err.Error())
		return
	}

	_ = s.repo.UpdateStatus(s.ctx, job.JobID, JobStatusCompleted, "Job completed", nil)
	s.publishStatus(job.JobID, JobStatusCompleted, "Job completed")
}

// publishStatus mirrors job status changes onto the backfill stream for
// downstream consumers watching long replays.
func (s *Service) publishStatus(jobID string, status JobStatus, message string) {
	if s.pub == nil {
		return
	}
	update := map[string]interface{}{
		"job_id":  jobID,
		"status":  status,
		"message": message,
	}
	if err := s.pub.PublishBackfillProgress(s.ctx, update); err != nil {
		s.logger.Printf("publish status for %s: %v", jobID, err)
	}
}

func (s *Service) buildSpec(job *Job) (JobSpec, error) {
	spec := JobSpec{
		Type:   job.JobType,
		Season: int(job.Season.Int64),
	}

	switch job.JobType {
	case JobTypeGame:
		if len(job.GamePaths) == 0 {
			return spec, fmt.Errorf("game job missing game_paths")
		}
		spec.GamePaths = job.GamePaths
	case JobTypeSeason:
		spec.Start = job.StartDate.Time
		spec.End = job.EndDate.Time
	case JobTypeDateRange:
		if !job.StartDate.Valid || !job.EndDate.Valid {
			return spec, fmt.Errorf("job missing start/end dates")
		}
		spec.Start = job.StartDate.Time
		spec.End = job.EndDate.Time
	default:
		return spec, fmt.Errorf("unknown job type %s", job.JobType)
	}

	return spec, nil
}

type jobReporter struct {
	ctx   context.Context
	repo  *Repository
	jobID string
	total int
}

func (r *jobReporter) OnJobStart(spec JobSpec) {
	_ = r.repo.UpdateProgress(r.ctx, r.jobID, 0, r.total, "Job starting")
}

func (r *jobReporter) OnDateStart(date time.Time, index int, total int) {
	msg := fmt.Sprintf("Processing %s (%d/%d)", date.Format("Jan 2, 2006"), index+1, total)
	_ = r.repo.UpdateProgress(r.ctx, r.jobID, index, valueOr(total, r.total), msg)
}

func (r *jobReporter) OnGameProcessed(boxscorePath string) {
	_ = r.repo.AppendEvent(r.ctx, r.jobID, "game", fmt.Sprintf("Game %s processed", boxscorePath), nil, nil)
}

func (r *jobReporter) OnProgress(message string, current int, total int) {
	_ = r.repo.UpdateProgress(r.ctx, r.jobID, current, valueOr(total, r.total), message)
}

func (r *jobReporter) OnJobComplete() {
	_ = r.repo.UpdateProgress(r.ctx, r.jobID, r.total, r.total, "Job complete")
}

func (r *jobReporter) OnJobError(err error) {
	_ = r.repo.AppendEvent(r.ctx, r.jobID, "error", err.Error(), nil, nil)
}

func valueOr(val, fallback int) int {
	if val > 0 {
		return val
	}
	return fallback
}

// seasonWindow bounds a season's games: kickoff in early September through
// the championship game in mid February.
func seasonWindow(season int) (time.Time, time.Time) {
	start := time.Date(season, time.September, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(season+1, time.February, 15, 0, 0, 0, 0, time.UTC)
	return start, end
}

func truncateDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
