package backfill

import (
	"context"
	"fmt"
	"time"

	"github.com/fortuna/gridiron/internal/ingest/pfr"
)

// Runner executes backfill specs by replaying historical games through the
// scraper ingester.
type Runner struct {
	ingester *pfr.Ingester
}

// NewRunner constructs a runner around an existing ingester. The ingester
// owns the browser and the rate limiter, so one runner per process.
func NewRunner(ingester *pfr.Ingester) *Runner {
	return &Runner{ingester: ingester}
}

// Run executes the job spec, reporting progress via the Reporter if provided.
func (r *Runner) Run(ctx context.Context, spec JobSpec, reporter Reporter) error {
	if reporter != nil {
		reporter.OnJobStart(spec)
	}

	if spec.DryRun {
		if reporter != nil {
			reporter.OnProgress("Dry-run mode: no data will be written", 0, 0)
			reporter.OnJobComplete()
		}
		return nil
	}

	switch spec.Type {
	case JobTypeGame:
		if err := r.runGames(ctx, spec, reporter); err != nil {
			return err
		}
	case JobTypeSeason:
		if err := r.runSeason(ctx, spec, reporter); err != nil {
			return err
		}
	case JobTypeDateRange:
		if err := r.runDateRange(ctx, spec, reporter); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported job type %s", spec.Type)
	}

	if reporter != nil {
		reporter.OnJobComplete()
	}

	return nil
}

// runGames replays specific games. The season schedule supplies each
// game's date and week, which the pipeline needs for context columns.
func (r *Runner) runGames(ctx context.Context, spec JobSpec, reporter Reporter) error {
	if len(spec.GamePaths) == 0 {
		return fmt.Errorf("no game paths provided for job type 'game'")
	}
	if spec.Season == 0 {
		return fmt.Errorf("game job requires a season")
	}

	schedule, err := r.ingester.Schedule(ctx, spec.Season)
	if err != nil {
		if reporter != nil {
			reporter.OnJobError(err)
		}
		return fmt.Errorf("fetch schedule: %w", err)
	}
	byPath := make(map[string]pfr.ScheduledGame, len(schedule))
	for _, g := range schedule {
		byPath[g.BoxscorePath] = g
	}

	total := len(spec.GamePaths)
	for idx, path := range spec.GamePaths {
		if err := ctx.Err(); err != nil {
			return err
		}

		if reporter != nil {
			reporter.OnProgress(fmt.Sprintf("Processing game %s (%d/%d)", path, idx+1, total), idx, total)
		}

		game, ok := byPath[path]
		if !ok {
			err := fmt.Errorf("game %s not on season %d schedule", path, spec.Season)
			if reporter != nil {
				reporter.OnJobError(err)
			}
			return err
		}

		if _, err := r.ingester.IngestGame(ctx, game); err != nil {
			if reporter != nil {
				reporter.OnJobError(err)
			}
			return err
		}

		if reporter != nil {
			reporter.OnGameProcessed(path)
			reporter.OnProgress(fmt.Sprintf("✓ Game %s complete", path), idx+1, total)
		}
	}
	return nil
}

// runSeason replays every completed game on a season's schedule in order.
func (r *Runner) runSeason(ctx context.Context, spec JobSpec, reporter Reporter) error {
	schedule, err := r.ingester.Schedule(ctx, spec.Season)
	if err != nil {
		if reporter != nil {
			reporter.OnJobError(err)
		}
		return fmt.Errorf("fetch schedule: %w", err)
	}

	total := len(schedule)
	for idx, game := range schedule {
		if err := ctx.Err(); err != nil {
			return err
		}

		if reporter != nil {
			reporter.OnDateStart(game.Date, idx, total)
		}

		if _, err := r.ingester.IngestGame(ctx, game); err != nil {
			if reporter != nil {
				reporter.OnJobError(err)
			}
			return err
		}

		if reporter != nil {
			reporter.OnGameProcessed(game.BoxscorePath)
			reporter.OnProgress(fmt.Sprintf("Processed %s", game.BoxscorePath), idx+1, total)
		}
	}
	return nil
}

// runDateRange replays every game day inside the window.
func (r *Runner) runDateRange(ctx context.Context, spec JobSpec, reporter Reporter) error {
	dates := enumerateDates(spec.Start, spec.End)
	if len(dates) == 0 {
		if reporter != nil {
			reporter.OnProgress("No dates to process", 0, 0)
		}
		return nil
	}

	total := len(dates)
	for idx, date := range dates {
		if err := ctx.Err(); err != nil {
			return err
		}

		if reporter != nil {
			reporter.OnDateStart(date, idx, total)
		}

		if _, err := r.ingester.IngestDate(ctx, date); err != nil {
			if reporter != nil {
				reporter.OnJobError(err)
			}
			return err
		}

		if reporter != nil {
			reporter.OnProgress(fmt.Sprintf("Processed %s", date.Format("Jan 2, 2006")), idx+1, total)
		}
	}
	return nil
}

func enumerateDates(start, end time.Time) []time.Time {
	if end.Before(start) {
		start, end = end, start
	}

	var dates []time.Time
	current := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	final := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)

	for !current.After(final) {
		dates = append(dates, current)
		current = current.AddDate(0, 0, 1)
	}

	return dates
}
