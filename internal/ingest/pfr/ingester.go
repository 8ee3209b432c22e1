package pfr

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/fortuna/gridiron/internal/boxscore"
	"github.com/fortuna/gridiron/internal/cache"
	"github.com/fortuna/gridiron/internal/publisher"
	"github.com/fortuna/gridiron/internal/store/repository"
)

// scheduleCacheTTL keeps a season's game list warm between runs. Schedules
// only change when games are rescheduled, which the next refresh picks up.
const scheduleCacheTTL = 12 * time.Hour

// Ingester drives the full scrape-and-normalize flow for the stats site
type Ingester struct {
	client   *Client
	cache    *cache.RedisCache
	repo     *repository.BoxscoreRepository
	pub      *publisher.RedisStreamPublisher
	pipeline *boxscore.Pipeline
}

// NewIngester creates an ingester with its own scraper client. Cache,
// repository, and publisher may each be nil; the corresponding step is
// skipped.
func NewIngester(c *cache.RedisCache, repo *repository.BoxscoreRepository, pub *publisher.RedisStreamPublisher) (*Ingester, error) {
	client, err := NewClient()
	if err != nil {
		return nil, fmt.Errorf("failed to create scraper client: %w", err)
	}

	return &Ingester{
		client:   client,
		cache:    c,
		repo:     repo,
		pub:      pub,
		pipeline: boxscore.NewPipeline(),
	}, nil
}

// Close releases resources
func (i *Ingester) Close() {
	if i.client != nil {
		i.client.Close()
	}
}

// Schedule returns a season's game list, from cache when possible
func (i *Ingester) Schedule(ctx context.Context, season int) ([]ScheduledGame, error) {
	cacheKey := fmt.Sprintf("pfr:schedule:%d", season)
	if i.cache != nil {
		var games []ScheduledGame
		if hit, err := i.cache.GetJSON(ctx, cacheKey, &games); err == nil && hit {
			log.Printf("[pfr] Using cached schedule for season %d (%d games)", season, len(games))
			return games, nil
		}
	}

	html, err := i.client.FetchSchedule(ctx, season)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch schedule: %w", err)
	}

	games, err := ParseSchedule(html, season)
	if err != nil {
		return nil, fmt.Errorf("failed to parse schedule: %w", err)
	}
	log.Printf("[pfr] Parsed schedule for season %d: %d completed games", season, len(games))

	if i.cache != nil {
		if err := i.cache.SetJSON(ctx, cacheKey, games, scheduleCacheTTL); err != nil {
			log.Printf("[pfr] ⚠️ Failed to cache schedule for season %d: %v", season, err)
		}
	}

	return games, nil
}

// IngestGame fetches one game page, runs the normalization pipeline, and
// persists and publishes the resulting records
func (i *Ingester) IngestGame(ctx context.Context, game ScheduledGame) ([]boxscore.Record, error) {
	sourceURL := BaseURL + game.BoxscorePath
	log.Printf("[pfr] Ingesting game %s (week %d)", game.BoxscorePath, game.Week)

	html, err := i.client.FetchBoxscore(ctx, game.BoxscorePath)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch boxscore: %w", err)
	}

	tables, err := ParseGameTables(html)
	if err != nil {
		return nil, fmt.Errorf("failed to parse game page: %w", err)
	}

	records, err := i.pipeline.Process(boxscore.Game{
		Date:      game.Date,
		Week:      game.Week,
		SourceURL: sourceURL,
		Tables:    tables,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to process game: %w", err)
	}
	if len(records) == 0 {
		log.Printf("[pfr] ⚠️ No records produced for %s", game.BoxscorePath)
		return nil, nil
	}

	if i.repo != nil {
		if err := i.repo.UpsertAll(ctx, records); err != nil {
			return nil, fmt.Errorf("failed to store records: %w", err)
		}
	}
	if i.pub != nil {
		if err := i.pub.PublishGameRecords(ctx, sourceURL, records); err != nil {
			log.Printf("[pfr] ⚠️ Failed to publish records for %s: %v", game.BoxscorePath, err)
		}
	}

	log.Printf("[pfr] ✓ Ingested %d player records from %s", len(records), game.BoxscorePath)
	return records, nil
}

// IngestDate ingests every completed game on one calendar date. A failing
// game is logged and skipped so one malformed page cannot sink the batch.
func (i *Ingester) IngestDate(ctx context.Context, date time.Time) (int, error) {
	season := boxscore.SeasonFor(date)
	schedule, err := i.Schedule(ctx, season)
	if err != nil {
		return 0, err
	}

	total := 0
	for _, game := range schedule {
		if !sameDay(game.Date, date) {
			continue
		}
		records, err := i.IngestGame(ctx, game)
		if err != nil {
			log.Printf("[pfr] ⚠️ Skipping game %s: %v", game.BoxscorePath, err)
			continue
		}
		total += len(records)
		if ctx.Err() != nil {
			return total, ctx.Err()
		}
	}
	return total, nil
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}
