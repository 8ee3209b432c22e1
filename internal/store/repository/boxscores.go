package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/fortuna/gridiron/internal/boxscore"
	"github.com/fortuna/gridiron/internal/store"
)

// BoxscoreRepository handles player boxscore persistence
type BoxscoreRepository struct {
	db *store.Database
}

// NewBoxscoreRepository creates a new boxscore repository
func NewBoxscoreRepository(db *store.Database) *BoxscoreRepository {
	return &BoxscoreRepository{db: db}
}

// Upsert writes one record, replacing any earlier version of the same
// player-game. Identity fields get their own columns; every stat lives in
// the stats JSONB document, nulls omitted.
func (r *BoxscoreRepository) Upsert(ctx context.Context, rec *boxscore.Record) error {
	stats, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshaling record: %w", err)
	}

	query := `
		INSERT INTO player_boxscores (
			player_id, player, team, position, game_date, week, season,
			home_away, home_team, away_team, source_url, stats, ingested_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW())
		ON CONFLICT (player_id, game_date) DO UPDATE SET
			player = EXCLUDED.player,
			team = EXCLUDED.team,
			position = EXCLUDED.position,
			week = EXCLUDED.week,
			season = EXCLUDED.season,
			home_away = EXCLUDED.home_away,
			home_team = EXCLUDED.home_team,
			away_team = EXCLUDED.away_team,
			source_url = EXCLUDED.source_url,
			stats = EXCLUDED.stats,
			ingested_at = NOW()
	`

	_, err = r.db.DB().ExecContext(ctx, query,
		rec.PlayerID, rec.Player, rec.Team, rec.Position, rec.Date,
		rec.Week, rec.Season, rec.HomeAway, rec.HomeTeam, rec.AwayTeam,
		rec.SourceURL, stats,
	)
	if err != nil {
		return fmt.Errorf("upserting boxscore for %s: %w", rec.PlayerID, err)
	}
	return nil
}

// UpsertAll writes a batch of records in a single transaction
func (r *BoxscoreRepository) UpsertAll(ctx context.Context, records []boxscore.Record) error {
	tx, err := r.db.DB().BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for i := range records {
		if err := r.upsertTx(ctx, tx, &records[i]); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (r *BoxscoreRepository) upsertTx(ctx context.Context, tx *sql.Tx, rec *boxscore.Record) error {
	stats, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshaling record: %w", err)
	}
	query := `
		INSERT INTO player_boxscores (
			player_id, player, team, position, game_date, week, season,
			home_away, home_team, away_team, source_url, stats, ingested_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW())
		ON CONFLICT (player_id, game_date) DO UPDATE SET
			player = EXCLUDED.player,
			team = EXCLUDED.team,
			position = EXCLUDED.position,
			week = EXCLUDED.week,
			season = EXCLUDED.season,
			home_away = EXCLUDED.home_away,
			home_team = EXCLUDED.home_team,
			away_team = EXCLUDED.away_team,
			source_url = EXCLUDED.source_url,
			stats = EXCLUDED.stats,
			ingested_at = NOW()
	`
	_, err = tx.ExecContext(ctx, query,
		rec.PlayerID, rec.Player, rec.Team, rec.Position, rec.Date,
		rec.Week, rec.Season, rec.HomeAway, rec.HomeTeam, rec.AwayTeam,
		rec.SourceURL, stats,
	)
	if err != nil {
		return fmt.Errorf("upserting boxscore for %s: %w", rec.PlayerID, err)
	}
	return nil
}

// GetByDate returns every player boxscore for games on the given date
func (r *BoxscoreRepository) GetByDate(ctx context.Context, date time.Time) ([]boxscore.Record, error) {
	query := `
		SELECT stats FROM player_boxscores
		WHERE game_date = $1
		ORDER BY team, player
	`
	rows, err := r.db.DB().QueryContext(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("querying boxscores for %s: %w", date.Format("2006-01-02"), err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

// GetByPlayer returns a player's boxscores, most recent first
func (r *BoxscoreRepository) GetByPlayer(ctx context.Context, playerID string, limit int) ([]boxscore.Record, error) {
	query := `
		SELECT stats FROM player_boxscores
		WHERE player_id = $1
		ORDER BY game_date DESC
		LIMIT $2
	`
	rows, err := r.db.DB().QueryContext(ctx, query, playerID, limit)
	if err != nil {
		return nil, fmt.Errorf("querying boxscores for player %s: %w", playerID, err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

// GetBySeasonWeek returns every player boxscore for one week of a season
func (r *BoxscoreRepository) GetBySeasonWeek(ctx context.Context, season, week int) ([]boxscore.Record, error) {
	query := `
		SELECT stats FROM player_boxscores
		WHERE season = $1 AND week = $2
		ORDER BY game_date, team, player
	`
	rows, err := r.db.DB().QueryContext(ctx, query, season, week)
	if err != nil {
		return nil, fmt.Errorf("querying boxscores for season %d week %d: %w", season, week, err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

// CountByDate returns how many player boxscores exist for a date
func (r *BoxscoreRepository) CountByDate(ctx context.Context, date time.Time) (int, error) {
	var count int
	err := r.db.DB().QueryRowContext(ctx,
		"SELECT COUNT(*) FROM player_boxscores WHERE game_date = $1", date,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting boxscores: %w", err)
	}
	return count, nil
}

func scanRecords(rows *sql.Rows) ([]boxscore.Record, error) {
	var records []boxscore.Record
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scanning boxscore row: %w", err)
		}
		var rec boxscore.Record
		if err := json.Unmarshal(raw, &rec); err != nil {
			return nil, fmt.Errorf("unmarshaling boxscore: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
