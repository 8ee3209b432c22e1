package store

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/lib/pq" // PostgreSQL driver
)

// Database represents the PostgreSQL database connection
type Database struct {
	conn *sql.DB
	dsn  string
}

// NewDatabase creates a new database connection
func NewDatabase(dsn string) (*Database, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Configure connection pool
	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)
	db.SetConnMaxIdleTime(10 * time.Minute)

	// Test connection
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Database{
		conn: db,
		dsn:  dsn,
	}, nil
}

// Close closes the database connection
func (db *Database) Close() error {
	if db.conn != nil {
		return db.conn.Close()
	}
	return nil
}

// DB returns the underlying *sql.DB for queries
func (db *Database) DB() *sql.DB {
	return db.conn
}

// migration pairs a version label with embedded DDL so deployments need no
// migration files on disk.
type migration struct {
	version string
	ddl     string
}

var migrations = []migration{
	{
		version: "001_create_player_boxscores",
		ddl: `
			CREATE TABLE IF NOT EXISTS player_boxscores (
				player_id   VARCHAR(16)  NOT NULL,
				player      VARCHAR(128) NOT NULL,
				team        VARCHAR(8),
				position    VARCHAR(8),
				game_date   DATE         NOT NULL,
				week        INTEGER,
				season      INTEGER,
				home_away   CHAR(1),
				home_team   VARCHAR(8),
				away_team   VARCHAR(8),
				source_url  TEXT,
				stats       JSONB        NOT NULL,
				ingested_at TIMESTAMPTZ  NOT NULL DEFAULT NOW(),
				PRIMARY KEY (player_id, game_date)
			);
			CREATE INDEX IF NOT EXISTS idx_player_boxscores_date
				ON player_boxscores (game_date);
			CREATE INDEX IF NOT EXISTS idx_player_boxscores_season_week
				ON player_boxscores (season, week);
			CREATE INDEX IF NOT EXISTS idx_player_boxscores_team
				ON player_boxscores (team, game_date);
		`,
	},
	{
		version: "002_create_backfill_jobs",
		ddl: `
			CREATE TABLE IF NOT EXISTS backfill_jobs (
				job_id           UUID PRIMARY KEY DEFAULT gen_random_uuid(),
				job_type         VARCHAR(32) NOT NULL,
				season           INTEGER,
				start_date       DATE,
				end_date         DATE,
				game_paths       TEXT[],
				status           VARCHAR(32) NOT NULL,
				status_message   TEXT,
				progress_current INTEGER     NOT NULL DEFAULT 0,
				progress_total   INTEGER     NOT NULL DEFAULT 0,
				last_error       TEXT,
				retry_count      INTEGER     NOT NULL DEFAULT 0,
				created_at       TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				updated_at       TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				started_at       TIMESTAMPTZ,
				completed_at     TIMESTAMPTZ
			);
			CREATE INDEX IF NOT EXISTS idx_backfill_jobs_status
				ON backfill_jobs (status, created_at);
		`,
	},
	{
		version: "003_create_backfill_job_events",
		ddl: `
			CREATE TABLE IF NOT EXISTS backfill_job_events (
				id               BIGSERIAL PRIMARY KEY,
				job_id           UUID        NOT NULL REFERENCES backfill_jobs(job_id) ON DELETE CASCADE,
				event_type       VARCHAR(32) NOT NULL,
				message          TEXT,
				progress_current INTEGER,
				progress_total   INTEGER,
				created_at       TIMESTAMPTZ NOT NULL DEFAULT NOW()
			);
			CREATE INDEX IF NOT EXISTS idx_backfill_job_events_job
				ON backfill_job_events (job_id, created_at);
		`,
	},
}

// RunMigrations executes all embedded migrations in order
func (db *Database) RunMigrations() error {
	log.Println("Running database migrations...")

	// Create migrations tracking table
	if err := db.createMigrationsTable(); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	for _, m := range migrations {
		if err := db.runMigration(m); err != nil {
			return fmt.Errorf("failed to run migration %s: %w", m.version, err)
		}
	}

	log.Println("✓ All migrations completed successfully")

	return nil
}

// createMigrationsTable creates a table to track which migrations have been run
func (db *Database) createMigrationsTable() error {
	query := `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version VARCHAR(255) PRIMARY KEY,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`
	_, err := db.conn.Exec(query)
	return err
}

// runMigration applies a single migration if it hasn't been applied yet
func (db *Database) runMigration(m migration) error {
	// Check if already applied
	var exists bool
	err := db.conn.QueryRow("SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = $1)", m.version).Scan(&exists)
	if err != nil {
		return err
	}

	if exists {
		log.Printf("  ⊘ Skipping %s (already applied)", m.version)
		return nil
	}

	// Execute migration in a transaction
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(m.ddl); err != nil {
		return fmt.Errorf("failed to execute migration: %w", err)
	}

	// Record migration as applied
	if _, err := tx.Exec("INSERT INTO schema_migrations (version) VALUES ($1)", m.version); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	log.Printf("  ✓ Applied %s", m.version)
	return nil
}

// HealthCheck performs a health check on the database
func (db *Database) HealthCheck() error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	return db.conn.PingContext(ctx)
}
