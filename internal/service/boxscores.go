package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/fortuna/gridiron/internal/boxscore"
	"github.com/fortuna/gridiron/internal/store"
	"github.com/fortuna/gridiron/internal/store/repository"
)

// BoxscoreService handles boxscore-related business logic
type BoxscoreService struct {
	repo *repository.BoxscoreRepository
}

// NewBoxscoreService creates a new boxscore service
func NewBoxscoreService(db *store.Database) *BoxscoreService {
	return &BoxscoreService{
		repo: repository.NewBoxscoreRepository(db),
	}
}

// GameBoxScore groups one game's player records by side
type GameBoxScore struct {
	Date      string            `json:"date"`
	Week      int               `json:"week"`
	Season    int               `json:"season"`
	HomeTeam  string            `json:"home_team"`
	AwayTeam  string            `json:"away_team"`
	SourceURL string            `json:"source_url"`
	HomeStats []boxscore.Record `json:"home_stats"`
	AwayStats []boxscore.Record `json:"away_stats"`
}

// PlayerGameLog is a player's recent games, most recent first
type PlayerGameLog struct {
	PlayerID string            `json:"player_id"`
	Player   string            `json:"player"`
	Games    []boxscore.Record `json:"games"`
}

// GetGamesByDate returns every game on a date as grouped box scores
func (s *BoxscoreService) GetGamesByDate(ctx context.Context, date time.Time) ([]*GameBoxScore, error) {
	records, err := s.repo.GetByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("fetching boxscores: %w", err)
	}
	return groupByGame(records), nil
}

// GetGamesBySeasonWeek returns every game for one week of a season
func (s *BoxscoreService) GetGamesBySeasonWeek(ctx context.Context, season, week int) ([]*GameBoxScore, error) {
	records, err := s.repo.GetBySeasonWeek(ctx, season, week)
	if err != nil {
		return nil, fmt.Errorf("fetching boxscores: %w", err)
	}
	return groupByGame(records), nil
}

// GetPlayerGameLog returns a player's recent boxscores
func (s *BoxscoreService) GetPlayerGameLog(ctx context.Context, playerID string, limit int) (*PlayerGameLog, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	records, err := s.repo.GetByPlayer(ctx, playerID, limit)
	if err != nil {
		return nil, fmt.Errorf("fetching player game log: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("no games found for player %s", playerID)
	}

	return &PlayerGameLog{
		PlayerID: playerID,
		Player:   records[0].Player,
		Games:    records,
	}, nil
}

// groupByGame splits a flat record list into per-game box scores. Records
// from the same game share home_team, away_team, and date.
func groupByGame(records []boxscore.Record) []*GameBoxScore {
	games := make(map[string]*GameBoxScore)
	var order []string

	for _, rec := range records {
		key := rec.Date.Format("2006-01-02") + "|" + rec.HomeTeam + "|" + rec.AwayTeam
		game, ok := games[key]
		if !ok {
			game = &GameBoxScore{
				Date:      rec.Date.Format("2006-01-02"),
				Week:      rec.Week,
				Season:    rec.Season,
				HomeTeam:  rec.HomeTeam,
				AwayTeam:  rec.AwayTeam,
				SourceURL: rec.SourceURL,
			}
			games[key] = game
			order = append(order, key)
		}

		if rec.HomeAway == "H" {
			game.HomeStats = append(game.HomeStats, rec)
		} else {
			game.AwayStats = append(game.AwayStats, rec)
		}
	}

	sort.Strings(order)
	result := make([]*GameBoxScore, 0, len(order))
	for _, key := range order {
		result = append(result, games[key])
	}
	return result
}
