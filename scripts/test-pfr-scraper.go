package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/fortuna/gridiron/internal/boxscore"
	"github.com/fortuna/gridiron/internal/ingest/pfr"
)

// Simple test utility to verify the stats-site scraper works
func main() {
	log.Println("Testing Pro Football Reference Scraper")
	log.Println("======================================")

	season := 2024
	if len(os.Args) > 1 {
		if n, err := strconv.Atoi(os.Args[1]); err == nil {
			season = n
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	client, err := pfr.NewClient()
	if err != nil {
		log.Fatalf("❌ Failed to create client: %v", err)
	}
	defer client.Close()

	// Test 1: Fetch and parse the season schedule
	log.Printf("Fetching schedule for season %d...", season)
	html, err := client.FetchSchedule(ctx, season)
	if err != nil {
		log.Fatalf("❌ Failed to fetch schedule: %v", err)
	}

	games, err := pfr.ParseSchedule(html, season)
	if err != nil {
		log.Fatalf("❌ Failed to parse schedule: %v", err)
	}
	log.Printf("✅ Parsed %d completed games", len(games))

	for i, game := range games {
		if i >= 5 {
			break
		}
		fmt.Printf("  Week %2d  %s  %s\n", game.Week, game.Date.Format("2006-01-02"), game.BoxscorePath)
	}

	if len(games) == 0 {
		log.Println("No completed games on schedule, stopping here")
		return
	}

	// Test 2: Fetch one game page and parse its stat tables
	game := games[0]
	log.Printf("Fetching boxscore %s...", game.BoxscorePath)
	html, err = client.FetchBoxscore(ctx, game.BoxscorePath)
	if err != nil {
		log.Fatalf("❌ Failed to fetch boxscore: %v", err)
	}

	tables, err := pfr.ParseGameTables(html)
	if err != nil {
		log.Fatalf("❌ Failed to parse game page: %v", err)
	}

	report := func(name string, rows int, ok bool) {
		status := "✅"
		if !ok {
			status = "⚠️ "
		}
		fmt.Printf("  %s %-22s %d rows\n", status, name, rows)
	}

	report("player_offense", rowCount(tables.Offense), !tables.Offense.IsEmpty())
	report("scoring", rowCount(tables.Scoring), !tables.Scoring.IsEmpty())
	report("kicking", rowCount(tables.Kicking), !tables.Kicking.IsEmpty())
	report("player_defense", rowCount(tables.Defense), !tables.Defense.IsEmpty())
	report("returns", rowCount(tables.Returns), !tables.Returns.IsEmpty())
	report("home_snap_counts", rowCount(tables.HomeSnapCounts), !tables.HomeSnapCounts.IsEmpty())
	report("vis_snap_counts", rowCount(tables.VisitorSnapCounts), !tables.VisitorSnapCounts.IsEmpty())

	log.Println("✅ Scraper test complete")
}

func rowCount(t *boxscore.RawTable) int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}
