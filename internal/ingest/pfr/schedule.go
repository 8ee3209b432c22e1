package pfr

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// ScheduledGame is one row of a season's games listing.
type ScheduledGame struct {
	Season       int       `json:"season"`
	Week         int       `json:"week"`
	Date         time.Time `json:"date"`
	BoxscorePath string    `json:"boxscore_path"`
}

// Playoff rounds continue the week numbering after the 18-week regular
// season.
var playoffWeeks = map[string]int{
	"WildCard":  19,
	"Division":  20,
	"ConfChamp": 21,
	"SuperBowl": 22,
}

// ParseSchedule extracts the season's game list from the games page. Rows
// without a boxscore link (future games, bye separators) are skipped.
func ParseSchedule(html string, season int) ([]ScheduledGame, error) {
	doc, err := parseCleanHTML(html)
	if err != nil {
		return nil, err
	}

	table := doc.Find("table#games")
	if table.Length() == 0 {
		return nil, fmt.Errorf("games table not found")
	}

	var games []ScheduledGame
	var parseErr error
	table.First().Find("tbody tr").EachWithBreak(func(_ int, tr *goquery.Selection) bool {
		if strings.Contains(tr.AttrOr("class", ""), "thead") {
			return true
		}
		path := tr.Find(`td[data-stat="boxscore_word"] a`).First().AttrOr("href", "")
		if path == "" {
			return true
		}

		weekText := strings.TrimSpace(tr.Find(`th[data-stat="week_num"]`).Text())
		week, err := parseWeek(weekText)
		if err != nil {
			parseErr = fmt.Errorf("week %q: %w", weekText, err)
			return false
		}

		dateText := strings.TrimSpace(tr.Find(`td[data-stat="game_date"]`).Text())
		date, err := parseGameDate(dateText)
		if err != nil {
			parseErr = fmt.Errorf("game date %q: %w", dateText, err)
			return false
		}

		games = append(games, ScheduledGame{
			Season:       season,
			Week:         week,
			Date:         date,
			BoxscorePath: path,
		})
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}
	return games, nil
}

func parseWeek(text string) (int, error) {
	if w, ok := playoffWeeks[text]; ok {
		return w, nil
	}
	return strconv.Atoi(text)
}

func parseGameDate(text string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02", "January 2, 2006"} {
		if d, err := time.Parse(layout, text); err == nil {
			return d, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date format")
}
