package boxscore

import (
	"strconv"
	"time"
)

// SeasonFor maps a calendar date to its reporting season. Seasons span the
// calendar-year boundary: games from August through December belong to that
// year's season, games from January through July to the previous year's.
func SeasonFor(date time.Time) int {
	if int(date.Month()) > 7 {
		return date.Year()
	}
	return date.Year() - 1
}

// TeamPair holds the two sides of one game.
type TeamPair struct {
	Home string
	Away string
}

// ResolveTeams derives the home and away teams from the offense table's
// team column: the source lists the visiting club's players first, so the
// first distinct team value is the away team and the second is the home
// team. A table with fewer than two distinct teams yields empty strings;
// callers carry on and the context columns stay blank.
func ResolveTeams(offense *Table) TeamPair {
	var pair TeamPair
	if offense == nil {
		return pair
	}
	seen := make(map[string]bool)
	var order []string
	for _, row := range offense.Rows {
		tm := row[ColTeam]
		if tm == "" || seen[tm] {
			continue
		}
		seen[tm] = true
		order = append(order, tm)
		if len(order) == 2 {
			break
		}
	}
	if len(order) == 2 {
		pair.Away = order[0]
		pair.Home = order[1]
	}
	return pair
}

// ApplyContext stamps season and home/away columns onto a category table.
// Each row's home_away marker compares the row's team to the home side.
func ApplyContext(t *Table, teams TeamPair, date time.Time) {
	if t.IsEmpty() {
		return
	}
	t.SetAll(ColSeason, strconv.Itoa(SeasonFor(date)))
	if teams.Home == "" || teams.Away == "" {
		return
	}
	t.SetAll(ColHomeTeam, teams.Home)
	t.SetAll(ColAwayTeam, teams.Away)
	t.EnsureColumn(ColHomeAway)
	for _, row := range t.Rows {
		if row[ColTeam] == teams.Home {
			row[ColHomeAway] = "H"
		} else {
			row[ColHomeAway] = "A"
		}
	}
}
