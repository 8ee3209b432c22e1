package boxscore

import (
	"sort"
	"strings"
)

// dedupeKeyColumns is the reduced grouping key for collapsing duplicate
// rows after the merge. Team and home_away are deliberately absent: the
// duplicates this stage resolves are the same player-game carrying
// different team labels, such as a kicker's row derived from scoring
// details beside their row from the punting table.
var dedupeKeyColumns = []string{
	ColPlayer, ColPlayerID, ColDate, ColWeek, ColSeason,
	ColHomeTeam, ColAwayTeam, ColSourceURL,
}

// Deduper collapses rows that describe one logical player-game into a
// single row.
type Deduper struct{}

func NewDeduper() *Deduper { return &Deduper{} }

// Resolve groups rows by the reduced key, orders the groups by key for
// reproducibility, and collapses each group to one row where every column
// takes the first non-null value in group order. Running Resolve on its own
// output changes nothing. Position columns suffixed during the merge are
// coalesced into the plain position column first.
func (d *Deduper) Resolve(t *Table) *Table {
	out := NewTable(t.Category)
	if t.IsEmpty() {
		return out
	}

	positionVariants := coalescePositions(t)

	for _, c := range t.Columns {
		if positionVariants[c] {
			continue
		}
		out.EnsureColumn(c)
	}

	groups := make(map[string][]Row)
	var keys []string
	for _, row := range t.Rows {
		k := dedupeKey(row)
		if _, ok := groups[k]; !ok {
			keys = append(keys, k)
		}
		groups[k] = append(groups[k], row)
	}
	sort.Strings(keys)

	for _, k := range keys {
		group := groups[k]
		collapsed := make(Row, len(group[0]))
		for _, c := range out.Columns {
			for _, row := range group {
				if v, ok := row[c]; ok && v != "" {
					collapsed[c] = v
					break
				}
			}
		}
		out.AppendRow(collapsed)
	}
	return out
}

func dedupeKey(row Row) string {
	parts := make([]string, len(dedupeKeyColumns))
	for i, c := range dedupeKeyColumns {
		parts[i] = row[c]
	}
	return strings.Join(parts, keySep)
}

// coalescePositions folds merge-suffixed position columns into ColPosition
// on every row, first non-null winning, and reports the variant column
// names so the caller can omit them from the output schema.
func coalescePositions(t *Table) map[string]bool {
	variants := make(map[string]bool)
	for _, c := range t.Columns {
		if c != ColPosition && strings.HasPrefix(c, ColPosition+"_") {
			variants[c] = true
		}
	}
	if len(variants) == 0 {
		return variants
	}
	t.EnsureColumn(ColPosition)
	for _, row := range t.Rows {
		if row[ColPosition] != "" {
			continue
		}
		for _, c := range t.Columns {
			if !variants[c] {
				continue
			}
			if v := row[c]; v != "" {
				row[ColPosition] = v
				break
			}
		}
	}
	return variants
}
