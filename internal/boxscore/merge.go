package boxscore

import "strings"

// mergeKeyColumns is the join key for combining category tables. It is
// deliberately wide: team and the home/away identifiers are part of the key
// so that a player whose team label differs in formatting across categories
// produces distinct rows for DuplicateResolver to reconcile, rather than a
// silently wrong join.
var mergeKeyColumns = []string{
	ColPlayerID, ColPlayer, ColTeam, ColDate, ColWeek,
	ColHomeTeam, ColAwayTeam, ColHomeAway,
}

const keySep = "\x1f"

// Merger combines normalized category tables into one wide table via a
// deterministic left-to-right chain of full outer joins.
type Merger struct{}

func NewMerger() *Merger { return &Merger{} }

// MergeGame joins category tables in the given order. Empty tables are
// skipped. The source_url column differs legitimately per category, so it
// is pulled out of every table before joining and re-attached afterward by
// identity and date only, first non-empty value per player-game winning.
// All tables empty yields an empty table.
func (m *Merger) MergeGame(tables []*Table) *Table {
	sourceURLs := make(map[string]string)
	var merged *Table
	for _, t := range tables {
		if t.IsEmpty() {
			continue
		}
		t = t.Clone()
		collectSourceURLs(t, sourceURLs)
		t.DropColumn(ColSourceURL)
		if merged == nil {
			merged = t
			continue
		}
		merged = outerJoin(merged, t, t.Category)
	}
	if merged == nil {
		return NewTable("merged")
	}
	merged.Category = "merged"
	merged.EnsureColumn(ColSourceURL)
	for _, row := range merged.Rows {
		if url, ok := sourceURLs[identityKey(row)]; ok {
			row[ColSourceURL] = url
		}
	}
	return merged
}

func collectSourceURLs(t *Table, into map[string]string) {
	if !t.HasColumn(ColSourceURL) {
		return
	}
	for _, row := range t.Rows {
		url := row[ColSourceURL]
		if url == "" {
			continue
		}
		k := identityKey(row)
		if _, ok := into[k]; !ok {
			into[k] = url
		}
	}
}

func identityKey(row Row) string {
	return row[ColPlayerID] + keySep + row[ColDate]
}

func mergeKey(row Row) string {
	parts := make([]string, len(mergeKeyColumns))
	for i, c := range mergeKeyColumns {
		parts[i] = row[c]
	}
	return strings.Join(parts, keySep)
}

// outerJoin performs a full outer join of two tables on the merge key.
// Left rows come first in left order, then unmatched right rows in right
// order. Non-key columns present on both sides keep the left name and the
// right copy is suffixed with the right table's category.
func outerJoin(left, right *Table, rightCategory string) *Table {
	out := NewTable(left.Category)

	isKey := make(map[string]bool, len(mergeKeyColumns))
	for _, c := range mergeKeyColumns {
		isKey[c] = true
	}

	// Right non-key columns that collide with a left column get suffixed
	// once, before any row is merged.
	rename := make(map[string]string, len(right.Columns))
	for _, c := range right.Columns {
		if !isKey[c] && left.HasColumn(c) {
			rename[c] = c + "_" + rightCategory
		} else {
			rename[c] = c
		}
	}

	for _, c := range left.Columns {
		out.EnsureColumn(c)
	}
	for _, c := range right.Columns {
		out.EnsureColumn(rename[c])
	}

	rightByKey := make(map[string][]Row, len(right.Rows))
	for _, row := range right.Rows {
		k := mergeKey(row)
		rightByKey[k] = append(rightByKey[k], row)
	}

	matched := make(map[string]bool)
	for _, lrow := range left.Rows {
		k := mergeKey(lrow)
		rrows, ok := rightByKey[k]
		if !ok {
			out.AppendRow(copyRow(lrow))
			continue
		}
		matched[k] = true
		for _, rrow := range rrows {
			merged := copyRow(lrow)
			for c, v := range rrow {
				if isKey[c] {
					continue
				}
				merged[rename[c]] = v
			}
			out.AppendRow(merged)
		}
	}

	for _, rrow := range right.Rows {
		if matched[mergeKey(rrow)] {
			continue
		}
		row := make(Row, len(rrow))
		for c, v := range rrow {
			if isKey[c] {
				row[c] = v
			} else {
				row[rename[c]] = v
			}
		}
		out.AppendRow(row)
	}

	return out
}

func copyRow(row Row) Row {
	out := make(Row, len(row))
	for c, v := range row {
		out[c] = v
	}
	return out
}
