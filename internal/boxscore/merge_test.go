package boxscore

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keyedTable(category string, rows ...Row) *Table {
	t := NewTable(category)
	for _, c := range mergeKeyColumns {
		t.EnsureColumn(c)
	}
	for _, row := range rows {
		extra := make([]string, 0, len(row))
		for c := range row {
			if !t.HasColumn(c) {
				extra = append(extra, c)
			}
		}
		// Deterministic registration order for test fixtures.
		sort.Strings(extra)
		for _, c := range extra {
			t.EnsureColumn(c)
		}
		t.AppendRow(row)
	}
	return t
}

func baseKey(playerID, player, team string) Row {
	return Row{
		ColPlayerID: playerID,
		ColPlayer:   player,
		ColTeam:     team,
		ColDate:     "2024-09-08",
		ColWeek:     "1",
		ColHomeTeam: "BUF",
		ColAwayTeam: "ARI",
		ColHomeAway: "H",
	}
}

func TestMergeGameOuterJoinKeepsUnmatchedRows(t *testing.T) {
	t.Parallel()

	offRow := baseKey("AlleJo02", "Josh Allen", "BUF")
	offRow["passing_yards"] = "232"
	defRow := baseKey("MiltKe00", "Keion White", "BUF")
	defRow["defensive_sacks"] = "1.5"

	merged := NewMerger().MergeGame([]*Table{
		keyedTable(CategoryOffense, offRow),
		keyedTable(CategoryDefense, defRow),
	})

	require.Len(t, merged.Rows, 2)
	byID := make(map[string]Row)
	for _, row := range merged.Rows {
		byID[row[ColPlayerID]] = row
	}
	assert.Equal(t, "232", byID["AlleJo02"]["passing_yards"])
	_, hasSacks := byID["AlleJo02"]["defensive_sacks"]
	assert.False(t, hasSacks)
	assert.Equal(t, "1.5", byID["MiltKe00"]["defensive_sacks"])
}

func TestMergeGameMatchingKeysCombineColumns(t *testing.T) {
	t.Parallel()

	offRow := baseKey("AlleJo02", "Josh Allen", "BUF")
	offRow["passing_yards"] = "232"
	advRow := baseKey("AlleJo02", "Josh Allen", "BUF")
	advRow["passing_intended_air_yards"] = "161"

	merged := NewMerger().MergeGame([]*Table{
		keyedTable(CategoryOffense, offRow),
		keyedTable(CategoryAdvancedPassing, advRow),
	})

	require.Len(t, merged.Rows, 1)
	assert.Equal(t, "232", merged.Rows[0]["passing_yards"])
	assert.Equal(t, "161", merged.Rows[0]["passing_intended_air_yards"])
}

func TestMergeGameSuffixesCollidingColumns(t *testing.T) {
	t.Parallel()

	left := baseKey("WhitKe01", "Keion White", "BUF")
	left[ColPosition] = "DE"
	right := baseKey("WhitKe01", "Keion White", "BUF")
	right[ColPosition] = "EDGE"

	merged := NewMerger().MergeGame([]*Table{
		keyedTable(CategoryDefense, left),
		keyedTable(CategoryHomeSnapCounts, right),
	})

	require.Len(t, merged.Rows, 1)
	assert.Equal(t, "DE", merged.Rows[0][ColPosition])
	assert.Equal(t, "EDGE", merged.Rows[0][ColPosition+"_"+CategoryHomeSnapCounts])
}

func TestMergeGameRowSetIgnoresJoinOrder(t *testing.T) {
	t.Parallel()

	mk := func(id string, col, val string) *Table {
		row := baseKey(id, "Player "+id, "BUF")
		row[col] = val
		return keyedTable("cat_"+col, row)
	}
	a := mk("A00", "stat_a", "1")
	b := mk("B00", "stat_b", "2")
	c := mk("C00", "stat_c", "3")

	forward := NewMerger().MergeGame([]*Table{a, b, c})
	reverse := NewMerger().MergeGame([]*Table{c, b, a})

	ids := func(t *Table) map[string]bool {
		out := make(map[string]bool)
		for _, row := range t.Rows {
			out[row[ColPlayerID]] = true
		}
		return out
	}
	assert.Equal(t, ids(forward), ids(reverse))
	assert.Len(t, forward.Rows, 3)
}

func TestMergeGameAllEmptyYieldsEmpty(t *testing.T) {
	t.Parallel()

	merged := NewMerger().MergeGame([]*Table{
		NewTable(CategoryOffense), nil, NewTable(CategoryKicking),
	})
	assert.True(t, merged.IsEmpty())
}

func TestMergeGameSourceURLJoinedByIdentityAndDate(t *testing.T) {
	t.Parallel()

	offRow := baseKey("BassTy00", "Tyler Bass", "BUF")
	offRow[ColSourceURL] = "https://example.com/boxscores/202409080buf.htm"
	kickRow := baseKey("BassTy00", "Tyler Bass", "BUF")
	kickRow["kicking_field_goals_made"] = "2"

	merged := NewMerger().MergeGame([]*Table{
		keyedTable(CategoryOffense, offRow),
		keyedTable(CategoryKicking, kickRow),
	})

	require.Len(t, merged.Rows, 1)
	assert.Equal(t, "https://example.com/boxscores/202409080buf.htm", merged.Rows[0][ColSourceURL])
	assert.False(t, merged.HasColumn(ColSourceURL+"_"+CategoryKicking))
}

func TestMergeGameDoesNotMutateInputs(t *testing.T) {
	t.Parallel()

	offRow := baseKey("AlleJo02", "Josh Allen", "BUF")
	offRow[ColSourceURL] = "https://example.com/a"
	offense := keyedTable(CategoryOffense, offRow)

	NewMerger().MergeGame([]*Table{offense})

	assert.True(t, offense.HasColumn(ColSourceURL))
	assert.Equal(t, "https://example.com/a", offense.Rows[0][ColSourceURL])
}
