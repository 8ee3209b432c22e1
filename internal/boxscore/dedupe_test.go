package boxscore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dedupeFixture(rows ...Row) *Table {
	t := keyedTable("merged", rows...)
	for _, c := range []string{ColSeason, ColSourceURL} {
		t.EnsureColumn(c)
	}
	return t
}

func TestResolveCollapsesSplitKickerRows(t *testing.T) {
	t.Parallel()

	// The scoring-detail aggregation and the punting table produce two
	// rows for the same kicker-game; the collapse keeps both stat sets.
	fromScoring := baseKey("BassTy00", "Tyler Bass", "BUF")
	fromScoring[ColSeason] = "2024"
	fromScoring["kicking_num_field_goals_made"] = "2"
	fromKicking := baseKey("BassTy00", "Tyler Bass", "BUF")
	fromKicking[ColSeason] = "2024"
	fromKicking["punting_num_punts"] = "3"

	got := NewDeduper().Resolve(dedupeFixture(fromScoring, fromKicking))

	require.Len(t, got.Rows, 1)
	row := got.Rows[0]
	assert.Equal(t, "2", row["kicking_num_field_goals_made"])
	assert.Equal(t, "3", row["punting_num_punts"])
	assert.Equal(t, "BassTy00", row[ColPlayerID])
}

func TestResolveFirstNonNullWinsPerColumn(t *testing.T) {
	t.Parallel()

	first := baseKey("AlleJo02", "Josh Allen", "BUF")
	first[ColSeason] = "2024"
	first["passing_yards"] = "232"
	second := baseKey("AlleJo02", "Josh Allen", "BUF")
	second[ColSeason] = "2024"
	second["passing_yards"] = "999"
	second["rushing_yards"] = "39"

	got := NewDeduper().Resolve(dedupeFixture(first, second))

	require.Len(t, got.Rows, 1)
	assert.Equal(t, "232", got.Rows[0]["passing_yards"])
	assert.Equal(t, "39", got.Rows[0]["rushing_yards"])
}

func TestResolveKeepsDistinctPlayersApart(t *testing.T) {
	t.Parallel()

	a := baseKey("AlleJo02", "Josh Allen", "BUF")
	a[ColSeason] = "2024"
	b := baseKey("MurrKy00", "Kyler Murray", "ARI")
	b[ColSeason] = "2024"

	got := NewDeduper().Resolve(dedupeFixture(a, b))
	assert.Len(t, got.Rows, 2)
}

func TestResolveCoalescesSuffixedPositionColumns(t *testing.T) {
	t.Parallel()

	row := baseKey("WhitKe01", "Keion White", "BUF")
	row[ColSeason] = "2024"
	row[ColPosition+"_"+CategoryHomeSnapCounts] = "DE"
	in := dedupeFixture(row)

	got := NewDeduper().Resolve(in)

	require.Len(t, got.Rows, 1)
	assert.Equal(t, "DE", got.Rows[0][ColPosition])
	assert.False(t, got.HasColumn(ColPosition+"_"+CategoryHomeSnapCounts))
}

func TestResolveIsIdempotent(t *testing.T) {
	t.Parallel()

	a := baseKey("AlleJo02", "Josh Allen", "BUF")
	a[ColSeason] = "2024"
	a["passing_yards"] = "232"
	b := baseKey("AlleJo02", "Josh Allen", "BUF")
	b[ColSeason] = "2024"
	b["rushing_yards"] = "39"

	d := NewDeduper()
	once := d.Resolve(dedupeFixture(a, b))
	twice := d.Resolve(once)

	require.Equal(t, len(once.Rows), len(twice.Rows))
	assert.Equal(t, once.Rows, twice.Rows)
}

func TestResolveOrdersGroupsDeterministically(t *testing.T) {
	t.Parallel()

	a := baseKey("ZetoB00", "Zed Zeton", "BUF")
	a[ColSeason] = "2024"
	b := baseKey("AardA00", "Al Aard", "BUF")
	b[ColSeason] = "2024"

	got := NewDeduper().Resolve(dedupeFixture(a, b))
	require.Len(t, got.Rows, 2)
	assert.Equal(t, "Al Aard", got.Rows[0][ColPlayer])
	assert.Equal(t, "Zed Zeton", got.Rows[1][ColPlayer])
}
