package boxscore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDate = time.Date(2024, time.September, 8, 0, 0, 0, 0, time.UTC)

func offenseOptions() BuildOptions {
	return BuildOptions{
		Category:       CategoryOffense,
		IdentityColumn: "Player",
		Date:           testDate,
		Week:           1,
		SourceURL:      "https://example.com/boxscores/202409080buf.htm",
	}
}

func TestBuildExtractsIdentityAndDropsUnlinkedRows(t *testing.T) {
	t.Parallel()

	raw := &RawTable{
		Columns: []string{"Player", "Tm", "Cmp", "Att", "Yds"},
		Rows: [][]Cell{
			{Linked("Josh Allen", "/players/A/AlleJo02.htm"), Plain("BUF"), Plain("18"), Plain("23"), Plain("232")},
			{Plain("Player"), Plain("Tm"), Plain("Cmp"), Plain("Att"), Plain("Yds")},
			{Linked("Kyler Murray", "/players/M/MurrKy00.htm"), Plain("ARI"), Plain("21"), Plain("31"), Plain("162")},
		},
	}

	got := NewBuilder(NewNormalizer()).Build(raw, offenseOptions())
	require.Len(t, got.Rows, 2)

	first := got.Rows[0]
	assert.Equal(t, "AlleJo02", first[ColPlayerID])
	assert.Equal(t, "Josh Allen", first[ColPlayer])
	assert.Equal(t, "BUF", first[ColTeam])
	assert.Equal(t, "18", first["passing_completions"])
	assert.Equal(t, "232", first["passing_yards"])
	assert.Equal(t, "2024-09-08", first[ColDate])
	assert.Equal(t, "1", first[ColWeek])
	assert.Equal(t, "MurrKy00", got.Rows[1][ColPlayerID])
}

func TestBuildRenamesRepeatedYardsColumns(t *testing.T) {
	t.Parallel()

	raw := &RawTable{
		Columns: []string{"Player", "Tm", "Yds", "Yds", "Yds", "Yds"},
		Rows: [][]Cell{
			{Linked("Josh Allen", "/players/A/AlleJo02.htm"), Plain("BUF"), Plain("232"), Plain("5"), Plain("39"), Plain("0")},
		},
	}

	got := NewBuilder(NewNormalizer()).Build(raw, offenseOptions())
	require.Len(t, got.Rows, 1)
	row := got.Rows[0]
	assert.Equal(t, "232", row["passing_yards"])
	assert.Equal(t, "5", row["passing_sacked_yards"])
	assert.Equal(t, "39", row["rushing_yards"])
	assert.Equal(t, "0", row["receiving_yards"])
}

func TestBuildMissingTableYieldsEmpty(t *testing.T) {
	t.Parallel()

	b := NewBuilder(NewNormalizer())
	assert.True(t, b.Build(nil, offenseOptions()).IsEmpty())
	assert.True(t, b.Build(&RawTable{Columns: []string{"Player"}}, offenseOptions()).IsEmpty())
}

func TestBuildAttachesTeamWhenAbsent(t *testing.T) {
	t.Parallel()

	raw := &RawTable{
		Columns: []string{"Player", "Pos", "Num", "Pct"},
		Rows: [][]Cell{
			{Linked("Dion Dawkins", "/players/D/DawkDi01.htm"), Plain("T"), Plain("65"), Plain("100%")},
		},
	}
	opts := BuildOptions{
		Category:       CategoryHomeSnapCounts,
		IdentityColumn: "Player",
		Team:           "BUF",
		Date:           testDate,
		Week:           1,
		SourceURL:      "https://example.com/boxscores/202409080buf.htm",
	}

	got := NewBuilder(NewNormalizer()).Build(raw, opts)
	require.Len(t, got.Rows, 1)
	assert.Equal(t, "BUF", got.Rows[0][ColTeam])
	assert.Equal(t, "T", got.Rows[0][ColPosition])
	assert.Equal(t, "65", got.Rows[0]["offensive_snaps"])
}

func scoringTable() *RawTable {
	return &RawTable{
		Columns: []string{"Quarter", "Time", "Tm", "Detail", "ARI", "BUF"},
		Rows: [][]Cell{
			{Plain("1"), Plain("11:24"), Plain("BUF"), Linked("Tyler Bass 24 yard field goal", "/players/B/BassTy00.htm"), Plain("0"), Plain("3")},
			{Plain(""), Plain("4:03"), Plain("ARI"), Linked("James Conner 2 yard rush (Matt Prater kick)", "/players/C/ConnJa00.htm"), Plain("7"), Plain("3")},
			{Plain("2"), Plain("9:17"), Plain("BUF"), Linked("Tyler Bass 50 yard field goal", "/players/B/BassTy00.htm"), Plain("7"), Plain("6")},
			{Plain(""), Plain("1:58"), Plain("ARI"), Linked("Zaven Collins 22 yard field goal return", "/players/C/CollZa00.htm"), Plain("14"), Plain("6")},
			{Plain("4"), Plain("3:21"), Plain("ARI"), Linked("Matt Prater 43 yard field goal", "/players/P/PratMa00.htm"), Plain("17"), Plain("6")},
		},
	}
}

func TestBuildFieldGoalsAggregatesMakes(t *testing.T) {
	t.Parallel()

	opts := offenseOptions()
	opts.Category = CategoryFieldGoals
	got := NewBuilder(NewNormalizer()).BuildFieldGoals(scoringTable(), opts)
	require.Len(t, got.Rows, 2)

	bass := got.Rows[0]
	assert.Equal(t, "Tyler Bass", bass[ColPlayer])
	assert.Equal(t, "BassTy00", bass[ColPlayerID])
	assert.Equal(t, "BUF", bass[ColTeam])
	assert.Equal(t, "2", bass["kicking_num_field_goals_made"])
	assert.Equal(t, "74", bass["kicking_total_made_field_goals_distance"])
	assert.Equal(t, "37", bass["kicking_field_goals_made_average_distance"])

	prater := got.Rows[1]
	assert.Equal(t, "PratMa00", prater[ColPlayerID])
	assert.Equal(t, "1", prater["kicking_num_field_goals_made"])
	assert.Equal(t, "43", prater["kicking_total_made_field_goals_distance"])
}

func TestBuildFieldGoalsExcludesReturns(t *testing.T) {
	t.Parallel()

	opts := offenseOptions()
	opts.Category = CategoryFieldGoals
	got := NewBuilder(NewNormalizer()).BuildFieldGoals(scoringTable(), opts)
	for _, row := range got.Rows {
		assert.NotEqual(t, "CollZa00", row[ColPlayerID])
	}
}

func TestParseFieldGoalDetail(t *testing.T) {
	t.Parallel()

	kicker, distance, ok := parseFieldGoalDetail("Tyler Bass 24 yard field goal")
	require.True(t, ok)
	assert.Equal(t, "Tyler Bass", kicker)
	assert.Equal(t, 24.0, distance)

	_, _, ok = parseFieldGoalDetail("Safety, tackled in end zone")
	assert.False(t, ok)
}
