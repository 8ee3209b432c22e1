package boxscore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGame(tables GameTables) Game {
	return Game{
		Date:      testDate,
		Week:      1,
		SourceURL: "https://example.com/boxscores/202409080buf.htm",
		Tables:    tables,
	}
}

func offenseRaw() *RawTable {
	return &RawTable{
		Columns: []string{"Player", "Tm", "Cmp", "Att", "Yds", "TD", "Int", "Sk", "Yds", "Lng", "Rate", "Att", "Yds", "TD", "Lng", "Tgt", "Rec", "Yds", "TD", "Lng", "Fmb", "FL"},
		Rows: [][]Cell{
			{
				Linked("Kyler Murray", "/players/M/MurrKy00.htm"), Plain("ARI"),
				Plain("21"), Plain("31"), Plain("162"), Plain("1"), Plain("0"),
				Plain("2"), Plain("11"), Plain("22"), Plain("89.9"),
				Plain("5"), Plain("33"), Plain("0"), Plain("13"),
				Plain("0"), Plain("0"), Plain(""), Plain("0"), Plain(""),
				Plain("0"), Plain("0"),
			},
			{
				Linked("Josh Allen", "/players/A/AlleJo02.htm"), Plain("BUF"),
				Plain("18"), Plain("23"), Plain("232"), Plain("2"), Plain("0"),
				Plain("0"), Plain("0"), Plain("49"), Plain("128.2"),
				Plain("9"), Plain("39"), Plain("2"), Plain("12"),
				Plain("0"), Plain("0"), Plain(""), Plain("0"), Plain(""),
				Plain("1"), Plain("0"),
			},
		},
	}
}

func TestProcessOffenseOnlyGame(t *testing.T) {
	t.Parallel()

	records, err := NewPipeline().Process(testGame(GameTables{Offense: offenseRaw()}))
	require.NoError(t, err)
	require.Len(t, records, 2)

	byID := make(map[string]Record)
	for _, rec := range records {
		byID[rec.PlayerID] = rec
	}

	allen := byID["AlleJo02"]
	require.NotNil(t, allen.PassingYards)
	assert.Equal(t, 232.0, *allen.PassingYards)
	require.NotNil(t, allen.RushingYards)
	assert.Equal(t, 39.0, *allen.RushingYards)
	assert.Nil(t, allen.KickingFieldGoalsMade)
	assert.Nil(t, allen.DefensiveTotalTackles)
	assert.Equal(t, 2024, allen.Season)
	assert.Equal(t, "BUF", allen.HomeTeam)
	assert.Equal(t, "ARI", allen.AwayTeam)
	assert.Equal(t, "H", allen.HomeAway)
	assert.Equal(t, "A", byID["MurrKy00"].HomeAway)
	assert.Equal(t, "https://example.com/boxscores/202409080buf.htm", allen.SourceURL)
}

func TestProcessMergesScoringDerivedKicking(t *testing.T) {
	t.Parallel()

	records, err := NewPipeline().Process(testGame(GameTables{
		Offense: offenseRaw(),
		Scoring: scoringTable(),
	}))
	require.NoError(t, err)

	var bass *Record
	for i := range records {
		if records[i].PlayerID == "BassTy00" {
			bass = &records[i]
		}
	}
	require.NotNil(t, bass)
	require.NotNil(t, bass.KickingNumFieldGoalsMade)
	assert.Equal(t, 2, *bass.KickingNumFieldGoalsMade)
	require.NotNil(t, bass.KickingFieldGoalsMadeAvgDistance)
	assert.Equal(t, 37.0, *bass.KickingFieldGoalsMadeAvgDistance)
	assert.Equal(t, "H", bass.HomeAway)
	assert.Nil(t, bass.PassingYards)
}

func TestProcessEmptyGameYieldsNoRecords(t *testing.T) {
	t.Parallel()

	records, err := NewPipeline().Process(testGame(GameTables{}))
	require.NoError(t, err)
	assert.Nil(t, records)
}

func TestProcessValidationFailureAbortsGame(t *testing.T) {
	t.Parallel()

	raw := offenseRaw()
	raw.Rows[0][2] = Plain("twenty-one")

	_, err := NewPipeline().Process(testGame(GameTables{Offense: raw}))
	require.Error(t, err)
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestProcessSnapCountsInheritTeams(t *testing.T) {
	t.Parallel()

	home := &RawTable{
		Columns: []string{"Player", "Pos", "Num", "Pct", "Num", "Pct", "Num", "Pct"},
		Rows: [][]Cell{
			{Linked("Dion Dawkins", "/players/D/DawkDi01.htm"), Plain("T"), Plain("65"), Plain("100%"), Plain("0"), Plain("0%"), Plain("4"), Plain("13%")},
		},
	}

	records, err := NewPipeline().Process(testGame(GameTables{
		Offense:        offenseRaw(),
		HomeSnapCounts: home,
	}))
	require.NoError(t, err)

	var dawkins *Record
	for i := range records {
		if records[i].PlayerID == "DawkDi01" {
			dawkins = &records[i]
		}
	}
	require.NotNil(t, dawkins)
	assert.Equal(t, "BUF", dawkins.Team)
	assert.Equal(t, "T", dawkins.Position)
	require.NotNil(t, dawkins.OffensiveSnaps)
	assert.Equal(t, 65, *dawkins.OffensiveSnaps)
	require.NotNil(t, dawkins.OffensiveSnapsPercentage)
	assert.InDelta(t, 1.0, *dawkins.OffensiveSnapsPercentage, 1e-9)
}
