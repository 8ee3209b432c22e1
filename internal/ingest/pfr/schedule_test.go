package pfr

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const schedulePageHTML = `
<html><body>
<table id="games">
  <thead><tr><th>Week</th><th>Date</th><th></th></tr></thead>
  <tbody>
    <tr>
      <th data-stat="week_num">1</th>
      <td data-stat="game_date">2024-09-08</td>
      <td data-stat="boxscore_word"><a href="/boxscores/202409080buf.htm">boxscore</a></td>
    </tr>
    <tr class="thead"><th data-stat="week_num">Week</th><td data-stat="game_date">Date</td><td data-stat="boxscore_word"></td></tr>
    <tr>
      <th data-stat="week_num">18</th>
      <td data-stat="game_date">2025-01-05</td>
      <td data-stat="boxscore_word"><a href="/boxscores/202501050nyj.htm">boxscore</a></td>
    </tr>
    <tr>
      <th data-stat="week_num">WildCard</th>
      <td data-stat="game_date">2025-01-12</td>
      <td data-stat="boxscore_word"><a href="/boxscores/202501120buf.htm">boxscore</a></td>
    </tr>
    <tr>
      <th data-stat="week_num">SuperBowl</th>
      <td data-stat="game_date">2025-02-09</td>
      <td data-stat="boxscore_word"><a href="/boxscores/202502090kan.htm">boxscore</a></td>
    </tr>
    <tr>
      <th data-stat="week_num">19</th>
      <td data-stat="game_date">2025-01-13</td>
      <td data-stat="boxscore_word"></td>
    </tr>
  </tbody>
</table>
</body></html>`

func TestParseScheduleExtractsCompletedGames(t *testing.T) {
	t.Parallel()

	games, err := ParseSchedule(schedulePageHTML, 2024)
	require.NoError(t, err)
	require.Len(t, games, 4)

	first := games[0]
	assert.Equal(t, 2024, first.Season)
	assert.Equal(t, 1, first.Week)
	assert.Equal(t, time.Date(2024, time.September, 8, 0, 0, 0, 0, time.UTC), first.Date)
	assert.Equal(t, "/boxscores/202409080buf.htm", first.BoxscorePath)
}

func TestParseSchedulePlayoffWeekNumbering(t *testing.T) {
	t.Parallel()

	games, err := ParseSchedule(schedulePageHTML, 2024)
	require.NoError(t, err)

	byPath := make(map[string]ScheduledGame)
	for _, g := range games {
		byPath[g.BoxscorePath] = g
	}
	assert.Equal(t, 19, byPath["/boxscores/202501120buf.htm"].Week)
	assert.Equal(t, 22, byPath["/boxscores/202502090kan.htm"].Week)
}

func TestParseScheduleSkipsRowsWithoutBoxscoreLink(t *testing.T) {
	t.Parallel()

	games, err := ParseSchedule(schedulePageHTML, 2024)
	require.NoError(t, err)
	for _, g := range games {
		assert.NotEmpty(t, g.BoxscorePath)
	}
}

func TestParseScheduleMissingTable(t *testing.T) {
	t.Parallel()

	_, err := ParseSchedule("<html><body></body></html>", 2024)
	require.Error(t, err)
}

func TestParseWeek(t *testing.T) {
	t.Parallel()

	for text, want := range map[string]int{
		"1": 1, "18": 18, "WildCard": 19, "Division": 20,
		"ConfChamp": 21, "SuperBowl": 22,
	} {
		got, err := parseWeek(text)
		require.NoError(t, err)
		assert.Equal(t, want, got, "week %q", text)
	}

	_, err := parseWeek("Pro Bowl")
	assert.Error(t, err)
}
