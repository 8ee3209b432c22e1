package boxscore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayerIDFromHref(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		href string
		want string
	}{
		{"standard player page", "/players/J/JeffJu00.htm", "JeffJu00"},
		{"no extension", "/players/T/TuckJu00", "TuckJu00"},
		{"absolute url", "https://example.com/players/A/AlleJo02.htm", "AlleJo02"},
		{"empty", "", ""},
		{"bare slash", "/", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, PlayerIDFromHref(tc.href))
		})
	}
}

func TestDedupeColumns(t *testing.T) {
	t.Parallel()

	got := DedupeColumns([]string{"Player", "Yds", "TD", "Yds", "Yds", "TD"})
	require.Equal(t, []string{"Player", "Yds", "TD", "Yds.1", "Yds.2", "TD.1"}, got)
}

func TestDedupeColumnsNoRepeats(t *testing.T) {
	t.Parallel()

	in := []string{"Player", "Tm", "Cmp"}
	assert.Equal(t, in, DedupeColumns(in))
}

func TestRawTableIsEmpty(t *testing.T) {
	t.Parallel()

	var nilTable *RawTable
	assert.True(t, nilTable.IsEmpty())
	assert.True(t, (&RawTable{Columns: []string{"Player"}}).IsEmpty())
	assert.False(t, (&RawTable{
		Columns: []string{"Player"},
		Rows:    [][]Cell{{Plain("Josh Allen")}},
	}).IsEmpty())
}
