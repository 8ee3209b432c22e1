package boxscore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenameDisambiguatesRepeatedHeaders(t *testing.T) {
	t.Parallel()

	n := NewNormalizer()
	assert.Equal(t, "passing_yards", n.Rename(CategoryOffense, "Yds"))
	assert.Equal(t, "passing_sacked_yards", n.Rename(CategoryOffense, "Yds.1"))
	assert.Equal(t, "rushing_yards", n.Rename(CategoryOffense, "Yds.2"))
	assert.Equal(t, "receiving_yards", n.Rename(CategoryOffense, "Yds.3"))
}

func TestRenameUnknownHeaderPassesThrough(t *testing.T) {
	t.Parallel()

	n := NewNormalizer()
	assert.Equal(t, "NewStat", n.Rename(CategoryOffense, "NewStat"))
	assert.Equal(t, "Yds", n.Rename("no_such_category", "Yds"))
}

func TestRenameIsIdempotent(t *testing.T) {
	t.Parallel()

	n := NewNormalizer()
	for _, category := range []string{
		CategoryOffense, CategoryKicking, CategoryDefense, CategoryReturns,
		CategoryAdvancedPassing, CategoryAdvancedRushing,
		CategoryAdvancedReceiving, CategoryAdvancedDefense,
		CategoryHomeSnapCounts,
	} {
		headers := []string{"Player", "Tm", "Yds", "Yds.1", "Pct", "Pos"}
		once := n.RenameAll(category, headers)
		twice := n.RenameAll(category, once)
		assert.Equal(t, once, twice, "category %s", category)
	}
}

func TestSnapCountCategoriesShareMapping(t *testing.T) {
	t.Parallel()

	n := NewNormalizer()
	assert.Equal(t, n.Rename(CategoryHomeSnapCounts, "Num.1"),
		n.Rename(CategoryVisitorSnapCounts, "Num.1"))
	assert.Equal(t, ColPosition, n.Rename(CategoryHomeSnapCounts, "Pos"))
}
