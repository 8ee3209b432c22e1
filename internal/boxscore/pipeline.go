package boxscore

import "time"

// playerHeader is the source header naming the identity column in every
// per-player table.
const playerHeader = "Player"

// GameTables holds the raw category tables scraped from one game page. Any
// of them may be nil or empty; a missing category simply contributes
// nothing.
type GameTables struct {
	Offense           *RawTable
	Scoring           *RawTable
	Kicking           *RawTable
	Defense           *RawTable
	Returns           *RawTable
	AdvancedPassing   *RawTable
	AdvancedRushing   *RawTable
	AdvancedReceiving *RawTable
	AdvancedDefense   *RawTable
	HomeSnapCounts    *RawTable
	VisitorSnapCounts *RawTable
}

// Game is one game's raw input to the pipeline.
type Game struct {
	Date      time.Time
	Week      int
	SourceURL string
	Tables    GameTables
}

// Pipeline transforms one game's raw tables into canonical Records. It is
// a synchronous in-memory batch transform with no state shared across
// games beyond the validator's warning cache.
type Pipeline struct {
	builder   *Builder
	merger    *Merger
	deduper   *Deduper
	validator *Validator
}

func NewPipeline() *Pipeline {
	return &Pipeline{
		builder:   NewBuilder(NewNormalizer()),
		merger:    NewMerger(),
		deduper:   NewDeduper(),
		validator: NewValidator(),
	}
}

// Process runs the full normalize, merge, dedupe, validate chain for one
// game. A game with no usable rows in any category yields (nil, nil). A
// validation failure aborts the game; the caller chooses whether that
// aborts the batch.
func (p *Pipeline) Process(game Game) ([]Record, error) {
	base := BuildOptions{
		IdentityColumn: playerHeader,
		Date:           game.Date,
		Week:           game.Week,
		SourceURL:      game.SourceURL,
	}
	build := func(raw *RawTable, category string) *Table {
		opts := base
		opts.Category = category
		return p.builder.Build(raw, opts)
	}

	offense := build(game.Tables.Offense, CategoryOffense)
	teams := ResolveTeams(offense)

	fgOpts := base
	fgOpts.Category = CategoryFieldGoals
	fieldGoals := p.builder.BuildFieldGoals(game.Tables.Scoring, fgOpts)

	homeOpts := base
	homeOpts.Category = CategoryHomeSnapCounts
	homeOpts.Team = teams.Home
	homeSnaps := p.builder.Build(game.Tables.HomeSnapCounts, homeOpts)

	visOpts := base
	visOpts.Category = CategoryVisitorSnapCounts
	visOpts.Team = teams.Away
	visitorSnaps := p.builder.Build(game.Tables.VisitorSnapCounts, visOpts)

	tables := []*Table{
		offense,
		fieldGoals,
		build(game.Tables.Kicking, CategoryKicking),
		build(game.Tables.Defense, CategoryDefense),
		build(game.Tables.Returns, CategoryReturns),
		build(game.Tables.AdvancedPassing, CategoryAdvancedPassing),
		build(game.Tables.AdvancedRushing, CategoryAdvancedRushing),
		build(game.Tables.AdvancedReceiving, CategoryAdvancedReceiving),
		build(game.Tables.AdvancedDefense, CategoryAdvancedDefense),
		homeSnaps,
		visitorSnaps,
	}
	for _, t := range tables {
		ApplyContext(t, teams, game.Date)
	}

	merged := p.merger.MergeGame(tables)
	if merged.IsEmpty() {
		return nil, nil
	}

	resolved := p.deduper.Resolve(merged)
	return p.validator.ValidateAll(resolved)
}
