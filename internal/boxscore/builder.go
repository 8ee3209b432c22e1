package boxscore

import (
	"strconv"
	"strings"
	"time"
)

// BuildOptions configures one category build.
type BuildOptions struct {
	Category       string
	IdentityColumn string
	// Team is attached to every row when the source table carries no team
	// column of its own (snap counts).
	Team      string
	Date      time.Time
	Week      int
	SourceURL string
}

// Builder turns one raw category table into a normalized Table: cells are
// reduced to text, rows gain a player_id extracted from the identity
// column's link, headers are renamed to canonical names, and game context
// columns are attached.
type Builder struct {
	normalizer *Normalizer
}

func NewBuilder(normalizer *Normalizer) *Builder {
	return &Builder{normalizer: normalizer}
}

// Build normalizes one category table. An absent or empty source table
// yields an empty Table, never an error: a missing category contributes
// nothing downstream. Rows whose identity column carries no link are
// dropped, since a row without a player_id cannot be joined.
func (b *Builder) Build(raw *RawTable, opts BuildOptions) *Table {
	out := NewTable(opts.Category)
	if raw.IsEmpty() {
		return out
	}

	columns := DedupeColumns(raw.Columns)
	idIdx := -1
	for i, c := range columns {
		if c == opts.IdentityColumn {
			idIdx = i
			break
		}
	}
	if idIdx < 0 {
		return out
	}

	canonical := b.normalizer.RenameAll(opts.Category, columns)
	for _, c := range canonical {
		out.EnsureColumn(c)
	}
	out.EnsureColumn(ColPlayerID)

	for _, cells := range raw.Rows {
		if idIdx >= len(cells) {
			continue
		}
		playerID := PlayerIDFromHref(cells[idIdx].Href)
		if playerID == "" {
			continue
		}
		row := Row{ColPlayerID: playerID}
		for i, cell := range cells {
			if i >= len(canonical) {
				break
			}
			row[canonical[i]] = cell.Text
		}
		out.AppendRow(row)
	}

	b.attachContext(out, opts)
	return out
}

func (b *Builder) attachContext(t *Table, opts BuildOptions) {
	if t.IsEmpty() {
		return
	}
	t.SetAll(ColDate, opts.Date.Format("2006-01-02"))
	t.SetAll(ColWeek, strconv.Itoa(opts.Week))
	t.SetAll(ColSourceURL, opts.SourceURL)
	if opts.Team != "" && !t.HasColumn(ColTeam) {
		t.SetAll(ColTeam, opts.Team)
	}
}

// Scoring table headers used by the field-goal aggregation.
const (
	scoringTeamHeader   = "Tm"
	scoringDetailHeader = "Detail"
)

type fieldGoalGroup struct {
	playerID string
	kicker   string
	team     string
	count    int
	total    float64
}

// BuildFieldGoals derives a kicking table from raw per-play scoring rows.
// Rows are filtered to field-goal makes: the detail text must contain
// "field goal" but not "field goal return", a distinct play type. Each make
// contributes its distance, parsed from the text before the word "yard",
// and makes are grouped per (player_id, kicker, team) into count, total
// distance, and mean distance.
func (b *Builder) BuildFieldGoals(raw *RawTable, opts BuildOptions) *Table {
	out := NewTable(CategoryFieldGoals)
	if raw.IsEmpty() {
		return out
	}

	tmIdx := raw.ColumnIndex(scoringTeamHeader)
	detIdx := raw.ColumnIndex(scoringDetailHeader)
	if detIdx < 0 {
		return out
	}

	groups := make(map[string]*fieldGoalGroup)
	var order []string

	for _, cells := range raw.Rows {
		if detIdx >= len(cells) {
			continue
		}
		detail := cells[detIdx]
		lower := strings.ToLower(detail.Text)
		if !strings.Contains(lower, "field goal") || strings.Contains(lower, "field goal return") {
			continue
		}

		kicker, distance, ok := parseFieldGoalDetail(detail.Text)
		if !ok {
			continue
		}
		playerID := PlayerIDFromHref(detail.Href)
		if playerID == "" {
			continue
		}
		team := ""
		if tmIdx >= 0 && tmIdx < len(cells) {
			team = strings.TrimSpace(cells[tmIdx].Text)
		}

		key := playerID + "\x1f" + kicker + "\x1f" + team
		g, ok := groups[key]
		if !ok {
			g = &fieldGoalGroup{playerID: playerID, kicker: kicker, team: team}
			groups[key] = g
			order = append(order, key)
		}
		g.count++
		g.total += distance
	}

	if len(order) == 0 {
		return out
	}

	for _, c := range []string{
		ColPlayer, ColPlayerID, ColTeam,
		"kicking_num_field_goals_made",
		"kicking_total_made_field_goals_distance",
		"kicking_field_goals_made_average_distance",
	} {
		out.EnsureColumn(c)
	}
	for _, key := range order {
		g := groups[key]
		out.AppendRow(Row{
			ColPlayer:    g.kicker,
			ColPlayerID:  g.playerID,
			ColTeam:      g.team,
			"kicking_num_field_goals_made":              strconv.Itoa(g.count),
			"kicking_total_made_field_goals_distance":   formatFloat(g.total),
			"kicking_field_goals_made_average_distance": formatFloat(g.total / float64(g.count)),
		})
	}

	b.attachContext(out, opts)
	return out
}

// parseFieldGoalDetail splits a description like "Justin Tucker 46 yard
// field goal" into the kicker's name and the attempt distance. The distance
// is the last whitespace field before the word "yard"; everything before it
// is the name.
func parseFieldGoalDetail(detail string) (kicker string, distance float64, ok bool) {
	before, _, found := strings.Cut(detail, "yard")
	if !found {
		return "", 0, false
	}
	fields := strings.Fields(before)
	if len(fields) < 2 {
		return "", 0, false
	}
	distance, err := strconv.ParseFloat(fields[len(fields)-1], 64)
	if err != nil {
		return "", 0, false
	}
	return strings.Join(fields[:len(fields)-1], " "), distance, true
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
