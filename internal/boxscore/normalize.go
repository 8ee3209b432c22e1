package boxscore

// Stat table categories. Each category corresponds to one source table on a
// game page; snap counts arrive as two per-team tables sharing one header
// mapping.
const (
	CategoryOffense           = "offense"
	CategoryFieldGoals        = "field_goals"
	CategoryKicking           = "kicking"
	CategoryDefense           = "defense"
	CategoryReturns           = "returns"
	CategoryAdvancedPassing   = "passing_advanced"
	CategoryAdvancedRushing   = "rushing_advanced"
	CategoryAdvancedReceiving = "receiving_advanced"
	CategoryAdvancedDefense   = "defense_advanced"
	CategoryHomeSnapCounts    = "home_snap_counts"
	CategoryVisitorSnapCounts = "vis_snap_counts"
)

// Identifier and context columns shared by every category table.
const (
	ColPlayer    = "player"
	ColPlayerID  = "player_id"
	ColTeam      = "team"
	ColPosition  = "position"
	ColDate      = "date"
	ColWeek      = "week"
	ColSeason    = "season"
	ColHomeAway  = "home_away"
	ColHomeTeam  = "home_team"
	ColAwayTeam  = "away_team"
	ColSourceURL = "source_url"
)

// offenseRenames covers the combined passing/rushing/receiving table. The
// source repeats "Yds", "Att", "TD" and "Lng" across stat groups; the keys
// here are the positionally deduplicated header names, which is why the
// mapping must stay in source column order.
var offenseRenames = map[string]string{
	"Player": ColPlayer,
	"Tm":     ColTeam,
	"Cmp":    "passing_completions",
	"Att":    "passing_attempts",
	"Yds":    "passing_yards",
	"TD":     "passing_touchdowns",
	"Int":    "passing_interceptions",
	"Sk":     "passing_sacks",
	"Yds.1":  "passing_sacked_yards",
	"Lng":    "passing_longest_pass",
	"Rate":   "passing_passer_rating",
	"Att.1":  "rushing_attempts",
	"Yds.2":  "rushing_yards",
	"TD.1":   "rushing_touchdowns",
	"Lng.1":  "rushing_longest_rush",
	"Tgt":    "receiving_targets",
	"Rec":    "receiving_receptions",
	"Yds.3":  "receiving_yards",
	"TD.2":   "receiving_touchdowns",
	"Lng.2":  "receiving_longest_reception",
	"Fmb":    "offensive_fumbles",
	"FL":     "offensive_fumbles_lost",
}

// fieldGoalRenames applies to the aggregated scoring-detail output, not the
// raw scoring table.
var fieldGoalRenames = map[string]string{
	"Tm":     ColTeam,
	"kicker": ColPlayer,
}

var defenseRenames = map[string]string{
	"Player": ColPlayer,
	"Tm":     ColTeam,
	"Int":    "defensive_interceptions",
	"Yds":    "defensive_interception_return_yards",
	"TD":     "defensive_interception_touchdowns",
	"Lng":    "defensive_longest_interception_return",
	"PD":     "defensive_passes_defended",
	"Sk":     "defensive_sacks",
	"Comb":   "defensive_total_tackles",
	"Solo":   "defensive_solo_tackles",
	"Ast":    "defensive_assisted_tackles",
	"TFL":    "defensive_tackles_for_loss",
	"QBHits": "defensive_qb_hits",
	"FR":     "defensive_fumble_recoveries",
	"Yds.1":  "defensive_fumble_return_yards",
	"TD.1":   "defensive_fumble_touchdowns",
	"FF":     "defensive_forced_fumbles",
}

var returnsRenames = map[string]string{
	"Player": ColPlayer,
	"Tm":     ColTeam,
	"Rt":     "kick_return_returns",
	"Yds":    "kick_return_yards",
	"Y/Rt":   "kick_return_yards_per_return",
	"TD":     "kick_return_touchdowns",
	"Lng":    "kick_return_longest_return",
	"Ret":    "punt_return_returns",
	"Yds.1":  "punt_return_yards",
	"Y/R":    "punt_return_yards_per_return",
	"TD.1":   "punt_return_touchdowns",
	"Lng.1":  "punt_return_longest_return",
}

var kickingRenames = map[string]string{
	"Player": ColPlayer,
	"Tm":     ColTeam,
	"XPM":    "kicking_extra_points_made",
	"XPA":    "kicking_extra_points_attempted",
	"FGM":    "kicking_field_goals_made",
	"FGA":    "kicking_field_goals_attempted",
	"Pnt":    "punting_num_punts",
	"Yds":    "punting_punt_yards",
	"Y/P":    "punting_yards_per_punt",
	"Lng":    "punting_longest_punt",
}

var advancedPassingRenames = map[string]string{
	"Player":  ColPlayer,
	"Tm":      ColTeam,
	"1D":      "passing_first_downs_thrown",
	"1D%":     "passing_first_down_pct",
	"IAY":     "passing_intended_air_yards",
	"IAY/PA":  "passing_intended_air_yards_per_att",
	"CAY":     "passing_completed_air_yards",
	"CAY/Cmp": "passing_completed_air_yards_per_cmp",
	"CAY/PA":  "passing_completed_air_yards_per_att",
	"YAC":     "passing_yards_after_catch",
	"YAC/Cmp": "passing_yards_after_catch_per_cmp",
	"Drops":   "passing_drops",
	"Drop%":   "passing_drop_pct",
	"BadTh":   "passing_bad_throws",
	"Bad%":    "passing_bad_throw_pct",
	"Sk":      "passing_sacks_taken",
	"Bltz":    "passing_blitzes_taken",
	"Hrry":    "passing_hurries_taken",
	"Hits":    "passing_qb_hits_taken",
	"Prss":    "passing_pressures_taken",
	"Prss%":   "passing_pressure_pct_taken",
	"Scrm":    "passing_scrambles",
	"Yds/Scr": "passing_yards_per_scramble",
}

var advancedReceivingRenames = map[string]string{
	"Player": ColPlayer,
	"Tm":     ColTeam,
	"1D":     "receiving_first_downs",
	"YBC":    "receiving_yards_before_catch",
	"YBC/R":  "receiving_yards_before_catch_per_reception",
	"YAC":    "receiving_yards_after_catch",
	"YAC/R":  "receiving_yards_after_catch_per_reception",
	"ADOT":   "receiving_average_depth_of_target",
	"BrkTkl": "receiving_broken_tackles",
	"Rec/Br": "receiving_receptions_per_broken_tackle",
	"Drop":   "receiving_drops",
	"Drop%":  "receiving_drop_percentage",
	"Int":    "receiving_interceptions",
	"Rat":    "receiving_passer_rating",
}

var advancedRushingRenames = map[string]string{
	"Player":  ColPlayer,
	"Tm":      ColTeam,
	"1D":      "rushing_first_downs",
	"YBC":     "rushing_yards_before_contact",
	"YBC/Att": "rushing_yards_before_contact_per_attempt",
	"YAC":     "rushing_yards_after_contact",
	"YAC/Att": "rushing_yards_after_contact_per_attempt",
	"BrkTkl":  "rushing_broken_tackles",
	"Att/Br":  "rushing_attempts_per_broken_tackle",
}

var advancedDefenseRenames = map[string]string{
	"Player":  ColPlayer,
	"Tm":      ColTeam,
	"Tgt":     "defensive_targets",
	"Cmp":     "defensive_completions_allowed",
	"Cmp%":    "defensive_completion_percentage",
	"Yds/Cmp": "defensive_yards_per_completion",
	"Yds/Tgt": "defensive_yards_per_target",
	"Rat":     "defensive_passer_rating",
	"DADOT":   "defensive_average_depth_of_target",
	"Air":     "defensive_air_yards_allowed",
	"YAC":     "defensive_yards_after_catch_allowed",
	"Bltz":    "defensive_blitzes",
	"Hrry":    "defensive_hurries",
	"QBKD":    "defensive_qb_hits",
	"Prss":    "defensive_pressures",
	"Comb":    "defensive_combined_tackles",
	"MTkl":    "defensive_missed_tackles",
	"MTkl%":   "defensive_missed_tackle_percentage",
}

var snapCountRenames = map[string]string{
	"Player": ColPlayer,
	"Pos":    ColPosition,
	"Num":    "offensive_snaps",
	"Pct":    "offensive_snaps_percentage",
	"Num.1":  "defensive_snaps",
	"Pct.1":  "defensive_snaps_percentage",
	"Num.2":  "special_teams_snaps",
	"Pct.2":  "special_teams_snaps_percentage",
}

// Normalizer maps source-specific headers to canonical column names per
// category. The tables are immutable configuration: construct one and share
// it. Headers without a mapping pass through unrenamed so that new source
// columns surface downstream instead of vanishing silently.
type Normalizer struct {
	renames map[string]map[string]string
}

// NewNormalizer builds a normalizer with the standard category mappings.
func NewNormalizer() *Normalizer {
	return &Normalizer{
		renames: map[string]map[string]string{
			CategoryOffense:           offenseRenames,
			CategoryFieldGoals:        fieldGoalRenames,
			CategoryKicking:           kickingRenames,
			CategoryDefense:           defenseRenames,
			CategoryReturns:           returnsRenames,
			CategoryAdvancedPassing:   advancedPassingRenames,
			CategoryAdvancedRushing:   advancedRushingRenames,
			CategoryAdvancedReceiving: advancedReceivingRenames,
			CategoryAdvancedDefense:   advancedDefenseRenames,
			CategoryHomeSnapCounts:    snapCountRenames,
			CategoryVisitorSnapCounts: snapCountRenames,
		},
	}
}

// Rename maps one header to its canonical name for a category, returning
// the header unchanged when no mapping exists. Applying Rename to its own
// output is a no-op: canonical names are never mapping keys.
func (n *Normalizer) Rename(category, header string) string {
	table, ok := n.renames[category]
	if !ok {
		return header
	}
	if canonical, ok := table[header]; ok {
		return canonical
	}
	return header
}

// RenameAll maps a full header list for a category.
func (n *Normalizer) RenameAll(category string, headers []string) []string {
	out := make([]string, len(headers))
	for i, h := range headers {
		out[i] = n.Rename(category, h)
	}
	return out
}
