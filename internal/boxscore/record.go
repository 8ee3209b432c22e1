package boxscore

import "time"

// Record is one player's finished line for one game. Identity and context
// fields are always populated when known; every stat field is a pointer
// because no player participates in every category, and a nil stat is
// "did not record", not zero.
type Record struct {
	Player    string    `json:"player"`
	PlayerID  string    `json:"player_id"`
	Position  string    `json:"position"`
	Team      string    `json:"team"`
	Date      time.Time `json:"date"`
	Week      int       `json:"week"`
	Season    int       `json:"season"`
	HomeAway  string    `json:"home_away"`
	HomeTeam  string    `json:"home_team"`
	AwayTeam  string    `json:"away_team"`
	SourceURL string    `json:"source_url"`

	// Passing
	PassingCompletions            *int     `json:"passing_completions,omitempty"`
	PassingAttempts               *int     `json:"passing_attempts,omitempty"`
	PassingYards                  *float64 `json:"passing_yards,omitempty"`
	PassingTouchdowns             *int     `json:"passing_touchdowns,omitempty"`
	PassingInterceptions          *int     `json:"passing_interceptions,omitempty"`
	PassingSacks                  *int     `json:"passing_sacks,omitempty"`
	PassingSackedYards            *float64 `json:"passing_sacked_yards,omitempty"`
	PassingLongestPass            *float64 `json:"passing_longest_pass,omitempty"`
	PassingPasserRating           *float64 `json:"passing_passer_rating,omitempty"`
	PassingFirstDownsThrown       *int     `json:"passing_first_downs_thrown,omitempty"`
	PassingFirstDownPct           *float64 `json:"passing_first_down_pct,omitempty"`
	PassingIntendedAirYards       *float64 `json:"passing_intended_air_yards,omitempty"`
	PassingIntendedAirYardsPerAtt *float64 `json:"passing_intended_air_yards_per_att,omitempty"`
	PassingCompletedAirYards      *float64 `json:"passing_completed_air_yards,omitempty"`
	PassingCompletedAirYardsCmp   *float64 `json:"passing_completed_air_yards_per_cmp,omitempty"`
	PassingCompletedAirYardsAtt   *float64 `json:"passing_completed_air_yards_per_att,omitempty"`
	PassingYardsAfterCatch        *float64 `json:"passing_yards_after_catch,omitempty"`
	PassingYardsAfterCatchPerCmp  *float64 `json:"passing_yards_after_catch_per_cmp,omitempty"`
	PassingDrops                  *int     `json:"passing_drops,omitempty"`
	PassingDropPct                *float64 `json:"passing_drop_pct,omitempty"`
	PassingBadThrows              *int     `json:"passing_bad_throws,omitempty"`
	PassingBadThrowPct            *float64 `json:"passing_bad_throw_pct,omitempty"`
	PassingSacksTaken             *int     `json:"passing_sacks_taken,omitempty"`
	PassingBlitzesTaken           *int     `json:"passing_blitzes_taken,omitempty"`
	PassingHurriesTaken           *int     `json:"passing_hurries_taken,omitempty"`
	PassingQBHitsTaken            *int     `json:"passing_qb_hits_taken,omitempty"`
	PassingPressuresTaken         *int     `json:"passing_pressures_taken,omitempty"`
	PassingPressurePctTaken       *float64 `json:"passing_pressure_pct_taken,omitempty"`
	PassingScrambles              *int     `json:"passing_scrambles,omitempty"`
	PassingYardsPerScramble       *float64 `json:"passing_yards_per_scramble,omitempty"`

	// Rushing
	RushingAttempts                 *int     `json:"rushing_attempts,omitempty"`
	RushingYards                    *float64 `json:"rushing_yards,omitempty"`
	RushingTouchdowns               *int     `json:"rushing_touchdowns,omitempty"`
	RushingLongestRush              *float64 `json:"rushing_longest_rush,omitempty"`
	RushingFirstDowns               *int     `json:"rushing_first_downs,omitempty"`
	RushingYardsBeforeContact       *float64 `json:"rushing_yards_before_contact,omitempty"`
	RushingYardsBeforeContactPerAtt *float64 `json:"rushing_yards_before_contact_per_attempt,omitempty"`
	RushingYardsAfterContact        *float64 `json:"rushing_yards_after_contact,omitempty"`
	RushingYardsAfterContactPerAtt  *float64 `json:"rushing_yards_after_contact_per_attempt,omitempty"`
	RushingBrokenTackles            *int     `json:"rushing_broken_tackles,omitempty"`
	RushingAttemptsPerBrokenTackle  *float64 `json:"rushing_attempts_per_broken_tackle,omitempty"`

	// Receiving
	ReceivingTargets                 *int     `json:"receiving_targets,omitempty"`
	ReceivingReceptions              *int     `json:"receiving_receptions,omitempty"`
	ReceivingYards                   *float64 `json:"receiving_yards,omitempty"`
	ReceivingTouchdowns              *int     `json:"receiving_touchdowns,omitempty"`
	ReceivingLongestReception        *float64 `json:"receiving_longest_reception,omitempty"`
	ReceivingFirstDowns              *int     `json:"receiving_first_downs,omitempty"`
	ReceivingYardsBeforeCatch        *float64 `json:"receiving_yards_before_catch,omitempty"`
	ReceivingYardsBeforeCatchPerRec  *float64 `json:"receiving_yards_before_catch_per_reception,omitempty"`
	ReceivingYardsAfterCatch         *float64 `json:"receiving_yards_after_catch,omitempty"`
	ReceivingYardsAfterCatchPerRec   *float64 `json:"receiving_yards_after_catch_per_reception,omitempty"`
	ReceivingAverageDepthOfTarget    *float64 `json:"receiving_average_depth_of_target,omitempty"`
	ReceivingBrokenTackles           *int     `json:"receiving_broken_tackles,omitempty"`
	ReceivingReceptionsPerBrokenTkl  *float64 `json:"receiving_receptions_per_broken_tackle,omitempty"`
	ReceivingDrops                   *int     `json:"receiving_drops,omitempty"`
	ReceivingDropPercentage          *float64 `json:"receiving_drop_percentage,omitempty"`
	ReceivingInterceptions           *int     `json:"receiving_interceptions,omitempty"`
	ReceivingPasserRating            *float64 `json:"receiving_passer_rating,omitempty"`

	// Fumbles
	OffensiveFumbles     *int `json:"offensive_fumbles,omitempty"`
	OffensiveFumblesLost *int `json:"offensive_fumbles_lost,omitempty"`

	// Kicking and punting
	KickingNumFieldGoalsMade          *int     `json:"kicking_num_field_goals_made,omitempty"`
	KickingTotalMadeFieldGoalsDist    *float64 `json:"kicking_total_made_field_goals_distance,omitempty"`
	KickingFieldGoalsMadeAvgDistance  *float64 `json:"kicking_field_goals_made_average_distance,omitempty"`
	KickingExtraPointsMade            *int     `json:"kicking_extra_points_made,omitempty"`
	KickingExtraPointsAttempted       *int     `json:"kicking_extra_points_attempted,omitempty"`
	KickingFieldGoalsMade             *int     `json:"kicking_field_goals_made,omitempty"`
	KickingFieldGoalsAttempted        *int     `json:"kicking_field_goals_attempted,omitempty"`
	PuntingNumPunts                   *int     `json:"punting_num_punts,omitempty"`
	PuntingPuntYards                  *float64 `json:"punting_punt_yards,omitempty"`
	PuntingYardsPerPunt               *float64 `json:"punting_yards_per_punt,omitempty"`
	PuntingLongestPunt                *float64 `json:"punting_longest_punt,omitempty"`

	// Defense
	DefensiveInterceptions            *int     `json:"defensive_interceptions,omitempty"`
	DefensiveInterceptionReturnYards  *float64 `json:"defensive_interception_return_yards,omitempty"`
	DefensiveInterceptionTouchdowns   *int     `json:"defensive_interception_touchdowns,omitempty"`
	DefensiveLongestIntReturn         *float64 `json:"defensive_longest_interception_return,omitempty"`
	DefensivePassesDefended           *int     `json:"defensive_passes_defended,omitempty"`
	DefensiveSacks                    *float64 `json:"defensive_sacks,omitempty"`
	DefensiveTotalTackles             *int     `json:"defensive_total_tackles,omitempty"`
	DefensiveSoloTackles              *int     `json:"defensive_solo_tackles,omitempty"`
	DefensiveAssistedTackles          *int     `json:"defensive_assisted_tackles,omitempty"`
	DefensiveTacklesForLoss           *int     `json:"defensive_tackles_for_loss,omitempty"`
	DefensiveQBHits                   *int     `json:"defensive_qb_hits,omitempty"`
	DefensiveFumbleRecoveries         *int     `json:"defensive_fumble_recoveries,omitempty"`
	DefensiveFumbleReturnYards        *float64 `json:"defensive_fumble_return_yards,omitempty"`
	DefensiveFumbleTouchdowns         *int     `json:"defensive_fumble_touchdowns,omitempty"`
	DefensiveForcedFumbles            *int     `json:"defensive_forced_fumbles,omitempty"`
	DefensiveTargets                  *int     `json:"defensive_targets,omitempty"`
	DefensiveCompletionsAllowed       *int     `json:"defensive_completions_allowed,omitempty"`
	DefensiveCompletionPercentage     *float64 `json:"defensive_completion_percentage,omitempty"`
	DefensiveYardsPerCompletion       *float64 `json:"defensive_yards_per_completion,omitempty"`
	DefensiveYardsPerTarget           *float64 `json:"defensive_yards_per_target,omitempty"`
	DefensivePasserRating             *float64 `json:"defensive_passer_rating,omitempty"`
	DefensiveAverageDepthOfTarget     *float64 `json:"defensive_average_depth_of_target,omitempty"`
	DefensiveAirYardsAllowed          *float64 `json:"defensive_air_yards_allowed,omitempty"`
	DefensiveYardsAfterCatchAllowed   *float64 `json:"defensive_yards_after_catch_allowed,omitempty"`
	DefensiveBlitzes                  *int     `json:"defensive_blitzes,omitempty"`
	DefensiveHurries                  *int     `json:"defensive_hurries,omitempty"`
	DefensivePressures                *int     `json:"defensive_pressures,omitempty"`
	DefensiveCombinedTackles          *int     `json:"defensive_combined_tackles,omitempty"`
	DefensiveMissedTackles            *int     `json:"defensive_missed_tackles,omitempty"`
	DefensiveMissedTacklePercentage   *float64 `json:"defensive_missed_tackle_percentage,omitempty"`

	// Returns
	KickReturnReturns        *int     `json:"kick_return_returns,omitempty"`
	KickReturnYards          *float64 `json:"kick_return_yards,omitempty"`
	KickReturnYardsPerReturn *float64 `json:"kick_return_yards_per_return,omitempty"`
	KickReturnTouchdowns     *int     `json:"kick_return_touchdowns,omitempty"`
	KickReturnLongestReturn  *float64 `json:"kick_return_longest_return,omitempty"`
	PuntReturnReturns        *int     `json:"punt_return_returns,omitempty"`
	PuntReturnYards          *float64 `json:"punt_return_yards,omitempty"`
	PuntReturnYardsPerReturn *float64 `json:"punt_return_yards_per_return,omitempty"`
	PuntReturnTouchdowns     *int     `json:"punt_return_touchdowns,omitempty"`
	PuntReturnLongestReturn  *float64 `json:"punt_return_longest_return,omitempty"`

	// Snap counts
	OffensiveSnaps              *int     `json:"offensive_snaps,omitempty"`
	OffensiveSnapsPercentage    *float64 `json:"offensive_snaps_percentage,omitempty"`
	DefensiveSnaps              *int     `json:"defensive_snaps,omitempty"`
	DefensiveSnapsPercentage    *float64 `json:"defensive_snaps_percentage,omitempty"`
	SpecialTeamsSnaps           *int     `json:"special_teams_snaps,omitempty"`
	SpecialTeamsSnapsPercentage *float64 `json:"special_teams_snaps_percentage,omitempty"`
}
