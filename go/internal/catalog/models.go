// Package catalog holds the reference data the Auto-Pick Engine and the
// rest of the draft session engine consult but never mutate during a
// session: players, team needs, scouting grades, and consensus rankings
// (spec.md §4.4 inputs).
package catalog

import (
	"encoding/json"

	"github.com/google/uuid"
)

// Player is a draft-eligible prospect for a given draft year.
type Player struct {
	ID               uuid.UUID `json:"id"`
	DraftYear        int       `json:"draft_year"`
	Name             string    `json:"name"`
	Position         string    `json:"position"`
	College          string    `json:"college"`
	InjuryConcern    bool      `json:"injury_concern"`
	CharacterConcern bool      `json:"character_concern"`
}

// TeamNeed records a team's priority in [1..10] for a position; a position
// absent from a team's needs scores 0 in need_score (spec.md §4.4).
type TeamNeed struct {
	TeamID   uuid.UUID `json:"team_id"`
	Position string    `json:"position"`
	Priority int       `json:"priority"`
}

// ScoutingReport is a team-specific grade for a player, used as the
// bpa_score floor when a player has no consensus rank (spec.md §4.4).
// Notes is the scout's free-text writeup, stored as a JSON blob
// (strengths/weaknesses/comparisons) and nil when no writeup exists.
type ScoutingReport struct {
	TeamID   uuid.UUID       `json:"team_id"`
	PlayerID uuid.UUID       `json:"player_id"`
	Grade    float64         `json:"grade"`
	Notes    json.RawMessage `json:"notes,omitempty"`
}

// RankingSource is one configured external consensus-ranking provider
// (spec.md §9 "consensus rank... mean across configured sources").
type RankingSource struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// PlayerRanking is one source's rank for one player; lower is better.
type PlayerRanking struct {
	SourceID uuid.UUID `json:"source_id"`
	PlayerID uuid.UUID `json:"player_id"`
	Rank     int       `json:"rank"`
}

// TeamStrategy is a per-team override of the Auto-Pick Engine's default
// scoring weights, position-value table, and risk tolerance (spec.md §4.4).
type TeamStrategy struct {
	TeamID         uuid.UUID          `json:"team_id"`
	WeightBPA      *float64           `json:"weight_bpa,omitempty"`
	WeightNeed     *float64           `json:"weight_need,omitempty"`
	PositionValues map[string]float64 `json:"position_values,omitempty"`
	RiskTolerance  float64            `json:"risk_tolerance"`
}
