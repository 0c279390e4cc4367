// Package autopick implements the Auto-Pick Engine (APE): deterministic
// player selection for AI-controlled teams (spec.md §4.4).
package autopick

import "github.com/google/uuid"

// Candidate is one undrafted player's scoring inputs for a single pick
// decision. Built fresh for each pick decision from Catalog reads
// (SPEC_FULL §13.3) — Score itself performs no I/O.
type Candidate struct {
	PlayerID         uuid.UUID
	Position         string
	ConsensusRank    *float64 // nil if unranked
	ScoutingGrade    *float64 // nil if no team-specific grade
	InjuryConcern    bool
	CharacterConcern bool
}

// Strategy holds the scoring weights and risk tolerance for one team's
// picks, overridable per team (spec.md §4.4).
type Strategy struct {
	WeightBPA      float64
	WeightNeed     float64
	PositionValues map[string]float64 // position -> multiplier, default 1.0
	RiskTolerance  float64            // [0,1]: 0 ignores concern flags, 1 applies the full penalty
}

// DefaultStrategy is used for any team without a configured override.
func DefaultStrategy() Strategy {
	return Strategy{WeightBPA: 0.6, WeightNeed: 0.4}
}
