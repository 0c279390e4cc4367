package autopick

import (
	"math"
	"sort"

	"github.com/google/uuid"

	"github.com/draftsim/engine/go/internal/apperr"
)

// concern-penalty weights (SPEC_FULL §14 Open Question decision 3): additive
// when both flags are set, clamped to [0,1] before multiplying.
const (
	injuryConcernWeight    = 0.5
	characterConcernWeight = 0.35
)

// bpaScore implements spec.md §4.4's best-player-available component:
// 100 minus consensus rank if ranked, else the team's scouting grade as a
// floor if one exists, else 0.
func bpaScore(c Candidate) float64 {
	if c.ConsensusRank != nil {
		s := 100 - *c.ConsensusRank
		if s < 0 {
			return 0
		}
		return s
	}
	if c.ScoutingGrade != nil {
		return *c.ScoutingGrade
	}
	return 0
}

// needScore scales a team's [1..10] position priority to bpa_score's
// [0,100] magnitude, then applies the strategy's position-value multiplier
// (default 1.0 for positions absent from the table).
func needScore(c Candidate, needs map[string]int, positionValues map[string]float64) float64 {
	priority := needs[c.Position]
	multiplier := 1.0
	if m, ok := positionValues[c.Position]; ok {
		multiplier = m
	}
	return float64(priority) * 10 * multiplier
}

// concernPenalty returns the fraction of raw score removed for flagged
// injury/character risk, scaled by the team's risk tolerance.
func concernPenalty(c Candidate, riskTolerance float64) float64 {
	weight := 0.0
	if c.InjuryConcern {
		weight += injuryConcernWeight
	}
	if c.CharacterConcern {
		weight += characterConcernWeight
	}
	if weight > 1 {
		weight = 1
	}
	return riskTolerance * weight
}

// Score computes a candidate's weighted value for a team, per spec.md
// §4.4's formula. Pure function: no I/O, deterministic given its inputs.
func Score(c Candidate, needs map[string]int, strategy Strategy) float64 {
	raw := strategy.WeightBPA*bpaScore(c) + strategy.WeightNeed*needScore(c, needs, strategy.PositionValues)
	return raw * (1 - concernPenalty(c, strategy.RiskTolerance))
}

// Select returns the argmax candidate by Score, tie-broken by lower
// consensus rank (unranked sorts last) then lexicographically by
// player_id — deterministic given identical inputs (spec.md §4.4).
// Fails with NoEligible only when candidates is empty.
func Select(candidates []Candidate, needs map[string]int, strategy Strategy) (uuid.UUID, error) {
	if len(candidates) == 0 {
		return uuid.UUID{}, apperr.New(apperr.NoEligible, "no eligible candidates")
	}

	type scored struct {
		candidate Candidate
		score     float64
	}
	ranked := make([]scored, len(candidates))
	for i, c := range candidates {
		ranked[i] = scored{candidate: c, score: Score(c, needs, strategy)}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		ri, rj := rankOrInf(ranked[i].candidate), rankOrInf(ranked[j].candidate)
		if ri != rj {
			return ri < rj
		}
		return ranked[i].candidate.PlayerID.String() < ranked[j].candidate.PlayerID.String()
	})

	return ranked[0].candidate.PlayerID, nil
}

func rankOrInf(c Candidate) float64 {
	if c.ConsensusRank != nil {
		return *c.ConsensusRank
	}
	return math.Inf(1)
}
