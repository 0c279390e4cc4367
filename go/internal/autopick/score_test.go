package autopick

import (
	"testing"

	"github.com/google/uuid"

	"github.com/draftsim/engine/go/internal/apperr"
)

func rank(v float64) *float64 { return &v }

func TestScorePrefersLowerConsensusRank(t *testing.T) {
	strategy := DefaultStrategy()
	best := Candidate{PlayerID: uuid.New(), Position: "QB", ConsensusRank: rank(1)}
	worst := Candidate{PlayerID: uuid.New(), Position: "QB", ConsensusRank: rank(50)}

	if Score(best, nil, strategy) <= Score(worst, nil, strategy) {
		t.Fatalf("expected pick 1 to outscore pick 50")
	}
}

func TestScoreUsesScoutingGradeWhenUnranked(t *testing.T) {
	strategy := DefaultStrategy()
	graded := Candidate{PlayerID: uuid.New(), Position: "WR", ScoutingGrade: rank(80)}
	ungraded := Candidate{PlayerID: uuid.New(), Position: "WR"}

	if Score(graded, nil, strategy) <= Score(ungraded, nil, strategy) {
		t.Fatalf("expected the scouted player to outscore the blank one")
	}
}

func TestNeedScoreRespectsPositionValueMultiplier(t *testing.T) {
	strategy := Strategy{WeightBPA: 0.6, WeightNeed: 0.4, PositionValues: map[string]float64{"OL": 2.0}}
	needs := map[string]int{"OL": 5, "TE": 5}

	ol := Candidate{PlayerID: uuid.New(), Position: "OL"}
	te := Candidate{PlayerID: uuid.New(), Position: "TE"}

	if Score(ol, needs, strategy) <= Score(te, needs, strategy) {
		t.Fatalf("expected the 2x position-value multiplier to lift OL's score above TE's")
	}
}

func TestConcernPenaltyIsMonotonicInRiskToleranceAndWeight(t *testing.T) {
	base := Candidate{PlayerID: uuid.New(), Position: "RB", ConsensusRank: rank(10)}
	injured := base
	injured.InjuryConcern = true
	both := injured
	both.CharacterConcern = true

	for _, tolerance := range []float64{0, 0.5, 1} {
		strategy := Strategy{WeightBPA: 0.6, WeightNeed: 0.4, RiskTolerance: tolerance}
		baseScore := Score(base, nil, strategy)
		injuredScore := Score(injured, nil, strategy)
		bothScore := Score(both, nil, strategy)
		if injuredScore > baseScore {
			t.Fatalf("injury concern should never raise score (tolerance=%v)", tolerance)
		}
		if bothScore > injuredScore {
			t.Fatalf("combined concerns should never raise score above single concern (tolerance=%v)", tolerance)
		}
	}

	strategyZero := Strategy{WeightBPA: 0.6, WeightNeed: 0.4, RiskTolerance: 0}
	strategyFull := Strategy{WeightBPA: 0.6, WeightNeed: 0.4, RiskTolerance: 1}
	if Score(injured, nil, strategyZero) < Score(injured, nil, strategyFull) {
		t.Fatalf("higher risk tolerance should never raise an injury-flagged score")
	}
}

func TestSelectTieBreaksByConsensusRankThenPlayerID(t *testing.T) {
	strategy := DefaultStrategy()
	a := Candidate{PlayerID: uuid.MustParse("00000000-0000-0000-0000-000000000002"), Position: "QB"}
	b := Candidate{PlayerID: uuid.MustParse("00000000-0000-0000-0000-000000000001"), Position: "QB"}

	got, err := Select([]Candidate{a, b}, nil, strategy)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if got != b.PlayerID {
		t.Fatalf("expected lexicographically-first player_id to win an exact tie, got %s", got)
	}

	// Equal scores (90 each) but different consensus ranks: the better rank
	// wins even though its player_id sorts later.
	equal := Strategy{WeightBPA: 1, WeightNeed: 1}
	ranked := Candidate{PlayerID: uuid.MustParse("00000000-0000-0000-0000-000000000004"), Position: "QB", ConsensusRank: rank(10)}
	needed := Candidate{PlayerID: uuid.MustParse("00000000-0000-0000-0000-000000000003"), Position: "WR", ConsensusRank: rank(30)}
	got, err = Select([]Candidate{needed, ranked}, map[string]int{"WR": 2}, equal)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if got != ranked.PlayerID {
		t.Fatalf("expected lower consensus rank to win a score tie, got %s", got)
	}
}

func TestSelectNoEligibleOnEmptyPool(t *testing.T) {
	_, err := Select(nil, nil, DefaultStrategy())
	if !apperr.Is(err, apperr.NoEligible) {
		t.Fatalf("expected NoEligible, got %v", err)
	}
}
