package models

import (
	"github.com/google/uuid"
	"time"
)

// DraftMode controls how the Pick Board is initialized (spec §3 Draft).
// Simple mode fixes a uniform picks-per-round grid; Realistic mode allows
// round sizes to vary with compensatory picks and is validated by
// pickboard.BuildRealisticBoard rather than derived arithmetically.
type DraftMode string

const (
	DraftModeSimple     DraftMode = "SIMPLE"
	DraftModeRealistic  DraftMode = "REALISTIC"
)

// Draft is reference metadata for a draft: the session it's paired with
// owns lifecycle status, not this entity (spec §3 splits the two; the
// teacher's single Draft+Status+Settings row is intentionally divided).
type Draft struct {
	ID            uuid.UUID `json:"id"`
	LeagueID      uuid.UUID `json:"league_id"`
	Name          string    `json:"name"`
	Year          int       `json:"year"`
	Mode          DraftMode `json:"mode"`
	Rounds        int       `json:"rounds"`
	PicksPerRound *int      `json:"picks_per_round,omitempty"` // nil in realistic mode
	TotalPicks    int       `json:"total_picks"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
