package models

import (
	"github.com/google/uuid"
	"time"
)

// TradeStatus is the Trade Engine's lifecycle for a single proposal
// (spec §3 Trade, §4.3).
type TradeStatus string

const (
	TradeStatusProposed TradeStatus = "PROPOSED"
	TradeStatusAccepted TradeStatus = "ACCEPTED"
	TradeStatusRejected TradeStatus = "REJECTED"
)

// TradeSide names which side of a trade a TradeDetail belongs to.
type TradeSide string

const (
	TradeSideFrom TradeSide = "FROM_TEAM"
	TradeSideTo   TradeSide = "TO_TEAM"
)

// Trade is a proposed or resolved exchange of picks between two teams.
// FromTeam and ToTeam must differ; summed detail values per side must
// equal the corresponding aggregate value (spec §3 invariants).
type Trade struct {
	ID            uuid.UUID   `json:"id"`
	SessionID     uuid.UUID   `json:"session_id"`
	FromTeamID    uuid.UUID   `json:"from_team_id"`
	ToTeamID      uuid.UUID   `json:"to_team_id"`
	Status        TradeStatus `json:"status"`
	FromTeamValue float64     `json:"from_team_value"`
	ToTeamValue   float64     `json:"to_team_value"`
	ValueDiff     float64     `json:"value_diff"` // signed, from_team_value - to_team_value
	ProposedAt    time.Time   `json:"proposed_at"`
	RespondedAt   *time.Time  `json:"responded_at,omitempty"`
}

// TradeDetail is one pick changing hands within a Trade. (trade_id, pick_id)
// is unique; Value is the chart-derived snapshot at proposal time.
type TradeDetail struct {
	ID      uuid.UUID `json:"id"`
	TradeID uuid.UUID `json:"trade_id"`
	PickID  uuid.UUID `json:"pick_id"`
	Side    TradeSide `json:"side"`
	Value   float64   `json:"value"`
}
