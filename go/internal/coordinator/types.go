package coordinator

import (
	"context"

	"github.com/google/uuid"

	"github.com/draftsim/engine/go/internal/models"
	"github.com/draftsim/engine/go/internal/session"
	"github.com/draftsim/engine/go/internal/trade"
)

type commandKind int

const (
	cmdCreate commandKind = iota
	cmdStart
	cmdPause
	cmdResume
	cmdMakePick
	cmdAdvancePick
	cmdAutoPickRun
	cmdProposeTrade
	cmdAcceptTrade
	cmdRejectTrade
)

// CreateArgs is the argument to the create() command.
type CreateArgs struct {
	Spec session.CreateSessionRequest
}

// MakePickArgs is the argument to the make_pick() command.
type MakePickArgs struct {
	PickID   uuid.UUID
	PlayerID uuid.UUID
}

// ProposeTradeArgs is the argument to the propose_trade() command.
type ProposeTradeArgs struct {
	Req trade.ProposeRequest
}

// AcceptTradeArgs is the argument to the accept_trade() command.
type AcceptTradeArgs struct {
	TradeID       uuid.UUID
	AcceptingTeam uuid.UUID
}

// RejectTradeArgs is the argument to the reject_trade() command.
type RejectTradeArgs struct {
	TradeID       uuid.UUID
	RejectingTeam uuid.UUID
}

// Result is every command's return value: a session snapshot, or a trade
// snapshot for the three trade commands, plus any error (spec.md §4.6 —
// "each returns either a new session snapshot or a typed error").
type Result struct {
	Session *models.Session
	Trade   *models.Trade
	Err     error
}

type command struct {
	ctx   context.Context
	kind  commandKind
	args  any
	reply chan Result
}
