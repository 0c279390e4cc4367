package gateway

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/draftsim/engine/go/internal/draft/events"
)

// ClientMessage is what a subscriber may send us (spec.md §6.2).
type ClientMessage struct {
	Type      string     `json:"type"`
	SessionID *uuid.UUID `json:"session_id,omitempty"`
}

// subscribedMessage acknowledges a successful subscribe.
type subscribedMessage struct {
	Type      string    `json:"type"`
	SessionID uuid.UUID `json:"session_id"`
}

// pickMadeMessage mirrors spec.md §6.2's pick_made shape, enriched with
// display names the persisted PickMadePayload doesn't carry.
type pickMadeMessage struct {
	Type       string    `json:"type"`
	SessionID  uuid.UUID `json:"session_id"`
	PickID     uuid.UUID `json:"pick_id"`
	TeamID     uuid.UUID `json:"team_id"`
	TeamName   string    `json:"team_name"`
	PlayerID   uuid.UUID `json:"player_id"`
	PlayerName string    `json:"player_name"`
	Round      int       `json:"round"`
	PickNumber int       `json:"pick_number"`
}

type clockUpdateMessage struct {
	Type             string    `json:"type"`
	SessionID        uuid.UUID `json:"session_id"`
	RemainingSeconds int       `json:"remaining_seconds"`
}

type draftStatusMessage struct {
	Type      string    `json:"type"`
	SessionID uuid.UUID `json:"session_id"`
	Status    string    `json:"status"`
}

type tradeProposedMessage struct {
	Type       string    `json:"type"`
	SessionID  uuid.UUID `json:"session_id"`
	TradeID    uuid.UUID `json:"trade_id"`
	FromTeamID uuid.UUID `json:"from_team_id"`
	ToTeamID   uuid.UUID `json:"to_team_id"`
}

type tradeResolvedMessage struct {
	Type      string    `json:"type"`
	SessionID uuid.UUID `json:"session_id"`
	TradeID   uuid.UUID `json:"trade_id"`
}

type errorMessage struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type pongMessage struct {
	Type string `json:"type"`
}

func marshalSubscribed(sessionID uuid.UUID) []byte {
	b, _ := json.Marshal(subscribedMessage{Type: "subscribed", SessionID: sessionID})
	return b
}

func marshalPong() []byte {
	b, _ := json.Marshal(pongMessage{Type: "pong"})
	return b
}

func marshalError(format string, args ...any) []byte {
	b, _ := json.Marshal(errorMessage{Type: "error", Message: fmt.Sprintf(format, args...)})
	return b
}

// translate converts one broadcast.Event into the wire message defined by
// spec.md §6.2, enriching PickMade with names resolved by names. A
// status-only event (SessionCreated, SessionStarted, SessionPaused,
// SessionResumed, SessionCompleted) is surfaced as a draft_status message instead of being dropped, so subscribers always see
// a lifecycle transition even though §6.2 only names the terminal
// "draft_status" tag.
func translate(sessionID uuid.UUID, eventType events.Type, payload []byte, names NameResolver, draftYear int) ([]byte, error) {
	switch eventType {
	case events.PickMade:
		var p events.PickMadePayload
		if err := json.Unmarshal(payload, &p); err != nil {
			return nil, fmt.Errorf("unmarshal PickMade payload: %w", err)
		}
		teamID, err := uuid.Parse(p.TeamID)
		if err != nil {
			return nil, fmt.Errorf("parse team_id: %w", err)
		}
		playerID, err := uuid.Parse(p.PlayerID)
		if err != nil {
			return nil, fmt.Errorf("parse player_id: %w", err)
		}
		pickID, err := uuid.Parse(p.PickID)
		if err != nil {
			return nil, fmt.Errorf("parse pick_id: %w", err)
		}

		msg := pickMadeMessage{
			Type:       "pick_made",
			SessionID:  sessionID,
			PickID:     pickID,
			TeamID:     teamID,
			PlayerID:   playerID,
			Round:      p.Round,
			PickNumber: p.PickInRound,
		}
		if names != nil {
			msg.TeamName = names.TeamName(teamID)
			msg.PlayerName = names.PlayerName(draftYear, playerID)
		}
		return json.Marshal(msg)

	case events.ClockUpdate:
		var p events.ClockUpdatePayload
		if err := json.Unmarshal(payload, &p); err != nil {
			return nil, fmt.Errorf("unmarshal ClockUpdate payload: %w", err)
		}
		return json.Marshal(clockUpdateMessage{Type: "clock_update", SessionID: sessionID, RemainingSeconds: p.RemainingSeconds})

	case events.TradeProposed:
		var p events.TradeProposedPayload
		if err := json.Unmarshal(payload, &p); err != nil {
			return nil, fmt.Errorf("unmarshal TradeProposed payload: %w", err)
		}
		fromID, err := uuid.Parse(p.FromTeamID)
		if err != nil {
			return nil, fmt.Errorf("parse from_team_id: %w", err)
		}
		toID, err := uuid.Parse(p.ToTeamID)
		if err != nil {
			return nil, fmt.Errorf("parse to_team_id: %w", err)
		}
		tradeID, err := uuid.Parse(p.TradeID)
		if err != nil {
			return nil, fmt.Errorf("parse trade_id: %w", err)
		}
		return json.Marshal(tradeProposedMessage{Type: "trade_proposed", SessionID: sessionID, TradeID: tradeID, FromTeamID: fromID, ToTeamID: toID})

	case events.TradeExecuted:
		tradeID, err := parseTradeID(payload)
		if err != nil {
			return nil, err
		}
		return json.Marshal(tradeResolvedMessage{Type: "trade_executed", SessionID: sessionID, TradeID: tradeID})

	case events.TradeRejected:
		tradeID, err := parseTradeID(payload)
		if err != nil {
			return nil, err
		}
		return json.Marshal(tradeResolvedMessage{Type: "trade_rejected", SessionID: sessionID, TradeID: tradeID})

	case events.SessionCreated, events.SessionStarted, events.SessionPaused, events.SessionResumed, events.SessionCompleted:
		return json.Marshal(draftStatusMessage{Type: "draft_status", SessionID: sessionID, Status: string(eventType)})

	default:
		return nil, fmt.Errorf("unrecognized event type: %s", eventType)
	}
}

func parseTradeID(payload []byte) (uuid.UUID, error) {
	var p struct {
		TradeID string `json:"trade_id"`
	}
	if err := json.Unmarshal(payload, &p); err != nil {
		return uuid.Nil, fmt.Errorf("unmarshal trade payload: %w", err)
	}
	tradeID, err := uuid.Parse(p.TradeID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("parse trade_id: %w", err)
	}
	return tradeID, nil
}
