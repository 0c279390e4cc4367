package gateway

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/draftsim/engine/go/internal/draft/events"
)

type staticNames struct {
	team   string
	player string
}

func (s staticNames) TeamName(uuid.UUID) string       { return s.team }
func (s staticNames) PlayerName(int, uuid.UUID) string { return s.player }

func TestTranslatePickMadeEnrichesNames(t *testing.T) {
	sessionID, pickID, teamID, playerID := uuid.New(), uuid.New(), uuid.New(), uuid.New()
	payload, _ := json.Marshal(events.PickMadePayload{
		SessionID: sessionID.String(), PickID: pickID.String(), TeamID: teamID.String(),
		PlayerID: playerID.String(), Round: 1, PickInRound: 3, MadeAt: time.Now(),
	})

	out, err := translate(sessionID, events.PickMade, payload, staticNames{team: "Jets", player: "Prospect"}, 2026)
	if err != nil {
		t.Fatalf("translate: %v", err)
	}

	var msg pickMadeMessage
	if err := json.Unmarshal(out, &msg); err != nil {
		t.Fatalf("unmarshal result: %v", err)
	}
	if msg.Type != "pick_made" || msg.TeamName != "Jets" || msg.PlayerName != "Prospect" {
		t.Fatalf("got %+v", msg)
	}
	if msg.PickID != pickID || msg.TeamID != teamID || msg.PlayerID != playerID {
		t.Fatalf("ids not carried through: %+v", msg)
	}
}

func TestTranslatePickMadeWithoutResolver(t *testing.T) {
	sessionID, pickID, teamID, playerID := uuid.New(), uuid.New(), uuid.New(), uuid.New()
	payload, _ := json.Marshal(events.PickMadePayload{
		SessionID: sessionID.String(), PickID: pickID.String(), TeamID: teamID.String(), PlayerID: playerID.String(),
	})

	out, err := translate(sessionID, events.PickMade, payload, nil, 2026)
	if err != nil {
		t.Fatalf("translate: %v", err)
	}
	var msg pickMadeMessage
	if err := json.Unmarshal(out, &msg); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if msg.TeamName != "" || msg.PlayerName != "" {
		t.Fatalf("expected empty names with nil resolver, got %+v", msg)
	}
}

func TestTranslateClockUpdate(t *testing.T) {
	sessionID := uuid.New()
	payload, _ := json.Marshal(events.ClockUpdatePayload{SessionID: sessionID.String(), RemainingSeconds: 17})

	out, err := translate(sessionID, events.ClockUpdate, payload, nil, 0)
	if err != nil {
		t.Fatalf("translate: %v", err)
	}
	var msg clockUpdateMessage
	if err := json.Unmarshal(out, &msg); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if msg.Type != "clock_update" || msg.RemainingSeconds != 17 {
		t.Fatalf("got %+v", msg)
	}
}

func TestTranslateSessionLifecycleEventsBecomeDraftStatus(t *testing.T) {
	sessionID := uuid.New()
	for _, et := range []events.Type{events.SessionCreated, events.SessionStarted, events.SessionPaused, events.SessionResumed, events.SessionCompleted} {
		out, err := translate(sessionID, et, []byte(`{}`), nil, 0)
		if err != nil {
			t.Fatalf("translate %s: %v", et, err)
		}
		var msg draftStatusMessage
		if err := json.Unmarshal(out, &msg); err != nil {
			t.Fatalf("unmarshal %s: %v", et, err)
		}
		if msg.Type != "draft_status" || msg.Status != string(et) {
			t.Fatalf("%s -> %+v", et, msg)
		}
	}
}

func TestTranslateTradeExecutedAndRejected(t *testing.T) {
	sessionID, tradeID := uuid.New(), uuid.New()
	payload, _ := json.Marshal(map[string]string{"trade_id": tradeID.String()})

	for et, wantType := range map[events.Type]string{events.TradeExecuted: "trade_executed", events.TradeRejected: "trade_rejected"} {
		out, err := translate(sessionID, et, payload, nil, 0)
		if err != nil {
			t.Fatalf("translate %s: %v", et, err)
		}
		var msg tradeResolvedMessage
		if err := json.Unmarshal(out, &msg); err != nil {
			t.Fatalf("unmarshal %s: %v", et, err)
		}
		if msg.Type != wantType || msg.TradeID != tradeID {
			t.Fatalf("%s -> %+v", et, msg)
		}
	}
}

func TestTranslateUnrecognizedEventType(t *testing.T) {
	if _, err := translate(uuid.New(), events.Type("Bogus"), []byte(`{}`), nil, 0); err == nil {
		t.Fatal("expected error for unrecognized event type")
	}
}

func TestTranslatePickMadeBadPayload(t *testing.T) {
	if _, err := translate(uuid.New(), events.PickMade, []byte(`not json`), nil, 0); err == nil {
		t.Fatal("expected unmarshal error to propagate")
	}
}
