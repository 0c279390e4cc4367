package coordinator

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/draftsim/engine/go/internal/session"
	"github.com/draftsim/engine/go/internal/trade"
)

// Manager owns one SessionActor per active session, spawning actors
// lazily and routing every command through the actor for that session —
// this is what gives the coordinator its per-session serialization
// (spec.md §4.6).
type Manager struct {
	mu     sync.Mutex
	actors map[uuid.UUID]*SessionActor

	sessions SessionStore
	picks    PickBoard
	trades   TradeEngine
	autopick AutoPickEngine
	drafts   DraftLookup
	bus      Bus
	clock    clockwork.Clock
}

func NewManager(sessions SessionStore, picks PickBoard, trades TradeEngine, autopick AutoPickEngine, drafts DraftLookup, bus Bus, clock clockwork.Clock) *Manager {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Manager{
		actors:   make(map[uuid.UUID]*SessionActor),
		sessions: sessions,
		picks:    picks,
		trades:   trades,
		autopick: autopick,
		drafts:   drafts,
		bus:      bus,
		clock:    clock,
	}
}

func (m *Manager) actorFor(sessionID uuid.UUID) *SessionActor {
	m.mu.Lock()
	defer m.mu.Unlock()

	if a, ok := m.actors[sessionID]; ok {
		return a
	}
	deps := Deps{
		Sessions: m.sessions,
		Picks:    m.picks,
		Trades:   m.trades,
		AutoPick: m.autopick,
		Drafts:   m.drafts,
		Bus:      m.bus,
		Clock:    m.clock,
	}
	a := newSessionActor(sessionID, deps)
	m.actors[sessionID] = a
	return a
}

// Release stops a session's actor and frees it, for use once a session is
// Completed and no further commands are expected.
func (m *Manager) Release(sessionID uuid.UUID) {
	m.mu.Lock()
	a, ok := m.actors[sessionID]
	delete(m.actors, sessionID)
	m.mu.Unlock()

	if ok {
		a.Stop()
	}
}

// Create calls CreateSession directly rather than through an actor: a
// session has no actor until its ID exists, and Create starts none (one is
// spawned on the session's first later command).
func (m *Manager) Create(ctx context.Context, spec session.CreateSessionRequest) Result {
	sess, err := m.sessions.CreateSession(ctx, spec)
	if err != nil {
		return Result{Err: err}
	}
	return Result{Session: sess}
}

func (m *Manager) Start(ctx context.Context, sessionID uuid.UUID) Result {
	return m.actorFor(sessionID).dispatch(ctx, cmdStart, nil)
}

func (m *Manager) Pause(ctx context.Context, sessionID uuid.UUID) Result {
	return m.actorFor(sessionID).dispatch(ctx, cmdPause, nil)
}

func (m *Manager) Resume(ctx context.Context, sessionID uuid.UUID) Result {
	return m.actorFor(sessionID).dispatch(ctx, cmdResume, nil)
}

func (m *Manager) MakePick(ctx context.Context, sessionID, pickID, playerID uuid.UUID) Result {
	return m.actorFor(sessionID).dispatch(ctx, cmdMakePick, MakePickArgs{PickID: pickID, PlayerID: playerID})
}

func (m *Manager) AdvancePick(ctx context.Context, sessionID uuid.UUID) Result {
	return m.actorFor(sessionID).dispatch(ctx, cmdAdvancePick, nil)
}

func (m *Manager) AutoPickRun(ctx context.Context, sessionID uuid.UUID) Result {
	return m.actorFor(sessionID).dispatch(ctx, cmdAutoPickRun, nil)
}

func (m *Manager) ProposeTrade(ctx context.Context, sessionID uuid.UUID, req trade.ProposeRequest) Result {
	return m.actorFor(sessionID).dispatch(ctx, cmdProposeTrade, ProposeTradeArgs{Req: req})
}

func (m *Manager) AcceptTrade(ctx context.Context, sessionID, tradeID, acceptingTeam uuid.UUID) Result {
	return m.actorFor(sessionID).dispatch(ctx, cmdAcceptTrade, AcceptTradeArgs{TradeID: tradeID, AcceptingTeam: acceptingTeam})
}

func (m *Manager) RejectTrade(ctx context.Context, sessionID, tradeID, rejectingTeam uuid.UUID) Result {
	return m.actorFor(sessionID).dispatch(ctx, cmdRejectTrade, RejectTradeArgs{TradeID: tradeID, RejectingTeam: rejectingTeam})
}

// ActiveSessionCount reports how many sessions currently have a live
// actor, for diagnostics.
func (m *Manager) ActiveSessionCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.actors)
}
