package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/draftsim/engine/go/internal/autopick"
	"github.com/draftsim/engine/go/internal/broadcast"
	"github.com/draftsim/engine/go/internal/catalog"
	"github.com/draftsim/engine/go/internal/coordinator"
	draftdb "github.com/draftsim/engine/go/internal/draft/db"
	draftref "github.com/draftsim/engine/go/internal/draft/draft"
	draftrefdb "github.com/draftsim/engine/go/internal/draft/draft/db"
	"github.com/draftsim/engine/go/internal/draft/gateway"
	"github.com/draftsim/engine/go/internal/draft/outbox"
	"github.com/draftsim/engine/go/internal/pickboard"
	pbdb "github.com/draftsim/engine/go/internal/pickboard/db"
	"github.com/draftsim/engine/go/internal/session"
	sessdb "github.com/draftsim/engine/go/internal/session/db"
	"github.com/draftsim/engine/go/internal/teams"
	teamsdb "github.com/draftsim/engine/go/internal/teams/db"
	"github.com/draftsim/engine/go/internal/trade"
)

// Services bundles every wired App plus the components (bus, coordinator,
// gateway) built on top of them.
type Services struct {
	Drafts    *draftref.App
	PickBoard *pickboard.App
	Sessions  *session.App
	Trades    *trade.App
	Events    *outbox.App
	Teams     *teams.App
	Catalog   *catalog.App

	Bus       *broadcast.Bus
	Manager   *coordinator.Manager
	Gateway   *gateway.Server
	ConnMgr   *gateway.ConnectionManager
	WSHandler *gateway.WebSocketHandler

	outboxWorker    *outbox.Worker
	outboxPublisher *outbox.JetStreamPublisher
}

// draftYearLookup adapts session+draft reference lookups to the
// gateway's DraftYearLookup, used to scope pick_made player-name
// enrichment to the right catalog draft year.
type draftYearLookup struct {
	sessions *session.App
	drafts   *draftref.App
}

func (d *draftYearLookup) DraftYearForSession(sessionID uuid.UUID) (int, error) {
	ctx := context.Background()
	sess, err := d.sessions.GetSession(ctx, sessionID)
	if err != nil {
		return 0, err
	}
	dr, err := d.drafts.GetDraft(ctx, sess.DraftID)
	if err != nil {
		return 0, err
	}
	return dr.Year, nil
}

// setupServices wires the dependency injection chain: database layer ->
// repository layer -> app layer -> coordinator -> gateway, following the
// teacher's layering (database -> repository -> app -> service) with the
// connect-rpc service layer replaced by the REST/WS gateway.
func setupServices(sqlDB *sql.DB, pool *pgxpool.Pool, cfg *Config) (*Services, error) {
	// Draft reference metadata
	draftQueries := draftrefdb.New(sqlDB)
	draftRepo := draftref.NewRepository(draftQueries)
	draftApp := draftref.NewApp(draftRepo)

	// Pick Board
	pickQueries := pbdb.New(sqlDB)
	pickRepo := pickboard.NewSQLRepository(pickQueries, sqlDB)
	pickApp := pickboard.NewApp(pickRepo)

	// Outbox (doubles as the session event log, spec.md §12)
	outboxQueries := draftdb.New(sqlDB)
	outboxRepo := outbox.NewRepository(outboxQueries)
	outboxApp := outbox.NewApp(outboxRepo)

	// Broadcast Bus + Relay: every session event both persists to the
	// outbox and fans out live to current WS subscribers in one call.
	bus := broadcast.NewBus()
	relay := broadcast.NewRelay(outboxApp, bus)

	// Session State Store
	sessQueries := sessdb.New(sqlDB)
	sessRepo := session.NewSQLRepository(sessQueries)
	sessApp := session.NewApp(sessRepo, relay)

	// Catalog (pgx)
	catRepo := catalog.NewSQLRepository(pool)
	catApp := catalog.NewApp(catRepo)

	// Teams registry (pgx)
	teamsQueries := teamsdb.New(pool)
	teamsRepo := teams.NewRepository(teamsQueries)
	teamsApp := teams.NewApp(teamsRepo)

	// Trade Engine
	tradeRepo := trade.NewSQLRepository(sqlDB)
	tradeApp := trade.NewApp(tradeRepo, pickApp, sessApp)

	// Auto-Pick Engine
	autopickApp := autopick.NewApp(pickApp, sessApp, draftApp, catApp)

	// Session Coordinator: one actor per active session serializing every
	// mutating command (spec.md §4.6).
	manager := coordinator.NewManager(sessApp, pickApp, tradeApp, autopickApp, draftApp, bus, clockwork.NewRealClock())

	// Gateway: REST surface + WebSocket Real-Time Stream
	names := gateway.NewNameResolver(teamsApp, catApp)
	years := &draftYearLookup{sessions: sessApp, drafts: draftApp}
	connMgr := gateway.NewConnectionManager(gateway.DefaultConnectionConfig(), bus, names, years)
	wsHandler := gateway.NewWebSocketHandler(connMgr)
	srv := &gateway.Server{
		Drafts:    draftApp,
		PickBoard: pickApp,
		Sessions:  sessApp,
		Trades:    tradeApp,
		Events:    outboxApp,
		Manager:   manager,
	}

	// Outbox worker: relays persisted-but-unsent events to JetStream for
	// durable external consumers (spec.md §12). The Broadcast Bus above
	// already delivers live to in-process WS subscribers regardless of
	// whether NATS is reachable, so a JetStream outage degrades external
	// fan-out only, not the Real-Time Stream.
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	outboxCfg := outbox.DefaultConfig()
	if cfg.Outbox.PollIntervalSeconds > 0 {
		outboxCfg.PollInterval = time.Duration(cfg.Outbox.PollIntervalSeconds) * time.Second
	}
	if cfg.Outbox.BatchSize > 0 {
		outboxCfg.BatchSize = int32(cfg.Outbox.BatchSize)
	}
	if cfg.Outbox.MaxRetries > 0 {
		outboxCfg.MaxRetries = cfg.Outbox.MaxRetries
	}

	var worker *outbox.Worker
	publisher, err := outbox.NewJetStreamPublisher(outbox.DefaultJetStreamConfig(), logger)
	if err != nil {
		log.Warn().Err(err).Msg("JetStream unavailable; outbox relay to external consumers disabled")
	} else {
		worker = outbox.NewWorker(sqlDB, publisher, outboxCfg, logger)
	}

	return &Services{
		Drafts:          draftApp,
		PickBoard:       pickApp,
		Sessions:        sessApp,
		Trades:          tradeApp,
		Events:          outboxApp,
		Teams:           teamsApp,
		Catalog:         catApp,
		Bus:             bus,
		Manager:         manager,
		Gateway:         srv,
		ConnMgr:         connMgr,
		WSHandler:       wsHandler,
		outboxWorker:    worker,
		outboxPublisher: publisher,
	}, nil
}
