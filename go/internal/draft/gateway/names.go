package gateway

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/draftsim/engine/go/internal/catalog"
	"github.com/draftsim/engine/go/internal/teams"
)

// NameResolver supplies the display names the persisted event payloads
// deliberately omit (spec.md §3 keeps Pick records to IDs; names are a
// presentation concern of the Real-Time Stream, not the durable log).
type NameResolver interface {
	TeamName(teamID uuid.UUID) string
	PlayerName(draftYear int, playerID uuid.UUID) string
}

// resolver implements NameResolver by composing the Teams app (point
// lookups, already cheap) with a per-draft-year cache built from the
// Catalog's PlayersByYear, since the Catalog exposes no point lookup by
// player ID.
type resolver struct {
	teams *teams.App
	cat   *catalog.App

	mu         sync.Mutex
	playersByY map[int]map[uuid.UUID]string
}

func NewNameResolver(teamsApp *teams.App, catalogApp *catalog.App) NameResolver {
	return &resolver{
		teams:      teamsApp,
		cat:        catalogApp,
		playersByY: make(map[int]map[uuid.UUID]string),
	}
}

func (r *resolver) TeamName(teamID uuid.UUID) string {
	team, err := r.teams.GetTeam(context.Background(), teamID)
	if err != nil {
		log.Warn().Err(err).Str("team_id", teamID.String()).Msg("name resolution: team lookup failed")
		return ""
	}
	return team.Name
}

func (r *resolver) PlayerName(draftYear int, playerID uuid.UUID) string {
	names, err := r.playerNamesForYear(draftYear)
	if err != nil {
		log.Warn().Err(err).Int("draft_year", draftYear).Msg("name resolution: player lookup failed")
		return ""
	}
	return names[playerID]
}

func (r *resolver) playerNamesForYear(draftYear int) (map[uuid.UUID]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if names, ok := r.playersByY[draftYear]; ok {
		return names, nil
	}

	players, err := r.cat.PlayersByYear(context.Background(), draftYear)
	if err != nil {
		return nil, err
	}

	names := make(map[uuid.UUID]string, len(players))
	for _, p := range players {
		names[p.ID] = p.Name
	}
	r.playersByY[draftYear] = names
	return names, nil
}
