package session

import (
	"github.com/google/uuid"

	"github.com/draftsim/engine/go/internal/models"
)

// CreateSessionRequest is the input to CreateSession, spec.md §4.2.
type CreateSessionRequest struct {
	DraftID            uuid.UUID
	TimePerPickSeconds int
	AutoPickEnabled    bool
	ChartType          models.ChartType
	ControlledTeamIDs  []uuid.UUID
}
