package trade

import "github.com/google/uuid"

// ProposeRequest is the input to Propose, spec.md §4.3.
type ProposeRequest struct {
	SessionID   uuid.UUID
	FromTeamID  uuid.UUID
	ToTeamID    uuid.UUID
	FromPickIDs []uuid.UUID
	ToPickIDs   []uuid.UUID
}
