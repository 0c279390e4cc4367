package pickboard

import "github.com/google/uuid"

// SimpleBoardSpec describes a fixed rounds x picks_per_round grid, the
// Initialize(Simple) mode of spec.md §4.1.
type SimpleBoardSpec struct {
	DraftID       uuid.UUID
	Rounds        int
	PicksPerRound int
	TeamOrder     []uuid.UUID
}

// RealisticPickEntry is one caller-supplied row of an explicit board, the
// Initialize(Realistic) mode. OriginalTeamID defaults to TeamID when nil.
type RealisticPickEntry struct {
	Round          int
	PickInRound    int
	OverallPick    int
	TeamID         uuid.UUID
	OriginalTeamID *uuid.UUID
	IsCompensatory bool
	Note           *string
}

// RealisticBoardSpec is the full explicit-entry board for a draft.
type RealisticBoardSpec struct {
	DraftID uuid.UUID
	Entries []RealisticPickEntry
}

// OwnershipUpdate is one (pick_id, new_team) pair in a TransferOwnership
// batch.
type OwnershipUpdate struct {
	PickID    uuid.UUID
	NewTeamID uuid.UUID
}

// Slot is an atomically-claimed, still-open pick slot handed to an
// auto-picker.
type Slot struct {
	PickID        uuid.UUID
	DraftID       uuid.UUID
	OverallPick   int
	CurrentTeamID uuid.UUID
}
