package lineup

import "context"

// Repository exposes slot assignment persistence operations.
type Repository interface {
	ListByTeam(ctx context.Context, leagueID, teamID string) ([]SlotAssignment, error)
	Upsert(ctx context.Context, assignment SlotAssignment) error
	Delete(ctx context.Context, leagueID, teamID, playerID string) (bool, error)
}
