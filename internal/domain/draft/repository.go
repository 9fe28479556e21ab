package draft

import "context"

// Repository exposes draft order persistence operations. ReplaceForLeague
// swaps the whole order out atomically: implementations must never leave a
// league without picks because a delete landed and the insert did not.
type Repository interface {
	ListByLeague(ctx context.Context, leagueID string) ([]Pick, error)
	ReplaceForLeague(ctx context.Context, leagueID string, picks []Pick) error
	MarkCompleted(ctx context.Context, leagueID string, pickNumber int) (bool, error)
}
