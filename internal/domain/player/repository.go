package player

import "context"

// Repository describes player pool persistence needs from use cases.
type Repository interface {
	ListByLeague(ctx context.Context, leagueID string) ([]Player, error)
	GetByID(ctx context.Context, leagueID, playerID string) (Player, bool, error)
}
