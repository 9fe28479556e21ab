package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/addthemup/hoopgeek-sub001/internal/domain/league"
	"github.com/addthemup/hoopgeek-sub001/internal/domain/player"
	"github.com/addthemup/hoopgeek-sub001/internal/platform/logging"
)

type PlayerService struct {
	leagueRepo league.Repository
	playerRepo player.Repository
	logger     *logging.Logger
}

func NewPlayerService(leagueRepo league.Repository, playerRepo player.Repository, logger *logging.Logger) *PlayerService {
	if logger == nil {
		logger = logging.Default()
	}
	return &PlayerService{
		leagueRepo: leagueRepo,
		playerRepo: playerRepo,
		logger:     logger,
	}
}

func (s *PlayerService) ListPlayersByLeague(ctx context.Context, leagueID string) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.ListPlayersByLeague")
	defer span.End()

	leagueID = strings.TrimSpace(leagueID)
	if leagueID == "" {
		return nil, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}

	_, exists, err := s.leagueRepo.GetByID(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("get league: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: league=%s", ErrNotFound, leagueID)
	}

	players, err := s.playerRepo.ListByLeague(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("list players by league: %w", err)
	}

	for i := range players {
		players[i] = s.withNormalizedPosition(ctx, players[i])
	}

	return players, nil
}

func (s *PlayerService) GetPlayerByLeagueAndID(ctx context.Context, leagueID, playerID string) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.GetPlayerByLeagueAndID")
	defer span.End()

	leagueID = strings.TrimSpace(leagueID)
	playerID = strings.TrimSpace(playerID)
	if leagueID == "" {
		return player.Player{}, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}
	if playerID == "" {
		return player.Player{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	item, exists, err := s.playerRepo.GetByID(ctx, leagueID, playerID)
	if err != nil {
		return player.Player{}, fmt.Errorf("get player by id: %w", err)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: player=%s league=%s", ErrNotFound, playerID, leagueID)
	}

	return s.withNormalizedPosition(ctx, item), nil
}

// withNormalizedPosition backfills the primary code from the raw listing.
// Unrecognized listings degrade to forward so the player stays usable on the
// board, with a warning so the bad source data gets noticed.
func (s *PlayerService) withNormalizedPosition(ctx context.Context, item player.Player) player.Player {
	if item.Position != "" {
		return item
	}

	primary, recognized := player.Normalize(item.RawPosition)
	if !recognized {
		s.logger.WarnContext(ctx, "unrecognized player position",
			"league_id", item.LeagueID,
			"player_id", item.ID,
			"raw_position", item.RawPosition,
			"assumed", string(primary),
		)
	}
	item.Position = primary

	return item
}
