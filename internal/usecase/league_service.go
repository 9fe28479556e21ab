package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/addthemup/hoopgeek-sub001/internal/domain/league"
	"github.com/addthemup/hoopgeek-sub001/internal/domain/team"
	"github.com/addthemup/hoopgeek-sub001/internal/platform/logging"
)

type LeagueService struct {
	leagueRepo league.Repository
	teamRepo   team.Repository
	logger     *logging.Logger
}

func NewLeagueService(leagueRepo league.Repository, teamRepo team.Repository, logger *logging.Logger) *LeagueService {
	if logger == nil {
		logger = logging.Default()
	}
	return &LeagueService{
		leagueRepo: leagueRepo,
		teamRepo:   teamRepo,
		logger:     logger,
	}
}

func (s *LeagueService) ListLeagues(ctx context.Context) ([]league.League, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.ListLeagues")
	defer span.End()

	leagues, err := s.leagueRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list leagues: %w", err)
	}

	return leagues, nil
}

func (s *LeagueService) GetLeague(ctx context.Context, leagueID string) (league.League, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.GetLeague")
	defer span.End()

	leagueID = strings.TrimSpace(leagueID)
	if leagueID == "" {
		return league.League{}, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}

	item, exists, err := s.leagueRepo.GetByID(ctx, leagueID)
	if err != nil {
		return league.League{}, fmt.Errorf("get league: %w", err)
	}
	if !exists {
		return league.League{}, fmt.Errorf("%w: league=%s", ErrNotFound, leagueID)
	}

	s.warnOversubscribedUnits(ctx, item)

	return item, nil
}

func (s *LeagueService) ListTeamsByLeague(ctx context.Context, leagueID string) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.ListTeamsByLeague")
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

	teams, err := s.teamRepo.ListByLeague(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("list teams by league: %w", err)
	}

	return teams, nil
}

// Unit configurations asking for more position slots than the unit can hold
// are tolerated, but they make some slots unfillable on the board.
func (s *LeagueService) warnOversubscribedUnits(ctx context.Context, item league.League) {
	for unit, cfg := range item.Units {
		sum := cfg.RequirementSum()
		if sum > 0 && cfg.MaxPlayers > 0 && sum > cfg.MaxPlayers {
			s.logger.WarnContext(ctx, "unit requirements exceed capacity",
				"league_id", item.ID,
				"unit", string(unit),
				"requirement_sum", sum,
				"max_players", cfg.MaxPlayers,
			)
		}
	}
}
