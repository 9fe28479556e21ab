package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/addthemup/hoopgeek-sub001/internal/domain/league"
	"github.com/addthemup/hoopgeek-sub001/internal/domain/lineup"
	"github.com/addthemup/hoopgeek-sub001/internal/domain/player"
	"github.com/addthemup/hoopgeek-sub001/internal/domain/team"
	"github.com/addthemup/hoopgeek-sub001/internal/platform/logging"
)

type AssignPlayerInput struct {
	LeagueID string
	TeamID   string
	PlayerID string
	Unit     string
	X        float64
	Y        float64
}

// UnitBoard is one unit's view on the court board: its occupants, the slot
// list the league asks for, and which of those slots read as filled.
type UnitBoard struct {
	Unit         league.Unit
	MaxPlayers   int
	Multiplier   float64
	Requirements []player.Position
	Filled       []bool
	Assignments  []lineup.SlotAssignment
}

type TeamBoard struct {
	LeagueID string
	TeamID   string
	Units    []UnitBoard
}

type LineupService struct {
	leagueRepo league.Repository
	teamRepo   team.Repository
	playerRepo player.Repository
	lineupRepo lineup.Repository
	logger     *logging.Logger
	now        func() time.Time
}

func NewLineupService(
	leagueRepo league.Repository,
	teamRepo team.Repository,
	playerRepo player.Repository,
	lineupRepo lineup.Repository,
	logger *logging.Logger,
) *LineupService {
	if logger == nil {
		logger = logging.Default()
	}
	return &LineupService{
		leagueRepo: leagueRepo,
		teamRepo:   teamRepo,
		playerRepo: playerRepo,
		lineupRepo: lineupRepo,
		logger:     logger,
		now:        time.Now,
	}
}

func (s *LineupService) GetBoard(ctx context.Context, leagueID, teamID string) (TeamBoard, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LineupService.GetBoard")
	defer span.End()

	item, assignments, err := s.loadTeamContext(ctx, leagueID, teamID)
	if err != nil {
		return TeamBoard{}, err
	}

	board := TeamBoard{
		LeagueID: item.league.ID,
		TeamID:   item.team.ID,
		Units:    make([]UnitBoard, 0, 3),
	}
	for _, unit := range []league.Unit{league.UnitStarters, league.UnitRotation, league.UnitBench} {
		cfg := item.league.UnitConfig(unit)
		requirements := lineup.RequirementList(cfg)

		filled := make([]bool, len(requirements))
		for i, pos := range requirements {
			filled[i] = lineup.PositionFilled(pos, unit, assignments)
		}

		unitAssignments := make([]lineup.SlotAssignment, 0)
		for _, a := range assignments {
			if a.Unit == unit {
				unitAssignments = append(unitAssignments, a)
			}
		}

		board.Units = append(board.Units, UnitBoard{
			Unit:         unit,
			MaxPlayers:   cfg.MaxPlayers,
			Multiplier:   cfg.Multiplier,
			Requirements: requirements,
			Filled:       filled,
			Assignments:  unitAssignments,
		})
	}

	return board, nil
}

func (s *LineupService) ListAssignments(ctx context.Context, leagueID, teamID string) ([]lineup.SlotAssignment, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LineupService.ListAssignments")
	defer span.End()

	_, assignments, err := s.loadTeamContext(ctx, leagueID, teamID)
	if err != nil {
		return nil, err
	}

	return assignments, nil
}

// AssignPlayer places a player onto a unit after running the eligibility
// checks. Moving a player between units goes through the same path; the
// repository upsert replaces the previous slot.
func (s *LineupService) AssignPlayer(ctx context.Context, input AssignPlayerInput) (lineup.SlotAssignment, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LineupService.AssignPlayer")
	defer span.End()

	return s.place(ctx, input, false)
}

// RepositionPlayer moves an already-assigned player, either to new
// coordinates inside its unit or into another unit. Unknown players are
// refused so a PUT cannot silently create an assignment.
func (s *LineupService) RepositionPlayer(ctx context.Context, input AssignPlayerInput) (lineup.SlotAssignment, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LineupService.RepositionPlayer")
	defer span.End()

	return s.place(ctx, input, true)
}

func (s *LineupService) place(ctx context.Context, input AssignPlayerInput, requireExisting bool) (lineup.SlotAssignment, error) {
	input.LeagueID = strings.TrimSpace(input.LeagueID)
	input.TeamID = strings.TrimSpace(input.TeamID)
	input.PlayerID = strings.TrimSpace(input.PlayerID)

	if input.PlayerID == "" {
		return lineup.SlotAssignment{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}
	unit, ok := league.ParseUnit(strings.TrimSpace(input.Unit))
	if !ok {
		return lineup.SlotAssignment{}, fmt.Errorf("%w: unknown lineup unit %q", ErrInvalidInput, input.Unit)
	}
	if input.X < 0 || input.X > 100 || input.Y < 0 || input.Y > 100 {
		return lineup.SlotAssignment{}, fmt.Errorf("%w: coordinates must be within 0-100", ErrInvalidInput)
	}

	item, assignments, err := s.loadTeamContext(ctx, input.LeagueID, input.TeamID)
	if err != nil {
		return lineup.SlotAssignment{}, err
	}

	if requireExisting {
		found := false
		for _, a := range assignments {
			if a.PlayerID == input.PlayerID {
				found = true
				break
			}
		}
		if !found {
			return lineup.SlotAssignment{}, fmt.Errorf("%w: assignment player=%s team=%s", ErrNotFound, input.PlayerID, input.TeamID)
		}
	}

	p, exists, err := s.playerRepo.GetByID(ctx, input.LeagueID, input.PlayerID)
	if err != nil {
		return lineup.SlotAssignment{}, fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return lineup.SlotAssignment{}, fmt.Errorf("%w: player=%s league=%s", ErrNotFound, input.PlayerID, input.LeagueID)
	}

	if p.Position == "" {
		primary, recognized := player.Normalize(p.RawPosition)
		if !recognized {
			s.logger.WarnContext(ctx, "unrecognized player position",
				"league_id", p.LeagueID,
				"player_id", p.ID,
				"raw_position", p.RawPosition,
				"assumed", string(primary),
			)
		}
		p.Position = primary
	}

	cfg := item.league.UnitConfig(unit)
	if err := lineup.Explain(p, unit, assignments, cfg); err != nil {
		return lineup.SlotAssignment{}, fmt.Errorf("place player %s into %s: %w", p.ID, unit, err)
	}

	assignment := lineup.SlotAssignment{
		LeagueID:          input.LeagueID,
		TeamID:            input.TeamID,
		PlayerID:          p.ID,
		Unit:              unit,
		X:                 input.X,
		Y:                 input.Y,
		PlayerPosition:    p.Position,
		PlayerRawPosition: p.RawPosition,
		UpdatedAt:         s.now().UTC(),
	}
	if err := assignment.Validate(); err != nil {
		return lineup.SlotAssignment{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.lineupRepo.Upsert(ctx, assignment); err != nil {
		return lineup.SlotAssignment{}, fmt.Errorf("save assignment: %w", err)
	}

	return assignment, nil
}

func (s *LineupService) UnassignPlayer(ctx context.Context, leagueID, teamID, playerID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.LineupService.UnassignPlayer")
	defer span.End()

	leagueID = strings.TrimSpace(leagueID)
	teamID = strings.TrimSpace(teamID)
	playerID = strings.TrimSpace(playerID)
	if leagueID == "" || teamID == "" || playerID == "" {
		return fmt.Errorf("%w: league id, team id and player id are required", ErrInvalidInput)
	}

	removed, err := s.lineupRepo.Delete(ctx, leagueID, teamID, playerID)
	if err != nil {
		return fmt.Errorf("delete assignment: %w", err)
	}
	if !removed {
		return fmt.Errorf("%w: assignment player=%s team=%s", ErrNotFound, playerID, teamID)
	}

	return nil
}

type teamContext struct {
	league league.League
	team   team.Team
}

func (s *LineupService) loadTeamContext(ctx context.Context, leagueID, teamID string) (teamContext, []lineup.SlotAssignment, error) {
	leagueID = strings.TrimSpace(leagueID)
	teamID = strings.TrimSpace(teamID)
	if leagueID == "" {
		return teamContext{}, nil, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}
	if teamID == "" {
		return teamContext{}, nil, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	lg, exists, err := s.leagueRepo.GetByID(ctx, leagueID)
	if err != nil {
		return teamContext{}, nil, fmt.Errorf("get league: %w", err)
	}
	if !exists {
		return teamContext{}, nil, fmt.Errorf("%w: league=%s", ErrNotFound, leagueID)
	}

	tm, exists, err := s.teamRepo.GetByID(ctx, leagueID, teamID)
	if err != nil {
		return teamContext{}, nil, fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return teamContext{}, nil, fmt.Errorf("%w: team=%s league=%s", ErrNotFound, teamID, leagueID)
	}

	assignments, err := s.lineupRepo.ListByTeam(ctx, leagueID, teamID)
	if err != nil {
		return teamContext{}, nil, fmt.Errorf("list assignments: %w", err)
	}

	return teamContext{league: lg, team: tm}, assignments, nil
}
