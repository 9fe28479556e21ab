package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/addthemup/hoopgeek-sub001/internal/domain/draft"
	"github.com/addthemup/hoopgeek-sub001/internal/domain/league"
	"github.com/addthemup/hoopgeek-sub001/internal/domain/team"
	"github.com/addthemup/hoopgeek-sub001/internal/platform/logging"
)

type DraftService struct {
	leagueRepo league.Repository
	teamRepo   team.Repository
	draftRepo  draft.Repository
	logger     *logging.Logger
}

func NewDraftService(
	leagueRepo league.Repository,
	teamRepo team.Repository,
	draftRepo draft.Repository,
	logger *logging.Logger,
) *DraftService {
	if logger == nil {
		logger = logging.Default()
	}
	return &DraftService{
		leagueRepo: leagueRepo,
		teamRepo:   teamRepo,
		draftRepo:  draftRepo,
		logger:     logger,
	}
}

// GetOrder returns the league's stored draft order, generating and persisting
// it on first read so leagues created before draft day still have one.
func (s *DraftService) GetOrder(ctx context.Context, leagueID string) ([]draft.Pick, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DraftService.GetOrder")
	defer span.End()

	lg, err := s.getLeague(ctx, leagueID)
	if err != nil {
		return nil, err
	}

	picks, err := s.draftRepo.ListByLeague(ctx, lg.ID)
	if err != nil {
		return nil, fmt.Errorf("list draft picks: %w", err)
	}
	if len(picks) > 0 {
		return picks, nil
	}

	return s.regenerate(ctx, lg)
}

// GetPreview groups the stored order by round, truncated to previewRounds.
// A non-positive previewRounds falls back to the default cap.
func (s *DraftService) GetPreview(ctx context.Context, leagueID string, previewRounds int) ([]draft.RoundPicks, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DraftService.GetPreview")
	defer span.End()

	picks, err := s.GetOrder(ctx, leagueID)
	if err != nil {
		return nil, err
	}

	if previewRounds <= 0 {
		previewRounds = draft.DefaultPreviewRounds
	}

	rounds := draft.GroupByRound(picks)
	if len(rounds) > previewRounds {
		rounds = rounds[:previewRounds]
	}

	return rounds, nil
}

// RegenerateOrder discards the stored order and rebuilds it from the teams'
// current draft positions. Completed flags are reset; regeneration is meant
// for pre-draft reshuffles.
func (s *DraftService) RegenerateOrder(ctx context.Context, leagueID string) ([]draft.Pick, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DraftService.RegenerateOrder")
	defer span.End()

	lg, err := s.getLeague(ctx, leagueID)
	if err != nil {
		return nil, err
	}

	return s.regenerate(ctx, lg)
}

// SwapFirstRoundPicks exchanges the first-round slots of two picks and
// rebuilds every later round, since the snake derivation ties them to round 1.
func (s *DraftService) SwapFirstRoundPicks(ctx context.Context, leagueID string, pickNumberA, pickNumberB int) ([]draft.Pick, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DraftService.SwapFirstRoundPicks")
	defer span.End()

	picks, err := s.GetOrder(ctx, leagueID)
	if err != nil {
		return nil, err
	}

	swapped, err := draft.SwapFirstRound(picks, pickNumberA, pickNumberB)
	if err != nil {
		return nil, fmt.Errorf("swap first-round picks %d and %d: %w", pickNumberA, pickNumberB, err)
	}

	if err := s.draftRepo.ReplaceForLeague(ctx, leagueID, swapped); err != nil {
		return nil, fmt.Errorf("replace draft order: %w", err)
	}

	s.logger.InfoContext(ctx, "draft order swapped",
		"league_id", leagueID,
		"pick_a", pickNumberA,
		"pick_b", pickNumberB,
	)

	return swapped, nil
}

func (s *DraftService) CompletePick(ctx context.Context, leagueID string, pickNumber int) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.DraftService.CompletePick")
	defer span.End()

	leagueID = strings.TrimSpace(leagueID)
	if leagueID == "" {
		return fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}
	if pickNumber < 1 {
		return fmt.Errorf("%w: pick number must be at least 1", ErrInvalidInput)
	}

	updated, err := s.draftRepo.MarkCompleted(ctx, leagueID, pickNumber)
	if err != nil {
		return fmt.Errorf("mark pick completed: %w", err)
	}
	if !updated {
		return fmt.Errorf("%w: pick=%d league=%s", ErrNotFound, pickNumber, leagueID)
	}

	return nil
}

func (s *DraftService) getLeague(ctx context.Context, leagueID string) (league.League, error) {
	leagueID = strings.TrimSpace(leagueID)
	if leagueID == "" {
		return league.League{}, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}

	lg, exists, err := s.leagueRepo.GetByID(ctx, leagueID)
	if err != nil {
		return league.League{}, fmt.Errorf("get league: %w", err)
	}
	if !exists {
		return league.League{}, fmt.Errorf("%w: league=%s", ErrNotFound, leagueID)
	}

	return lg, nil
}

func (s *DraftService) regenerate(ctx context.Context, lg league.League) ([]draft.Pick, error) {
	teams, err := s.teamRepo.ListByLeague(ctx, lg.ID)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}

	slots, err := firstRoundSlots(teams)
	if err != nil {
		return nil, err
	}

	picks, err := draft.GenerateOrder(lg.ID, slots, lg.DraftRounds)
	if err != nil {
		return nil, fmt.Errorf("generate draft order for league %s: %w", lg.ID, err)
	}

	if err := s.draftRepo.ReplaceForLeague(ctx, lg.ID, picks); err != nil {
		return nil, fmt.Errorf("replace draft order: %w", err)
	}

	s.logger.InfoContext(ctx, "draft order generated",
		"league_id", lg.ID,
		"teams", len(slots),
		"rounds", lg.DraftRounds,
	)

	return picks, nil
}

// firstRoundSlots orders teams by their stored draft position, then by name
// for teams that never got one, and assigns contiguous 1-based slots.
func firstRoundSlots(teams []team.Team) ([]draft.TeamSlot, error) {
	if len(teams) == 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, draft.ErrNoTeams)
	}

	ordered := append([]team.Team(nil), teams...)
	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		if a.DraftPosition != b.DraftPosition {
			if a.DraftPosition == 0 {
				return false
			}
			if b.DraftPosition == 0 {
				return true
			}
			return a.DraftPosition < b.DraftPosition
		}
		return a.Name < b.Name
	})

	slots := make([]draft.TeamSlot, 0, len(ordered))
	for i, t := range ordered {
		slots = append(slots, draft.TeamSlot{TeamID: t.ID, Position: i + 1})
	}

	return slots, nil
}
