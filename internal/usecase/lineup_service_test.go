package usecase

import (
	"errors"
	"testing"

	"github.com/addthemup/hoopgeek-sub001/internal/domain/league"
	"github.com/addthemup/hoopgeek-sub001/internal/domain/lineup"
	"github.com/addthemup/hoopgeek-sub001/internal/infrastructure/repository/memory"
	"github.com/addthemup/hoopgeek-sub001/internal/platform/logging"
)

func newLineupService() (*LineupService, *memory.LineupRepository) {
	lineupRepo := memory.NewLineupRepository()
	service := NewLineupService(
		memory.NewLeagueRepository(memory.SeedLeagues()),
		memory.NewTeamRepository(memory.SeedTeams()),
		memory.NewPlayerRepository(memory.SeedPlayers()),
		lineupRepo,
		logging.NewNop(),
	)
	return service, lineupRepo
}

func TestLineupService_AssignPlayer_PlacesOntoUnit(t *testing.T) {
	service, _ := newLineupService()

	assignment, err := service.AssignPlayer(t.Context(), AssignPlayerInput{
		LeagueID: memory.LeagueIDDowntown,
		TeamID:   "dd-splash",
		PlayerID: "dd-p01",
		Unit:     "starters",
		X:        20,
		Y:        65,
	})
	if err != nil {
		t.Fatalf("assign player failed: %v", err)
	}

	if assignment.Unit != league.UnitStarters {
		t.Fatalf("expected starters unit, got %s", assignment.Unit)
	}
	if assignment.PlayerPosition != "G" {
		t.Fatalf("expected normalized position G, got %s", assignment.PlayerPosition)
	}
	if assignment.PlayerRawPosition != "Point Guard" {
		t.Fatalf("expected raw position preserved, got %s", assignment.PlayerRawPosition)
	}
}

func TestLineupService_AssignPlayer_RefusesSecondUnit(t *testing.T) {
	service, _ := newLineupService()

	input := AssignPlayerInput{
		LeagueID: memory.LeagueIDDowntown,
		TeamID:   "dd-splash",
		PlayerID: "dd-p01",
		Unit:     "starters",
		X:        20,
		Y:        65,
	}
	if _, err := service.AssignPlayer(t.Context(), input); err != nil {
		t.Fatalf("first assign failed: %v", err)
	}

	input.Unit = "bench"
	_, err := service.AssignPlayer(t.Context(), input)
	if !errors.Is(err, lineup.ErrAssignedElsewhere) {
		t.Fatalf("expected ErrAssignedElsewhere, got %v", err)
	}
}

func TestLineupService_AssignPlayer_DualRoleMatchesEitherRequirement(t *testing.T) {
	service, _ := newLineupService()

	// Garage league starters want 2 G, 2 F, 1 C; a Guard-Forward listing
	// overlaps on both.
	_, err := service.AssignPlayer(t.Context(), AssignPlayerInput{
		LeagueID: memory.LeagueIDGarage,
		TeamID:   "gl-bricks",
		PlayerID: "gl-p04",
		Unit:     "starters",
		X:        10,
		Y:        10,
	})
	if err != nil {
		t.Fatalf("guard-forward assign failed: %v", err)
	}
}

func TestLineupService_AssignPlayer_RefusesWithoutPositionOverlap(t *testing.T) {
	service, _ := newLineupService()

	// Garage rotation wants 1 G, 1 F, 3 UTIL; a pure center matches none.
	_, err := service.AssignPlayer(t.Context(), AssignPlayerInput{
		LeagueID: memory.LeagueIDGarage,
		TeamID:   "gl-bricks",
		PlayerID: "gl-p03",
		Unit:     "rotation",
		X:        10,
		Y:        10,
	})
	if !errors.Is(err, lineup.ErrNoPositionOverlap) {
		t.Fatalf("expected ErrNoPositionOverlap, got %v", err)
	}
}

func TestLineupService_AssignPlayer_RefusesFullUnit(t *testing.T) {
	service, _ := newLineupService()

	// Bench holds 3 in the default configuration.
	for _, playerID := range []string{"dd-p01", "dd-p02", "dd-p03"} {
		_, err := service.AssignPlayer(t.Context(), AssignPlayerInput{
			LeagueID: memory.LeagueIDDowntown,
			TeamID:   "dd-splash",
			PlayerID: playerID,
			Unit:     "bench",
			X:        50,
			Y:        50,
		})
		if err != nil {
			t.Fatalf("bench assign %s failed: %v", playerID, err)
		}
	}

	_, err := service.AssignPlayer(t.Context(), AssignPlayerInput{
		LeagueID: memory.LeagueIDDowntown,
		TeamID:   "dd-splash",
		PlayerID: "dd-p04",
		Unit:     "bench",
		X:        50,
		Y:        50,
	})
	if !errors.Is(err, lineup.ErrUnitFull) {
		t.Fatalf("expected ErrUnitFull, got %v", err)
	}
}

func TestLineupService_RepositionPlayer_AllowedInFullUnit(t *testing.T) {
	service, _ := newLineupService()

	for _, playerID := range []string{"dd-p01", "dd-p02", "dd-p03"} {
		_, err := service.AssignPlayer(t.Context(), AssignPlayerInput{
			LeagueID: memory.LeagueIDDowntown,
			TeamID:   "dd-splash",
			PlayerID: playerID,
			Unit:     "bench",
			X:        50,
			Y:        50,
		})
		if err != nil {
			t.Fatalf("bench assign %s failed: %v", playerID, err)
		}
	}

	moved, err := service.RepositionPlayer(t.Context(), AssignPlayerInput{
		LeagueID: memory.LeagueIDDowntown,
		TeamID:   "dd-splash",
		PlayerID: "dd-p02",
		Unit:     "bench",
		X:        80,
		Y:        15,
	})
	if err != nil {
		t.Fatalf("reposition inside full unit failed: %v", err)
	}
	if moved.X != 80 || moved.Y != 15 {
		t.Fatalf("expected updated coordinates, got x=%v y=%v", moved.X, moved.Y)
	}
}

func TestLineupService_RepositionPlayer_UnknownAssignment(t *testing.T) {
	service, _ := newLineupService()

	_, err := service.RepositionPlayer(t.Context(), AssignPlayerInput{
		LeagueID: memory.LeagueIDDowntown,
		TeamID:   "dd-splash",
		PlayerID: "dd-p01",
		Unit:     "starters",
		X:        10,
		Y:        10,
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unassigned player, got %v", err)
	}
}

func TestLineupService_UnassignPlayer(t *testing.T) {
	service, _ := newLineupService()

	_, err := service.AssignPlayer(t.Context(), AssignPlayerInput{
		LeagueID: memory.LeagueIDDowntown,
		TeamID:   "dd-splash",
		PlayerID: "dd-p01",
		Unit:     "starters",
		X:        20,
		Y:        65,
	})
	if err != nil {
		t.Fatalf("assign failed: %v", err)
	}

	if err := service.UnassignPlayer(t.Context(), memory.LeagueIDDowntown, "dd-splash", "dd-p01"); err != nil {
		t.Fatalf("unassign failed: %v", err)
	}

	err = service.UnassignPlayer(t.Context(), memory.LeagueIDDowntown, "dd-splash", "dd-p01")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on repeated unassign, got %v", err)
	}
}

func TestLineupService_GetBoard(t *testing.T) {
	service, _ := newLineupService()

	_, err := service.AssignPlayer(t.Context(), AssignPlayerInput{
		LeagueID: memory.LeagueIDDowntown,
		TeamID:   "dd-splash",
		PlayerID: "dd-p05",
		Unit:     "starters",
		X:        50,
		Y:        90,
	})
	if err != nil {
		t.Fatalf("assign failed: %v", err)
	}

	board, err := service.GetBoard(t.Context(), memory.LeagueIDDowntown, "dd-splash")
	if err != nil {
		t.Fatalf("get board failed: %v", err)
	}

	if len(board.Units) != 3 {
		t.Fatalf("expected 3 units on board, got %d", len(board.Units))
	}

	starters := board.Units[0]
	if starters.Unit != league.UnitStarters {
		t.Fatalf("expected starters first, got %s", starters.Unit)
	}
	// Default starters fall back to [G G F F C].
	if len(starters.Requirements) != 5 {
		t.Fatalf("expected 5 starter slots, got %d", len(starters.Requirements))
	}
	if starters.Requirements[4] != "C" {
		t.Fatalf("expected center as last fallback slot, got %s", starters.Requirements[4])
	}
	if !starters.Filled[4] {
		t.Fatal("expected center slot to read filled")
	}
	if starters.Filled[0] {
		t.Fatal("expected guard slot to read open")
	}
	if len(starters.Assignments) != 1 {
		t.Fatalf("expected one starter assignment, got %d", len(starters.Assignments))
	}
}

func TestLineupService_AssignPlayer_InvalidInput(t *testing.T) {
	service, _ := newLineupService()

	_, err := service.AssignPlayer(t.Context(), AssignPlayerInput{
		LeagueID: memory.LeagueIDDowntown,
		TeamID:   "dd-splash",
		PlayerID: "dd-p01",
		Unit:     "second-string",
		X:        10,
		Y:        10,
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown unit, got %v", err)
	}

	_, err = service.AssignPlayer(t.Context(), AssignPlayerInput{
		LeagueID: memory.LeagueIDDowntown,
		TeamID:   "dd-splash",
		PlayerID: "dd-p01",
		Unit:     "starters",
		X:        130,
		Y:        10,
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for out-of-range coordinates, got %v", err)
	}
}
