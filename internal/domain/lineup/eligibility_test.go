package lineup

import (
	"errors"
	"testing"

	"github.com/addthemup/hoopgeek-sub001/internal/domain/league"
	"github.com/addthemup/hoopgeek-sub001/internal/domain/player"
)

func testPlayer(id, rawPosition string) player.Player {
	primary, _ := player.Normalize(rawPosition)
	return player.Player{
		ID:          id,
		LeagueID:    "lg-1",
		Name:        "Player " + id,
		RawPosition: rawPosition,
		Position:    primary,
	}
}

func testAssignment(playerID, rawPosition string, unit league.Unit) SlotAssignment {
	primary, _ := player.Normalize(rawPosition)
	return SlotAssignment{
		LeagueID:          "lg-1",
		TeamID:            "tm-1",
		PlayerID:          playerID,
		Unit:              unit,
		X:                 50,
		Y:                 50,
		PlayerPosition:    primary,
		PlayerRawPosition: rawPosition,
	}
}

func TestExplain(t *testing.T) {
	openUnit := league.UnitConfig{MaxPlayers: 3}
	guardOnly := league.UnitConfig{
		MaxPlayers:   5,
		Requirements: map[player.Position]int{player.PositionGuard: 1},
	}
	noBackcourt := league.UnitConfig{
		MaxPlayers: 5,
		Requirements: map[player.Position]int{
			player.PositionCenter:  1,
			player.PositionUtility: 2,
		},
	}

	tests := []struct {
		name        string
		candidate   player.Player
		target      league.Unit
		assignments []SlotAssignment
		cfg         league.UnitConfig
		targetErr   error
	}{
		{
			name:      "open unit accepts any position",
			candidate: testPlayer("p1", "Center"),
			target:    league.UnitBench,
			cfg:       openUnit,
			targetErr: nil,
		},
		{
			name:      "player slotted in another unit is refused",
			candidate: testPlayer("p1", "Guard"),
			target:    league.UnitRotation,
			assignments: []SlotAssignment{
				testAssignment("p1", "Guard", league.UnitStarters),
			},
			cfg:       openUnit,
			targetErr: ErrAssignedElsewhere,
		},
		{
			name:      "full unit refuses newcomers",
			candidate: testPlayer("p4", "Guard"),
			target:    league.UnitBench,
			assignments: []SlotAssignment{
				testAssignment("p1", "Guard", league.UnitBench),
				testAssignment("p2", "Forward", league.UnitBench),
				testAssignment("p3", "Center", league.UnitBench),
			},
			cfg:       openUnit,
			targetErr: ErrUnitFull,
		},
		{
			name:      "full unit still allows repositioning an occupant",
			candidate: testPlayer("p3", "Center"),
			target:    league.UnitBench,
			assignments: []SlotAssignment{
				testAssignment("p1", "Guard", league.UnitBench),
				testAssignment("p2", "Forward", league.UnitBench),
				testAssignment("p3", "Center", league.UnitBench),
			},
			cfg:       openUnit,
			targetErr: nil,
		},
		{
			name:      "guard-forward refused when unit wants center or utility",
			candidate: testPlayer("p1", "Guard-Forward"),
			target:    league.UnitStarters,
			cfg:       noBackcourt,
			targetErr: ErrNoPositionOverlap,
		},
		{
			name:      "guard-forward accepted on guard overlap",
			candidate: testPlayer("p1", "Guard-Forward"),
			target:    league.UnitRotation,
			cfg:       guardOnly,
			targetErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Explain(tt.candidate, tt.target, tt.assignments, tt.cfg)
			if tt.targetErr == nil {
				if err != nil {
					t.Fatalf("expected acceptance, got %v", err)
				}
				if !Available(tt.candidate, tt.target, tt.assignments, tt.cfg) {
					t.Fatal("Available disagrees with Explain")
				}
				return
			}
			if !errors.Is(err, tt.targetErr) {
				t.Fatalf("expected %v, got %v", tt.targetErr, err)
			}
			if Available(tt.candidate, tt.target, tt.assignments, tt.cfg) {
				t.Fatal("Available disagrees with Explain")
			}
		})
	}
}

func TestRequirementListSortsConfiguredSlots(t *testing.T) {
	cfg := league.UnitConfig{
		MaxPlayers: 5,
		Requirements: map[player.Position]int{
			player.PositionGuard:   1,
			player.PositionForward: 1,
			player.PositionCenter:  1,
			player.PositionUtility: 2,
		},
	}

	got := RequirementList(cfg)
	want := []player.Position{
		player.PositionCenter,
		player.PositionForward,
		player.PositionGuard,
		player.PositionUtility,
		player.PositionUtility,
	}

	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestRequirementListFallsBackToDefaults(t *testing.T) {
	defaults := league.DefaultUnitConfigs()

	got := RequirementList(defaults[league.UnitRotation])
	want := []player.Position{
		player.PositionGuard,
		player.PositionForward,
		player.PositionUtility,
		player.PositionUtility,
		player.PositionUtility,
	}

	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected fallback order preserved, want %v got %v", want, got)
		}
	}

	if n := len(RequirementList(defaults[league.UnitBench])); n != 3 {
		t.Fatalf("expected 3 bench fallback slots, got %d", n)
	}
}

func TestPositionFilled(t *testing.T) {
	assignments := []SlotAssignment{
		testAssignment("p1", "Guard", league.UnitStarters),
		testAssignment("p2", "Forward-Center", league.UnitRotation),
	}

	if !PositionFilled(player.PositionGuard, league.UnitStarters, assignments) {
		t.Fatal("expected guard slot filled in starters")
	}
	if PositionFilled(player.PositionGuard, league.UnitRotation, assignments) {
		t.Fatal("guard should not read filled in rotation")
	}
	// Exact-match check: the dual-position occupant counts for its primary
	// code only.
	if !PositionFilled(player.PositionForward, league.UnitRotation, assignments) {
		t.Fatal("expected forward slot filled in rotation")
	}
	if PositionFilled(player.PositionCenter, league.UnitRotation, assignments) {
		t.Fatal("center should not read filled from a forward primary")
	}
}
