package usecase

import (
	"context"
	"testing"

	"github.com/addthemup/hoopgeek-sub001/internal/domain/league"
	"github.com/addthemup/hoopgeek-sub001/internal/domain/lineup"
	"github.com/addthemup/hoopgeek-sub001/internal/infrastructure/repository/memory"
	"github.com/addthemup/hoopgeek-sub001/internal/platform/id"
	"github.com/addthemup/hoopgeek-sub001/internal/platform/logging"
)

func TestRosterAuditService_RunAudit_CleanLeague(t *testing.T) {
	service := NewRosterAuditService(
		memory.NewLeagueRepository(memory.SeedLeagues()),
		memory.NewTeamRepository(memory.SeedTeams()),
		memory.NewLineupRepository(),
		id.NewRandomGenerator(),
		4,
		logging.NewNop(),
	)

	report, err := service.RunAudit(t.Context(), memory.LeagueIDDowntown)
	if err != nil {
		t.Fatalf("audit failed: %v", err)
	}

	if report.AuditID == "" {
		t.Fatalf("expected a generated audit id")
	}
	if report.TeamsChecked != 4 {
		t.Fatalf("expected 4 teams checked, got %d", report.TeamsChecked)
	}
	if len(report.Findings) != 0 {
		t.Fatalf("expected no findings, got %v", report.Findings)
	}
}

// badRowsLineupRepo returns assignment rows the API would never write, the
// shape left behind by a league reconfiguration or a racing writer.
type badRowsLineupRepo struct {
	lineup.Repository
	rows map[string][]lineup.SlotAssignment
}

func (r badRowsLineupRepo) ListByTeam(_ context.Context, _, teamID string) ([]lineup.SlotAssignment, error) {
	return r.rows[teamID], nil
}

func TestRosterAuditService_RunAudit_FlagsBadRows(t *testing.T) {
	rows := map[string][]lineup.SlotAssignment{
		"dd-splash": {
			// Same player holding slots in two units.
			{LeagueID: memory.LeagueIDDowntown, TeamID: "dd-splash", PlayerID: "dd-p01", Unit: league.UnitStarters, X: 10, Y: 10, PlayerPosition: "G"},
			{LeagueID: memory.LeagueIDDowntown, TeamID: "dd-splash", PlayerID: "dd-p01", Unit: league.UnitBench, X: 10, Y: 10, PlayerPosition: "G"},
		},
		"dd-paint": {
			// Bench one over its 3-player capacity.
			{LeagueID: memory.LeagueIDDowntown, TeamID: "dd-paint", PlayerID: "dd-p02", Unit: league.UnitBench, X: 10, Y: 10, PlayerPosition: "G"},
			{LeagueID: memory.LeagueIDDowntown, TeamID: "dd-paint", PlayerID: "dd-p03", Unit: league.UnitBench, X: 20, Y: 10, PlayerPosition: "F"},
			{LeagueID: memory.LeagueIDDowntown, TeamID: "dd-paint", PlayerID: "dd-p04", Unit: league.UnitBench, X: 30, Y: 10, PlayerPosition: "F"},
			{LeagueID: memory.LeagueIDDowntown, TeamID: "dd-paint", PlayerID: "dd-p05", Unit: league.UnitBench, X: 40, Y: 10, PlayerPosition: "C"},
		},
	}

	service := NewRosterAuditService(
		memory.NewLeagueRepository(memory.SeedLeagues()),
		memory.NewTeamRepository(memory.SeedTeams()),
		badRowsLineupRepo{rows: rows},
		id.NewRandomGenerator(),
		2,
		logging.NewNop(),
	)

	report, err := service.RunAudit(t.Context(), memory.LeagueIDDowntown)
	if err != nil {
		t.Fatalf("audit failed: %v", err)
	}

	if len(report.Findings) != 2 {
		t.Fatalf("expected 2 findings, got %v", report.Findings)
	}

	overCapacity := report.Findings[0]
	if overCapacity.Kind != AuditFindingUnitOverCapacity || overCapacity.TeamID != "dd-paint" || overCapacity.Unit != league.UnitBench {
		t.Fatalf("unexpected first finding: %+v", overCapacity)
	}

	duplicate := report.Findings[1]
	if duplicate.Kind != AuditFindingDuplicateAssignment || duplicate.TeamID != "dd-splash" || duplicate.PlayerID != "dd-p01" {
		t.Fatalf("unexpected second finding: %+v", duplicate)
	}
}
