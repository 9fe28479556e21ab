package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/addthemup/hoopgeek-sub001/internal/domain/league"
	"github.com/addthemup/hoopgeek-sub001/internal/domain/lineup"
	"github.com/addthemup/hoopgeek-sub001/internal/domain/team"
	"github.com/addthemup/hoopgeek-sub001/internal/platform/id"
	"github.com/addthemup/hoopgeek-sub001/internal/platform/logging"
)

const defaultAuditWorkers = 8

type AuditFindingKind string

const (
	AuditFindingDuplicateAssignment AuditFindingKind = "duplicate_assignment"
	AuditFindingUnitOverCapacity    AuditFindingKind = "unit_over_capacity"
)

type AuditFinding struct {
	TeamID   string
	Unit     league.Unit
	PlayerID string
	Kind     AuditFindingKind
	Detail   string
}

type AuditReport struct {
	AuditID      string
	LeagueID     string
	TeamsChecked int
	Findings     []AuditFinding
	StartedAt    time.Time
	FinishedAt   time.Time
}

// RosterAuditService sweeps every team in a league for assignment rows that
// violate the board rules. The API validates drops before writing, but rows
// written before a league reconfigured its units, or by racing writers, can
// still be out of shape.
type RosterAuditService struct {
	leagueRepo league.Repository
	teamRepo   team.Repository
	lineupRepo lineup.Repository
	ids        id.Generator
	logger     *logging.Logger
	workers    int
	now        func() time.Time
}

func NewRosterAuditService(
	leagueRepo league.Repository,
	teamRepo team.Repository,
	lineupRepo lineup.Repository,
	ids id.Generator,
	workers int,
	logger *logging.Logger,
) *RosterAuditService {
	if ids == nil {
		ids = id.NewRandomGenerator()
	}
	if workers < 1 {
		workers = defaultAuditWorkers
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &RosterAuditService{
		leagueRepo: leagueRepo,
		teamRepo:   teamRepo,
		lineupRepo: lineupRepo,
		ids:        ids,
		logger:     logger,
		workers:    workers,
		now:        time.Now,
	}
}

func (s *RosterAuditService) RunAudit(ctx context.Context, leagueID string) (AuditReport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterAuditService.RunAudit")
	defer span.End()

	leagueID = strings.TrimSpace(leagueID)
	if leagueID == "" {
		return AuditReport{}, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}

	lg, exists, err := s.leagueRepo.GetByID(ctx, leagueID)
	if err != nil {
		return AuditReport{}, fmt.Errorf("get league: %w", err)
	}
	if !exists {
		return AuditReport{}, fmt.Errorf("%w: league=%s", ErrNotFound, leagueID)
	}

	teams, err := s.teamRepo.ListByLeague(ctx, leagueID)
	if err != nil {
		return AuditReport{}, fmt.Errorf("list teams: %w", err)
	}

	auditID, err := s.ids.NewID()
	if err != nil {
		return AuditReport{}, fmt.Errorf("generate audit id: %w", err)
	}

	report := AuditReport{
		AuditID:      auditID,
		LeagueID:     leagueID,
		TeamsChecked: len(teams),
		StartedAt:    s.now().UTC(),
	}

	pool, err := ants.NewPool(s.workers)
	if err != nil {
		return AuditReport{}, fmt.Errorf("create audit worker pool: %w", err)
	}
	defer pool.Release()

	var (
		mu       sync.Mutex
		wg       sync.WaitGroup
		firstErr error
	)
	for _, tm := range teams {
		tm := tm
		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()

			findings, auditErr := s.auditTeam(ctx, lg, tm)

			mu.Lock()
			defer mu.Unlock()
			if auditErr != nil {
				if firstErr == nil {
					firstErr = auditErr
				}
				return
			}
			report.Findings = append(report.Findings, findings...)
		})
		if submitErr != nil {
			wg.Done()
			mu.Lock()
			if firstErr == nil {
				firstErr = fmt.Errorf("submit audit task: %w", submitErr)
			}
			mu.Unlock()
		}
	}
	wg.Wait()

	if firstErr != nil {
		return AuditReport{}, firstErr
	}

	sort.Slice(report.Findings, func(i, j int) bool {
		a, b := report.Findings[i], report.Findings[j]
		if a.TeamID != b.TeamID {
			return a.TeamID < b.TeamID
		}
		if a.Kind != b.Kind {
			return a.Kind < b.Kind
		}
		return a.PlayerID < b.PlayerID
	})
	report.FinishedAt = s.now().UTC()

	s.logger.InfoContext(ctx, "roster audit finished",
		"audit_id", report.AuditID,
		"league_id", leagueID,
		"teams_checked", report.TeamsChecked,
		"findings", len(report.Findings),
	)

	return report, nil
}

func (s *RosterAuditService) auditTeam(ctx context.Context, lg league.League, tm team.Team) ([]AuditFinding, error) {
	assignments, err := s.lineupRepo.ListByTeam(ctx, lg.ID, tm.ID)
	if err != nil {
		return nil, fmt.Errorf("list assignments for team %s: %w", tm.ID, err)
	}

	findings := make([]AuditFinding, 0)

	unitsByPlayer := make(map[string][]league.Unit)
	occupancy := make(map[league.Unit]int)
	for _, a := range assignments {
		unitsByPlayer[a.PlayerID] = append(unitsByPlayer[a.PlayerID], a.Unit)
		occupancy[a.Unit]++
	}

	for playerID, units := range unitsByPlayer {
		if len(units) < 2 {
			continue
		}
		names := make([]string, 0, len(units))
		for _, u := range units {
			names = append(names, string(u))
		}
		sort.Strings(names)
		findings = append(findings, AuditFinding{
			TeamID:   tm.ID,
			PlayerID: playerID,
			Kind:     AuditFindingDuplicateAssignment,
			Detail:   fmt.Sprintf("player holds slots in units: %s", strings.Join(names, ", ")),
		})
	}

	for unit, count := range occupancy {
		cfg := lg.UnitConfig(unit)
		if cfg.MaxPlayers > 0 && count > cfg.MaxPlayers {
			findings = append(findings, AuditFinding{
				TeamID: tm.ID,
				Unit:   unit,
				Kind:   AuditFindingUnitOverCapacity,
				Detail: fmt.Sprintf("unit holds %d players, capacity is %d", count, cfg.MaxPlayers),
			})
		}
	}

	return findings, nil
}
