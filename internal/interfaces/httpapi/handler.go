package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/addthemup/hoopgeek-sub001/internal/domain/league"
	"github.com/addthemup/hoopgeek-sub001/internal/domain/lineup"
	"github.com/addthemup/hoopgeek-sub001/internal/domain/player"
	"github.com/addthemup/hoopgeek-sub001/internal/domain/team"
	"github.com/addthemup/hoopgeek-sub001/internal/platform/logging"
	"github.com/addthemup/hoopgeek-sub001/internal/usecase"
)

type Handler struct {
	leagueService *usecase.LeagueService
	playerService *usecase.PlayerService
	lineupService *usecase.LineupService
	draftService  *usecase.DraftService
	auditService  *usecase.RosterAuditService
	logger        *logging.Logger
	validator     *validator.Validate
}

func NewHandler(
	leagueService *usecase.LeagueService,
	playerService *usecase.PlayerService,
	lineupService *usecase.LineupService,
	draftService *usecase.DraftService,
	auditService *usecase.RosterAuditService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		leagueService: leagueService,
		playerService: playerService,
		lineupService: lineupService,
		draftService:  draftService,
		auditService:  auditService,
		logger:        logger,
		validator:     validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) ListLeagues(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLeagues")
	defer span.End()

	leagues, err := h.leagueService.ListLeagues(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list leagues failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]leagueSummaryDTO, 0, len(leagues))
	for _, l := range leagues {
		items = append(items, leagueToSummaryDTO(l))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeague")
	defer span.End()

	leagueID := r.PathValue("leagueID")
	item, err := h.leagueService.GetLeague(ctx, leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "get league failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, leagueToDetailDTO(item))
}

func (h *Handler) ListTeamsByLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeamsByLeague")
	defer span.End()

	leagueID := r.PathValue("leagueID")
	teams, err := h.leagueService.ListTeamsByLeague(ctx, leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "list teams failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]teamDTO, 0, len(teams))
	for _, t := range teams {
		items = append(items, teamToDTO(t))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListPlayersByLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayersByLeague")
	defer span.End()

	leagueID := r.PathValue("leagueID")
	players, err := h.playerService.ListPlayersByLeague(ctx, leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "list players failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]playerDTO, 0, len(players))
	for _, p := range players {
		items = append(items, playerToDTO(p))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetPlayerByLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerByLeague")
	defer span.End()

	leagueID := r.PathValue("leagueID")
	playerID := r.PathValue("playerID")
	item, err := h.playerService.GetPlayerByLeagueAndID(ctx, leagueID, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "get player failed", "league_id", leagueID, "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerToDTO(item))
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

type leagueSummaryDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Season      string `json:"season"`
	DraftRounds int    `json:"draftRounds"`
	IsDefault   bool   `json:"isDefault"`
}

type leagueDetailDTO struct {
	ID          string                   `json:"id"`
	Name        string                   `json:"name"`
	Season      string                   `json:"season"`
	DraftRounds int                      `json:"draftRounds"`
	IsDefault   bool                     `json:"isDefault"`
	Units       map[string]unitConfigDTO `json:"units"`
}

type unitConfigDTO struct {
	MaxPlayers   int            `json:"maxPlayers"`
	Multiplier   float64        `json:"multiplier"`
	Requirements map[string]int `json:"requirements,omitempty"`
	SlotList     []string       `json:"slotList"`
}

type teamDTO struct {
	ID            string `json:"id"`
	LeagueID      string `json:"leagueId"`
	Name          string `json:"name"`
	OwnerUserID   string `json:"ownerUserId,omitempty"`
	DraftPosition int    `json:"draftPosition"`
}

type playerDTO struct {
	ID                string   `json:"id"`
	LeagueID          string   `json:"leagueId"`
	Name              string   `json:"name"`
	NBATeam           string   `json:"nbaTeam"`
	JerseyNumber      int      `json:"jerseyNumber"`
	RawPosition       string   `json:"rawPosition"`
	Position          string   `json:"position"`
	EligiblePositions []string `json:"eligiblePositions"`
}

func leagueToSummaryDTO(v league.League) leagueSummaryDTO {
	return leagueSummaryDTO{
		ID:          v.ID,
		Name:        v.Name,
		Season:      v.Season,
		DraftRounds: v.DraftRounds,
		IsDefault:   v.IsDefault,
	}
}

func leagueToDetailDTO(v league.League) leagueDetailDTO {
	units := make(map[string]unitConfigDTO, 3)
	for _, unit := range []league.Unit{league.UnitStarters, league.UnitRotation, league.UnitBench} {
		cfg := v.UnitConfig(unit)

		var requirements map[string]int
		if len(cfg.Requirements) > 0 {
			requirements = make(map[string]int, len(cfg.Requirements))
			for pos, count := range cfg.Requirements {
				requirements[string(pos)] = count
			}
		}

		units[string(unit)] = unitConfigDTO{
			MaxPlayers:   cfg.MaxPlayers,
			Multiplier:   cfg.Multiplier,
			Requirements: requirements,
			SlotList:     positionsToStrings(lineup.RequirementList(cfg)),
		}
	}

	return leagueDetailDTO{
		ID:          v.ID,
		Name:        v.Name,
		Season:      v.Season,
		DraftRounds: v.DraftRounds,
		IsDefault:   v.IsDefault,
		Units:       units,
	}
}

func teamToDTO(v team.Team) teamDTO {
	return teamDTO{
		ID:            v.ID,
		LeagueID:      v.LeagueID,
		Name:          v.Name,
		OwnerUserID:   v.OwnerUserID,
		DraftPosition: v.DraftPosition,
	}
}

func playerToDTO(v player.Player) playerDTO {
	return playerDTO{
		ID:                v.ID,
		LeagueID:          v.LeagueID,
		Name:              v.Name,
		NBATeam:           v.NBATeam,
		JerseyNumber:      v.JerseyNumber,
		RawPosition:       v.RawPosition,
		Position:          string(v.Position),
		EligiblePositions: positionsToStrings(player.Eligible(v.RawPosition)),
	}
}

func positionsToStrings(positions []player.Position) []string {
	out := make([]string, 0, len(positions))
	for _, pos := range positions {
		out = append(out, string(pos))
	}
	return out
}

func formatUTC(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
