package httpapi

import (
	"fmt"
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/addthemup/hoopgeek-sub001/internal/domain/lineup"
	"github.com/addthemup/hoopgeek-sub001/internal/usecase"
)

func (h *Handler) GetLineupBoard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLineupBoard")
	defer span.End()

	leagueID := r.PathValue("leagueID")
	teamID := r.PathValue("teamID")
	board, err := h.lineupService.GetBoard(ctx, leagueID, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "get lineup board failed", "league_id", leagueID, "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, boardToDTO(board))
}

func (h *Handler) ListLineupAssignments(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLineupAssignments")
	defer span.End()

	leagueID := r.PathValue("leagueID")
	teamID := r.PathValue("teamID")
	assignments, err := h.lineupService.ListAssignments(ctx, leagueID, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "list lineup assignments failed", "league_id", leagueID, "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]assignmentDTO, 0, len(assignments))
	for _, a := range assignments {
		items = append(items, assignmentToDTO(a))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) AssignPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AssignPlayer")
	defer span.End()

	leagueID := r.PathValue("leagueID")
	teamID := r.PathValue("teamID")

	var req assignPlayerRequest
	decoder := jsoniter.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	assignment, err := h.lineupService.AssignPlayer(ctx, usecase.AssignPlayerInput{
		LeagueID: leagueID,
		TeamID:   teamID,
		PlayerID: req.PlayerID,
		Unit:     req.Unit,
		X:        req.X,
		Y:        req.Y,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "assign player failed",
			"league_id", leagueID,
			"team_id", teamID,
			"player_id", req.PlayerID,
			"unit", req.Unit,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, assignmentToDTO(assignment))
}

func (h *Handler) RepositionPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RepositionPlayer")
	defer span.End()

	leagueID := r.PathValue("leagueID")
	teamID := r.PathValue("teamID")
	playerID := r.PathValue("playerID")

	var req repositionPlayerRequest
	decoder := jsoniter.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	assignment, err := h.lineupService.RepositionPlayer(ctx, usecase.AssignPlayerInput{
		LeagueID: leagueID,
		TeamID:   teamID,
		PlayerID: playerID,
		Unit:     req.Unit,
		X:        req.X,
		Y:        req.Y,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "reposition player failed",
			"league_id", leagueID,
			"team_id", teamID,
			"player_id", playerID,
			"unit", req.Unit,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, assignmentToDTO(assignment))
}

func (h *Handler) UnassignPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UnassignPlayer")
	defer span.End()

	leagueID := r.PathValue("leagueID")
	teamID := r.PathValue("teamID")
	playerID := r.PathValue("playerID")

	if err := h.lineupService.UnassignPlayer(ctx, leagueID, teamID, playerID); err != nil {
		h.logger.WarnContext(ctx, "unassign player failed",
			"league_id", leagueID,
			"team_id", teamID,
			"player_id", playerID,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "removed"})
}

type assignPlayerRequest struct {
	PlayerID string  `json:"playerId" validate:"required"`
	Unit     string  `json:"unit" validate:"required"`
	X        float64 `json:"x" validate:"min=0,max=100"`
	Y        float64 `json:"y" validate:"min=0,max=100"`
}

type repositionPlayerRequest struct {
	Unit string  `json:"unit" validate:"required"`
	X    float64 `json:"x" validate:"min=0,max=100"`
	Y    float64 `json:"y" validate:"min=0,max=100"`
}

type boardDTO struct {
	LeagueID string         `json:"leagueId"`
	TeamID   string         `json:"teamId"`
	Units    []unitBoardDTO `json:"units"`
}

type unitBoardDTO struct {
	Unit        string          `json:"unit"`
	MaxPlayers  int             `json:"maxPlayers"`
	Multiplier  float64         `json:"multiplier"`
	Slots       []boardSlotDTO  `json:"slots"`
	Assignments []assignmentDTO `json:"assignments"`
}

type boardSlotDTO struct {
	Position string `json:"position"`
	Filled   bool   `json:"filled"`
}

type assignmentDTO struct {
	LeagueID    string  `json:"leagueId"`
	TeamID      string  `json:"teamId"`
	PlayerID    string  `json:"playerId"`
	Unit        string  `json:"unit"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Position    string  `json:"position"`
	RawPosition string  `json:"rawPosition"`
	UpdatedAt   string  `json:"updatedAt"`
}

func boardToDTO(board usecase.TeamBoard) boardDTO {
	units := make([]unitBoardDTO, 0, len(board.Units))
	for _, unit := range board.Units {
		slots := make([]boardSlotDTO, 0, len(unit.Requirements))
		for i, pos := range unit.Requirements {
			slots = append(slots, boardSlotDTO{
				Position: string(pos),
				Filled:   unit.Filled[i],
			})
		}

		assignments := make([]assignmentDTO, 0, len(unit.Assignments))
		for _, a := range unit.Assignments {
			assignments = append(assignments, assignmentToDTO(a))
		}

		units = append(units, unitBoardDTO{
			Unit:        string(unit.Unit),
			MaxPlayers:  unit.MaxPlayers,
			Multiplier:  unit.Multiplier,
			Slots:       slots,
			Assignments: assignments,
		})
	}

	return boardDTO{
		LeagueID: board.LeagueID,
		TeamID:   board.TeamID,
		Units:    units,
	}
}

func assignmentToDTO(a lineup.SlotAssignment) assignmentDTO {
	return assignmentDTO{
		LeagueID:    a.LeagueID,
		TeamID:      a.TeamID,
		PlayerID:    a.PlayerID,
		Unit:        string(a.Unit),
		X:           a.X,
		Y:           a.Y,
		Position:    string(a.PlayerPosition),
		RawPosition: a.PlayerRawPosition,
		UpdatedAt:   formatUTC(a.UpdatedAt),
	}
}
