package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/addthemup/hoopgeek-sub001/internal/domain/draft"
	"github.com/addthemup/hoopgeek-sub001/internal/usecase"
)

// GetDraftOrder returns the full stored order, or a per-round preview when
// the preview_rounds query parameter is set.
func (h *Handler) GetDraftOrder(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetDraftOrder")
	defer span.End()

	leagueID := r.PathValue("leagueID")

	rawPreview := strings.TrimSpace(r.URL.Query().Get("preview_rounds"))
	if rawPreview != "" {
		previewRounds, err := strconv.Atoi(rawPreview)
		if err != nil {
			writeError(ctx, w, fmt.Errorf("%w: preview_rounds must be an integer", usecase.ErrInvalidInput))
			return
		}

		rounds, err := h.draftService.GetPreview(ctx, leagueID, previewRounds)
		if err != nil {
			h.logger.WarnContext(ctx, "get draft preview failed", "league_id", leagueID, "error", err)
			writeError(ctx, w, err)
			return
		}

		writeSuccess(ctx, w, http.StatusOK, roundsToDTO(rounds))
		return
	}

	picks, err := h.draftService.GetOrder(ctx, leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "get draft order failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, picksToDTO(picks))
}

func (h *Handler) RegenerateDraftOrder(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RegenerateDraftOrder")
	defer span.End()

	leagueID := r.PathValue("leagueID")
	picks, err := h.draftService.RegenerateOrder(ctx, leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "regenerate draft order failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, picksToDTO(picks))
}

func (h *Handler) SwapFirstRoundPicks(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SwapFirstRoundPicks")
	defer span.End()

	leagueID := r.PathValue("leagueID")

	var req swapFirstRoundRequest
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

	picks, err := h.draftService.SwapFirstRoundPicks(ctx, leagueID, req.PickNumberA, req.PickNumberB)
	if err != nil {
		h.logger.WarnContext(ctx, "swap first-round picks failed",
			"league_id", leagueID,
			"pick_a", req.PickNumberA,
			"pick_b", req.PickNumberB,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, picksToDTO(picks))
}

func (h *Handler) CompleteDraftPick(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CompleteDraftPick")
	defer span.End()

	leagueID := r.PathValue("leagueID")
	pickNumber, err := strconv.Atoi(r.PathValue("pickNumber"))
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: pick number must be an integer", usecase.ErrInvalidInput))
		return
	}

	if err := h.draftService.CompletePick(ctx, leagueID, pickNumber); err != nil {
		h.logger.WarnContext(ctx, "complete draft pick failed",
			"league_id", leagueID,
			"pick_number", pickNumber,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "completed"})
}

type swapFirstRoundRequest struct {
	PickNumberA int `json:"pickNumberA" validate:"required,min=1"`
	PickNumberB int `json:"pickNumberB" validate:"required,min=1"`
}

type pickDTO struct {
	Round        int    `json:"round"`
	PickNumber   int    `json:"pickNumber"`
	TeamID       string `json:"teamId"`
	TeamPosition int    `json:"teamPosition"`
	Completed    bool   `json:"completed"`
}

type roundPicksDTO struct {
	Round int       `json:"round"`
	Picks []pickDTO `json:"picks"`
}

func picksToDTO(picks []draft.Pick) []pickDTO {
	out := make([]pickDTO, 0, len(picks))
	for _, pick := range picks {
		out = append(out, pickDTO{
			Round:        pick.Round,
			PickNumber:   pick.PickNumber,
			TeamID:       pick.TeamID,
			TeamPosition: pick.TeamPosition,
			Completed:    pick.Completed,
		})
	}
	return out
}

func roundsToDTO(rounds []draft.RoundPicks) []roundPicksDTO {
	out := make([]roundPicksDTO, 0, len(rounds))
	for _, round := range rounds {
		out = append(out, roundPicksDTO{
			Round: round.Round,
			Picks: picksToDTO(round.Picks),
		})
	}
	return out
}
