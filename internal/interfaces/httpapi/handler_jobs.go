package httpapi

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/addthemup/hoopgeek-sub001/internal/usecase"
)

func (h *Handler) RunRosterAuditJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunRosterAuditJob")
	defer span.End()

	if h.auditService == nil {
		writeError(ctx, w, fmt.Errorf("%w: roster audit service is not configured", usecase.ErrDependencyUnavailable))
		return
	}

	decoder := jsoniter.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	var req rosterAuditRequest
	if err := decoder.Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	report, err := h.auditService.RunAudit(ctx, req.LeagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "roster audit job failed", "league_id", req.LeagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, auditReportToDTO(report))
}

type rosterAuditRequest struct {
	LeagueID string `json:"league_id" validate:"required"`
}

type auditReportDTO struct {
	AuditID      string            `json:"auditId"`
	LeagueID     string            `json:"leagueId"`
	TeamsChecked int               `json:"teamsChecked"`
	Findings     []auditFindingDTO `json:"findings"`
	StartedAt    string            `json:"startedAt"`
	FinishedAt   string            `json:"finishedAt"`
}

type auditFindingDTO struct {
	TeamID   string `json:"teamId"`
	Unit     string `json:"unit,omitempty"`
	PlayerID string `json:"playerId,omitempty"`
	Kind     string `json:"kind"`
	Detail   string `json:"detail"`
}

func auditReportToDTO(report usecase.AuditReport) auditReportDTO {
	findings := make([]auditFindingDTO, 0, len(report.Findings))
	for _, finding := range report.Findings {
		findings = append(findings, auditFindingDTO{
			TeamID:   finding.TeamID,
			Unit:     string(finding.Unit),
			PlayerID: finding.PlayerID,
			Kind:     string(finding.Kind),
			Detail:   finding.Detail,
		})
	}

	return auditReportDTO{
		AuditID:      report.AuditID,
		LeagueID:     report.LeagueID,
		TeamsChecked: report.TeamsChecked,
		Findings:     findings,
		StartedAt:    formatUTC(report.StartedAt),
		FinishedAt:   formatUTC(report.FinishedAt),
	}
}
