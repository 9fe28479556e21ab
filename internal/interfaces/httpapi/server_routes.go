package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicDomainRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/leagues", handler.ListLeagues)
	mux.HandleFunc("GET /v1/leagues/{leagueID}", handler.GetLeague)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/teams", handler.ListTeamsByLeague)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/players", handler.ListPlayersByLeague)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/players/{playerID}", handler.GetPlayerByLeague)
}

func registerAuthorizedRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	registerAuthorizedLineupRoutes(mux, handler, verifier)
	registerAuthorizedDraftRoutes(mux, handler, verifier)
}

func registerAuthorizedLineupRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("GET /v1/leagues/{leagueID}/teams/{teamID}/lineup", RequireAuth(verifier, http.HandlerFunc(handler.GetLineupBoard)))
	mux.Handle("GET /v1/leagues/{leagueID}/teams/{teamID}/lineup/assignments", RequireAuth(verifier, http.HandlerFunc(handler.ListLineupAssignments)))
	mux.Handle("POST /v1/leagues/{leagueID}/teams/{teamID}/lineup/assignments", RequireAuth(verifier, http.HandlerFunc(handler.AssignPlayer)))
	mux.Handle("PUT /v1/leagues/{leagueID}/teams/{teamID}/lineup/assignments/{playerID}", RequireAuth(verifier, http.HandlerFunc(handler.RepositionPlayer)))
	mux.Handle("DELETE /v1/leagues/{leagueID}/teams/{teamID}/lineup/assignments/{playerID}", RequireAuth(verifier, http.HandlerFunc(handler.UnassignPlayer)))
}

func registerAuthorizedDraftRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("GET /v1/leagues/{leagueID}/draft/order", RequireAuth(verifier, http.HandlerFunc(handler.GetDraftOrder)))
	mux.Handle("POST /v1/leagues/{leagueID}/draft/order/regenerate", RequireAuth(verifier, http.HandlerFunc(handler.RegenerateDraftOrder)))
	mux.Handle("POST /v1/leagues/{leagueID}/draft/order/swap", RequireAuth(verifier, http.HandlerFunc(handler.SwapFirstRoundPicks)))
	mux.Handle("POST /v1/leagues/{leagueID}/draft/picks/{pickNumber}/complete", RequireAuth(verifier, http.HandlerFunc(handler.CompleteDraftPick)))
}

func registerInternalJobRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("POST /v1/internal/jobs/roster-audit", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunRosterAuditJob)))
}
