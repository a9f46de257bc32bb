package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool, metricsHandler http.Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if metricsHandler != nil {
		mux.Handle("GET /metrics", metricsHandler)
	}
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerSeasonRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/{season}/events", handler.ListEvents)
	mux.HandleFunc("GET /v1/{season}/districts", handler.ListDistricts)
	mux.HandleFunc("GET /v1/{season}/schedule/{eventCode}", handler.HybridSchedule)
	mux.HandleFunc("GET /v1/{season}/rankings/{eventCode}", handler.ListRankings)
	mux.HandleFunc("GET /v1/{season}/alliances/{eventCode}", handler.ListAlliances)
	mux.HandleFunc("GET /v1/{season}/teams", handler.ListTeams)
	mux.HandleFunc("POST /v1/{season}/awards/batch", handler.BatchAwards)
	mux.HandleFunc("POST /v1/{season}/avatars/batch", handler.BatchAvatars)
	mux.HandleFunc("GET /v1/{season}/highscores", handler.ListHighScores)
}

func registerOffseasonRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/offseason/events", handler.ListOffseasonEvents)
	mux.HandleFunc("GET /v1/offseason/events/{eventKey}/schedule", handler.OffseasonSchedule)
	mux.HandleFunc("GET /v1/offseason/events/{eventKey}/teams", handler.OffseasonTeams)
	mux.HandleFunc("GET /v1/offseason/events/{eventKey}/rankings", handler.OffseasonRankings)
	mux.HandleFunc("GET /v1/offseason/events/{eventKey}/alliances", handler.OffseasonAlliances)
}

func registerStatsRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/teams/{teamNumber}/stats/{year}", handler.TeamYearStats)
}

func registerInternalJobRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("POST /v1/internal/jobs/recompute-highscores", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunRecomputeHighScoresJob)))
}
