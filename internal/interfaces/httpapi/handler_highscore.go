package httpapi

import (
	"net/http"
)

// ListHighScores serves the stored leaderboard; scope selects a district
// and an empty scope means the global records.
func (h *Handler) ListHighScores(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListHighScores")
	defer span.End()

	season, err := h.parseSeason(r.PathValue("season"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	scope := r.URL.Query().Get("scope")

	records, err := h.highScoreService.List(ctx, season, scope)
	if err != nil {
		h.logger.WarnContext(ctx, "list high scores failed", "season", season, "scope", scope, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, records)
}
