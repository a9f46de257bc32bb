package httpapi

import (
	"fmt"
	"net/http"

	"github.com/riskibarqy/frc-scores/internal/usecase"
)

// RunRecomputeHighScoresJob rebuilds one season's leaderboard. An empty
// body recomputes the current season.
func (h *Handler) RunRecomputeHighScoresJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunRecomputeHighScoresJob")
	defer span.End()

	if h.highScoreService == nil {
		writeError(ctx, w, fmt.Errorf("%w: high score service is not configured", usecase.ErrDependencyUnavailable))
		return
	}

	var req recomputeHighScoresRequest
	if err := decodeJSONBody(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}
	season := req.Season
	if season == 0 {
		season = h.currentSeason
	}

	result, err := h.highScoreService.Recompute(ctx, season)
	if err != nil {
		h.logger.WarnContext(ctx, "recompute high scores job failed", "season", season, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, result)
}
