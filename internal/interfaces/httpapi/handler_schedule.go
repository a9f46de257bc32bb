package httpapi

import (
	"net/http"
	"strings"

	"github.com/riskibarqy/frc-scores/internal/domain/match"
)

// HybridSchedule serves one event level with results and score breakdowns
// attached to every played match.
func (h *Handler) HybridSchedule(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.HybridSchedule")
	defer span.End()

	season, err := h.parseSeason(r.PathValue("season"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	level, err := parseLevel(r.URL.Query().Get("level"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	eventCode := strings.TrimSpace(r.PathValue("eventCode"))

	matches, err := h.scheduleService.HybridSchedule(ctx, match.Query{
		Season:    season,
		EventCode: eventCode,
		Level:     level,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "hybrid schedule failed", "season", season, "event", eventCode, "level", string(level), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matches)
}
