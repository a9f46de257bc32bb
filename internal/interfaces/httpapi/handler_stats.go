package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/riskibarqy/frc-scores/internal/usecase"
)

func (h *Handler) TeamYearStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.TeamYearStats")
	defer span.End()

	teamNumber, err := strconv.Atoi(strings.TrimSpace(r.PathValue("teamNumber")))
	if err != nil || teamNumber <= 0 {
		writeError(ctx, w, fmt.Errorf("%w: teamNumber must be a positive integer", usecase.ErrInvalidInput))
		return
	}
	year, err := h.parseSeason(r.PathValue("year"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	stats, err := h.statsService.TeamYear(ctx, teamNumber, year)
	if err != nil {
		h.logger.WarnContext(ctx, "team year stats failed", "team", teamNumber, "year", year, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, stats)
}
