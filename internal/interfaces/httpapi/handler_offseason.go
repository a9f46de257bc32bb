package httpapi

import (
	"net/http"
	"strings"

	"github.com/riskibarqy/frc-scores/internal/domain/match"
)

// ListOffseasonEvents lists unofficial events of ?year=, defaulting to the
// current season.
func (h *Handler) ListOffseasonEvents(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListOffseasonEvents")
	defer span.End()

	year, err := h.parseSeason(r.URL.Query().Get("year"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	events, err := h.offseasonService.ListEvents(ctx, year)
	if err != nil {
		h.logger.WarnContext(ctx, "list off-season events failed", "year", year, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, events)
}

// OffseasonSchedule returns every level unless level is set.
func (h *Handler) OffseasonSchedule(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.OffseasonSchedule")
	defer span.End()

	var level match.TournamentLevel
	if raw := strings.TrimSpace(r.URL.Query().Get("level")); raw != "" {
		parsed, err := parseLevel(raw)
		if err != nil {
			writeError(ctx, w, err)
			return
		}
		level = parsed
	}
	eventKey := r.PathValue("eventKey")

	matches, err := h.offseasonService.HybridSchedule(ctx, eventKey, level)
	if err != nil {
		h.logger.WarnContext(ctx, "off-season schedule failed", "event", eventKey, "level", string(level), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matches)
}

func (h *Handler) OffseasonTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.OffseasonTeams")
	defer span.End()

	eventKey := r.PathValue("eventKey")
	teams, err := h.offseasonService.ListTeams(ctx, eventKey)
	if err != nil {
		h.logger.WarnContext(ctx, "off-season teams failed", "event", eventKey, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teams)
}

func (h *Handler) OffseasonRankings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.OffseasonRankings")
	defer span.End()

	eventKey := r.PathValue("eventKey")
	rankings, err := h.offseasonService.ListRankings(ctx, eventKey)
	if err != nil {
		h.logger.WarnContext(ctx, "off-season rankings failed", "event", eventKey, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, rankings)
}

func (h *Handler) OffseasonAlliances(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.OffseasonAlliances")
	defer span.End()

	eventKey := r.PathValue("eventKey")
	selections, err := h.offseasonService.ListAlliances(ctx, eventKey)
	if err != nil {
		h.logger.WarnContext(ctx, "off-season alliances failed", "event", eventKey, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, selections)
}
