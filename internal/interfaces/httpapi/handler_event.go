package httpapi

import (
	"net/http"
	"strings"
)

func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListEvents")
	defer span.End()

	season, err := h.parseSeason(r.PathValue("season"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	events, err := h.eventService.ListEvents(ctx, season)
	if err != nil {
		h.logger.WarnContext(ctx, "list events failed", "season", season, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, events)
}

func (h *Handler) ListDistricts(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListDistricts")
	defer span.End()

	season, err := h.parseSeason(r.PathValue("season"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	districts, err := h.eventService.ListDistricts(ctx, season)
	if err != nil {
		h.logger.WarnContext(ctx, "list districts failed", "season", season, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, districts)
}

func (h *Handler) ListRankings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListRankings")
	defer span.End()

	season, err := h.parseSeason(r.PathValue("season"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	eventCode := strings.TrimSpace(r.PathValue("eventCode"))

	rankings, err := h.eventService.ListRankings(ctx, season, eventCode)
	if err != nil {
		h.logger.WarnContext(ctx, "list rankings failed", "season", season, "event", eventCode, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, rankings)
}

func (h *Handler) ListAlliances(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListAlliances")
	defer span.End()

	season, err := h.parseSeason(r.PathValue("season"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	eventCode := strings.TrimSpace(r.PathValue("eventCode"))

	selections, err := h.eventService.ListAlliances(ctx, season, eventCode)
	if err != nil {
		h.logger.WarnContext(ctx, "list alliances failed", "season", season, "event", eventCode, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, selections)
}
