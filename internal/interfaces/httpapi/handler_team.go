package httpapi

import (
	"net/http"

	"github.com/riskibarqy/frc-scores/internal/domain/team"
)

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeams")
	defer span.End()

	season, err := h.parseSeason(r.PathValue("season"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	query := r.URL.Query()
	teamNumber, err := parsePositiveInt("teamNumber", query.Get("teamNumber"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	listing, err := h.teamService.ListTeams(ctx, team.Query{
		Season:       season,
		EventCode:    query.Get("eventCode"),
		DistrictCode: query.Get("districtCode"),
		TeamNumber:   teamNumber,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "list teams failed", "season", season, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, listing)
}

func (h *Handler) BatchAwards(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.BatchAwards")
	defer span.End()

	season, req, ok := h.decodeTeamBatch(w, r)
	if !ok {
		return
	}

	outcomes, err := h.teamService.BatchAwards(ctx, season, req.TeamNumbers)
	if err != nil {
		h.logger.WarnContext(ctx, "batch awards failed", "season", season, "teams", len(req.TeamNumbers), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, outcomesToDTO(outcomes))
}

func (h *Handler) BatchAvatars(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.BatchAvatars")
	defer span.End()

	season, req, ok := h.decodeTeamBatch(w, r)
	if !ok {
		return
	}

	outcomes, err := h.teamService.BatchAvatars(ctx, season, req.TeamNumbers)
	if err != nil {
		h.logger.WarnContext(ctx, "batch avatars failed", "season", season, "teams", len(req.TeamNumbers), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, outcomesToDTO(outcomes))
}

func (h *Handler) decodeTeamBatch(w http.ResponseWriter, r *http.Request) (int, teamBatchRequest, bool) {
	ctx := r.Context()

	season, err := h.parseSeason(r.PathValue("season"))
	if err != nil {
		writeError(ctx, w, err)
		return 0, teamBatchRequest{}, false
	}

	var req teamBatchRequest
	if err := decodeJSONBody(r, &req); err != nil {
		writeError(ctx, w, err)
		return 0, teamBatchRequest{}, false
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return 0, teamBatchRequest{}, false
	}
	return season, req, true
}
