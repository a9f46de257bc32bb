package httpapi

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/frc-scores/internal/domain/match"
	"github.com/riskibarqy/frc-scores/internal/platform/fanout"
	"github.com/riskibarqy/frc-scores/internal/platform/logging"
	"github.com/riskibarqy/frc-scores/internal/usecase"
)

type Handler struct {
	scheduleService  *usecase.ScheduleService
	offseasonService *usecase.OffseasonService
	highScoreService *usecase.HighScoreService
	teamService      *usecase.TeamService
	eventService     *usecase.EventService
	statsService     *usecase.StatsService
	currentSeason    int
	logger           *logging.Logger
	validator        *validator.Validate
}

type HandlerConfig struct {
	ScheduleService  *usecase.ScheduleService
	OffseasonService *usecase.OffseasonService
	HighScoreService *usecase.HighScoreService
	TeamService      *usecase.TeamService
	EventService     *usecase.EventService
	StatsService     *usecase.StatsService
	CurrentSeason    int
	Logger           *logging.Logger
}

func NewHandler(cfg HandlerConfig) *Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		scheduleService:  cfg.ScheduleService,
		offseasonService: cfg.OffseasonService,
		highScoreService: cfg.HighScoreService,
		teamService:      cfg.TeamService,
		eventService:     cfg.EventService,
		statsService:     cfg.StatsService,
		currentSeason:    cfg.CurrentSeason,
		logger:           logger.Named("httpapi"),
		validator:        validator.New(),
	}
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// parseSeason accepts a four digit year or "current".
func (h *Handler) parseSeason(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if strings.EqualFold(raw, "current") || raw == "" {
		if h.currentSeason <= 0 {
			return 0, fmt.Errorf("%w: current season is not configured", usecase.ErrInvalidInput)
		}
		return h.currentSeason, nil
	}

	season, err := strconv.Atoi(raw)
	if err != nil || season < 1992 || season > 9999 {
		return 0, fmt.Errorf("%w: invalid season %q", usecase.ErrInvalidInput, raw)
	}
	return season, nil
}

// parseLevel defaults to qualification when raw is empty.
func parseLevel(raw string) (match.TournamentLevel, error) {
	if strings.TrimSpace(raw) == "" {
		return match.LevelQualification, nil
	}
	level, ok := match.ParseLevel(raw)
	if !ok {
		return "", fmt.Errorf("%w: invalid tournament level %q", usecase.ErrInvalidInput, raw)
	}
	return level, nil
}

func parsePositiveInt(name, raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", usecase.ErrInvalidInput, name)
	}
	return v, nil
}

const maxRequestBodyBytes = 1 << 20

var strictJSON = sonic.Config{DisallowUnknownFields: true}.Froze()

// decodeJSONBody leaves target untouched for an empty body.
func decodeJSONBody(r *http.Request, target any) error {
	raw, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBodyBytes))
	if err != nil {
		return fmt.Errorf("%w: read request body: %v", usecase.ErrInvalidInput, err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := strictJSON.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}

type teamBatchRequest struct {
	TeamNumbers []int `json:"teamNumbers" validate:"required,min=1,max=200,dive,gt=0"`
}

type recomputeHighScoresRequest struct {
	Season int `json:"season" validate:"omitempty,gte=1992,lte=9999"`
}

type outcomeDTO[T any] struct {
	Status string `json:"status"`
	Data   *T     `json:"data,omitempty"`
	Error  string `json:"error,omitempty"`
}

func outcomesToDTO[T any](items map[int]fanout.Outcome[T]) map[string]outcomeDTO[T] {
	out := make(map[string]outcomeDTO[T], len(items))
	for number, item := range items {
		dto := outcomeDTO[T]{Status: string(item.Status)}
		switch item.Status {
		case fanout.StatusOK:
			value := item.Value
			dto.Data = &value
		case fanout.StatusFailed:
			if item.Err != nil {
				dto.Error = item.Err.Error()
			}
		}
		out[strconv.Itoa(number)] = dto
	}
	return out
}
