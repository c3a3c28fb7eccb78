package httpapi

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/riskibarqy/league-api/internal/platform/logging"
	"github.com/riskibarqy/league-api/internal/usecase"
)

// HealthChecker reports whether a dependency is reachable.
type HealthChecker interface {
	PingContext(ctx context.Context) error
}

type Handler struct {
	teamService *usecase.TeamService
	gameService *usecase.GameService
	health      HealthChecker
	logger      *logging.Logger
	routes      []routeDTO
}

func NewHandler(
	teamService *usecase.TeamService,
	gameService *usecase.GameService,
	health HealthChecker,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		teamService: teamService,
		gameService: gameService,
		health:      health,
		logger:      logger,
	}
}

// Index lists the routes the server exposes.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Index")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, h.routes)
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	if h.health != nil {
		if err := h.health.PingContext(ctx); err != nil {
			h.logger.ErrorContext(ctx, "health check failed", "error", err)
			writeJSON(ctx, w, http.StatusServiceUnavailable, googleResponseEnvelope{
				APIVersion: googleAPIVersion,
				Data:       map[string]string{"status": "unavailable"},
			})
			return
		}
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

// NotFound answers every request no route matched.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	writeNotFound(r.Context(), w)
}

// fail writes err and logs it at a level matching its status.
func (h *Handler) fail(ctx context.Context, w http.ResponseWriter, msg string, err error, args ...any) {
	args = append(args, "error", err)
	if mapError(ctx, err).HTTPStatus >= http.StatusInternalServerError && !isValidation(err) {
		h.logger.ErrorContext(ctx, msg, args...)
	} else {
		h.logger.WarnContext(ctx, msg, args...)
	}
	writeError(ctx, w, err)
}

// gameIDFromPath parses {id}. A malformed id is reported as not found,
// the same as an id that does not exist.
func gameIDFromPath(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(r.PathValue("id")), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
