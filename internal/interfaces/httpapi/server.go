package httpapi

import (
	"net/http"

	"github.com/riskibarqy/league-api/internal/platform/logging"
)

type RouterOptions struct {
	CORSAllowedOrigins []string
	GamesWriteEnabled  bool
}

func NewRouter(handler *Handler, logger *logging.Logger, opts RouterOptions) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}

	mux := http.NewServeMux()
	routes := newRouteTable(mux)
	registerSystemRoutes(routes, handler)
	registerTeamRoutes(routes, handler)
	registerGameRoutes(routes, handler, opts.GamesWriteEnabled)
	handler.routes = routes.list()
	mux.HandleFunc("/", handler.NotFound)

	return RequestTracing(RequestID(RequestLogging(logger, CORS(opts.CORSAllowedOrigins, recoverPanic(logger, mux)))))
}
