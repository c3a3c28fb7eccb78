package httpapi

import (
	"net/http"
	"strings"
)

type routeTable struct {
	mux    *http.ServeMux
	routes []routeDTO
}

func newRouteTable(mux *http.ServeMux) *routeTable {
	return &routeTable{mux: mux}
}

// handle registers pattern ("METHOD /path") and records it for the index.
func (t *routeTable) handle(pattern string, fn http.HandlerFunc) {
	t.mux.HandleFunc(pattern, fn)

	method, path, _ := strings.Cut(pattern, " ")
	t.routes = append(t.routes, routeDTO{
		Method: method,
		Path:   strings.TrimSuffix(path, "{$}"),
	})
}

func (t *routeTable) list() []routeDTO {
	return append([]routeDTO(nil), t.routes...)
}

func registerSystemRoutes(routes *routeTable, handler *Handler) {
	routes.handle("GET /{$}", handler.Index)
	routes.handle("GET /healthz", handler.Healthz)
}

func registerTeamRoutes(routes *routeTable, handler *Handler) {
	routes.handle("GET /teams", handler.ListTeams)
	routes.handle("POST /teams", handler.CreateTeam)
	routes.handle("GET /teams/{slug}", handler.GetTeam)
	routes.handle("PATCH /teams/{slug}", handler.UpdateTeam)
	routes.handle("DELETE /teams/{slug}", handler.DeleteTeam)
	routes.handle("GET /teams/{slug}/games", handler.ListTeamGames)
}

func registerGameRoutes(routes *routeTable, handler *Handler, writeEnabled bool) {
	routes.handle("GET /games", handler.ListGames)
	routes.handle("GET /games/{id}", handler.GetGame)
	if !writeEnabled {
		return
	}

	routes.handle("POST /games", handler.CreateGame)
	routes.handle("PATCH /games/{id}", handler.UpdateGame)
	routes.handle("DELETE /games/{id}", handler.DeleteGame)
}
