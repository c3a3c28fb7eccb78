package httpapi

import (
	"net/http"

	"github.com/riskibarqy/league-api/internal/usecase"
)

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeams")
	defer span.End()

	teams, err := h.teamService.List(ctx)
	if err != nil {
		h.fail(ctx, w, "list teams failed", err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamsToDTO(teams))
}

func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeam")
	defer span.End()

	slug := r.PathValue("slug")
	item, err := h.teamService.Get(ctx, slug)
	if err != nil {
		h.fail(ctx, w, "get team failed", err, "slug", slug)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamToDTO(item))
}

func (h *Handler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateTeam")
	defer span.End()

	var req usecase.CreateTeamInput
	if err := decodeBody(w, r, teamBodyShape, &req); err != nil {
		h.fail(ctx, w, "decode create team failed", err)
		return
	}

	created, err := h.teamService.Create(ctx, req)
	if err != nil {
		h.fail(ctx, w, "create team failed", err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, teamToDTO(created))
}

func (h *Handler) UpdateTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateTeam")
	defer span.End()

	slug := r.PathValue("slug")
	var req usecase.UpdateTeamInput
	if err := decodeBody(w, r, teamBodyShape, &req); err != nil {
		h.fail(ctx, w, "decode update team failed", err, "slug", slug)
		return
	}

	updated, err := h.teamService.Update(ctx, slug, req)
	if err != nil {
		h.fail(ctx, w, "update team failed", err, "slug", slug)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamToDTO(updated))
}

func (h *Handler) DeleteTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteTeam")
	defer span.End()

	slug := r.PathValue("slug")
	if err := h.teamService.Delete(ctx, slug); err != nil {
		h.fail(ctx, w, "delete team failed", err, "slug", slug)
		return
	}

	writeNoContent(w)
}

func (h *Handler) ListTeamGames(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeamGames")
	defer span.End()

	slug := r.PathValue("slug")
	games, err := h.teamService.ListGames(ctx, slug)
	if err != nil {
		h.fail(ctx, w, "list team games failed", err, "slug", slug)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, gamesToDTO(games))
}
