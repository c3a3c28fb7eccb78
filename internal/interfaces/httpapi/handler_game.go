package httpapi

import (
	"net/http"

	"github.com/riskibarqy/league-api/internal/usecase"
)

func (h *Handler) ListGames(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListGames")
	defer span.End()

	games, err := h.gameService.List(ctx)
	if err != nil {
		h.fail(ctx, w, "list games failed", err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, gamesToDTO(games))
}

func (h *Handler) GetGame(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetGame")
	defer span.End()

	id, ok := gameIDFromPath(r)
	if !ok {
		writeNotFound(ctx, w)
		return
	}

	item, err := h.gameService.Get(ctx, id)
	if err != nil {
		h.fail(ctx, w, "get game failed", err, "game_id", id)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, gameToDTO(item))
}

func (h *Handler) CreateGame(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateGame")
	defer span.End()

	var req usecase.CreateGameInput
	if err := decodeBody(w, r, gameBodyShape, &req); err != nil {
		h.fail(ctx, w, "decode create game failed", err)
		return
	}

	created, err := h.gameService.Create(ctx, req)
	if err != nil {
		h.fail(ctx, w, "create game failed", err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, gameToDTO(created))
}

func (h *Handler) UpdateGame(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateGame")
	defer span.End()

	id, ok := gameIDFromPath(r)
	if !ok {
		writeNotFound(ctx, w)
		return
	}

	var req usecase.UpdateGameInput
	if err := decodeBody(w, r, gameBodyShape, &req); err != nil {
		h.fail(ctx, w, "decode update game failed", err, "game_id", id)
		return
	}

	updated, err := h.gameService.Update(ctx, id, req)
	if err != nil {
		h.fail(ctx, w, "update game failed", err, "game_id", id)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, gameToDTO(updated))
}

func (h *Handler) DeleteGame(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteGame")
	defer span.End()

	id, ok := gameIDFromPath(r)
	if !ok {
		writeNotFound(ctx, w)
		return
	}

	if err := h.gameService.Delete(ctx, id); err != nil {
		h.fail(ctx, w, "delete game failed", err, "game_id", id)
		return
	}

	writeNoContent(w)
}
