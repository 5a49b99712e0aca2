package tile_put

import (
	"io"
	"net/http"

	"courier-sync/internal/handlers/rest/response"
	"courier-sync/internal/handlers/rest/tile_get"

	"github.com/gorilla/mux"
)

const maxTileBody = 1<<20 + 1

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	zoom, x, y, ok := tile_get.ParseTileVars(mux.Vars(r))
	if !ok {
		response.BadRequest(w, r, h.log, "tile coordinates must be integers")
		return
	}

	data, err := io.ReadAll(io.LimitReader(r.Body, maxTileBody))
	if err != nil {
		response.BadRequest(w, r, h.log, "unreadable body")
		return
	}

	if _, err := h.service.SaveTile(r.Context(), zoom, x, y, data); err != nil {
		response.Error(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
