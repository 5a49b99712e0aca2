package tile_get

import (
	"net/http"
	"strconv"

	"courier-sync/internal/handlers/rest/response"
	"courier-sync/pkg/logger"

	"github.com/gorilla/mux"
)

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
	zoom, x, y, ok := ParseTileVars(mux.Vars(r))
	if !ok {
		response.BadRequest(w, r, h.log, "tile coordinates must be integers")
		return
	}

	tile, err := h.service.GetTile(r.Context(), zoom, x, y)
	if err != nil {
		response.Error(w, r, h.log, err)
		return
	}

	w.Header().Set("Content-Type", http.DetectContentType(tile.Data))
	w.Header().Set("Cache-Control", "private, max-age=86400")
	w.Header().Set("Last-Modified", tile.FetchedAt.UTC().Format(http.TimeFormat))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(tile.Data); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("write tile response")
	}
}

// ParseTileVars reads the z, x and y route variables.
func ParseTileVars(vars map[string]string) (zoom, x, y int, ok bool) {
	var err error
	if zoom, err = strconv.Atoi(vars["z"]); err != nil {
		return 0, 0, 0, false
	}
	if x, err = strconv.Atoi(vars["x"]); err != nil {
		return 0, 0, 0, false
	}
	if y, err = strconv.Atoi(vars["y"]); err != nil {
		return 0, 0, 0, false
	}
	return zoom, x, y, true
}
