package stops_get

import (
	"net/http"

	"courier-sync/internal/handlers/rest/converters"
	"courier-sync/internal/handlers/rest/response"
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

// ServeHTTP never fails: the controller answers an empty list when the store
// is unavailable.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	stops := h.service.ListStops(r.Context())
	response.JSON(w, r, h.log, http.StatusOK, converters.StopsToDTO(stops))
}
