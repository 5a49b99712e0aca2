package stop_delete

import (
	"net/http"

	"courier-sync/internal/handlers/rest/response"

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

// ServeHTTP answers 204 for a stop that is already gone.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteStop(r.Context(), mux.Vars(r)["id"]); err != nil {
		response.Error(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
