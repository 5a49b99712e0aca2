package stop_set_current_post

import (
	"net/http"

	"courier-sync/internal/handlers/rest/converters"
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

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	stop, err := h.service.SetCurrent(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, r, h.log, err)
		return
	}
	response.JSON(w, r, h.log, http.StatusOK, converters.StopToDTO(stop))
}
