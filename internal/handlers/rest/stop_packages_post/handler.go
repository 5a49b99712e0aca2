package stop_packages_post

import (
	"encoding/json"
	"net/http"

	"courier-sync/internal/generated/dto"
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
	var incrementDTO dto.PackageIncrement
	if err := json.NewDecoder(r.Body).Decode(&incrementDTO); err != nil {
		response.BadRequest(w, r, h.log, "invalid JSON body")
		return
	}

	stop, err := h.service.IncrementPackageCount(r.Context(), mux.Vars(r)["id"], incrementDTO.Delta)
	if err != nil {
		response.Error(w, r, h.log, err)
		return
	}
	response.JSON(w, r, h.log, http.StatusOK, converters.StopToDTO(stop))
}
