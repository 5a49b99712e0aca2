package stop_patch

import (
	"encoding/json"
	"net/http"

	"courier-sync/internal/entities"
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
	id := mux.Vars(r)["id"]

	var stopUpdateDTO dto.StopUpdate
	if err := json.NewDecoder(r.Body).Decode(&stopUpdateDTO); err != nil {
		response.BadRequest(w, r, h.log, "invalid JSON body")
		return
	}

	stop, err := h.service.EditStop(r.Context(), id, entities.StopModify{
		Address:      stopUpdateDTO.Address,
		Latitude:     stopUpdateDTO.Latitude,
		Longitude:    stopUpdateDTO.Longitude,
		PackageCount: stopUpdateDTO.PackageCount,
	})
	if err != nil {
		response.Error(w, r, h.log, err)
		return
	}

	response.JSON(w, r, h.log, http.StatusOK, converters.StopToDTO(stop))
}
