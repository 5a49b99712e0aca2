package stop_post

import (
	"encoding/json"
	"net/http"

	"courier-sync/internal/entities"
	"courier-sync/internal/generated/dto"
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

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var stopCreateDTO dto.StopCreate
	if err := json.NewDecoder(r.Body).Decode(&stopCreateDTO); err != nil {
		response.BadRequest(w, r, h.log, "invalid JSON body")
		return
	}

	stop, err := h.service.CreateStop(r.Context(), entities.StopCreate{
		Address:      stopCreateDTO.Address,
		Latitude:     stopCreateDTO.Latitude,
		Longitude:    stopCreateDTO.Longitude,
		PackageCount: stopCreateDTO.PackageCount,
	})
	if err != nil {
		response.Error(w, r, h.log, err)
		return
	}

	response.JSON(w, r, h.log, http.StatusCreated, converters.StopToDTO(stop))
}
