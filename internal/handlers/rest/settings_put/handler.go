package settings_put

import (
	"encoding/json"
	"net/http"

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
	var settingsDTO dto.Settings
	if err := json.NewDecoder(r.Body).Decode(&settingsDTO); err != nil {
		response.BadRequest(w, r, h.log, "invalid JSON body")
		return
	}

	settings, err := h.service.Update(r.Context(), converters.SettingsFromDTO(settingsDTO))
	if err != nil {
		response.Error(w, r, h.log, err)
		return
	}
	response.JSON(w, r, h.log, http.StatusOK, converters.SettingsToDTO(settings))
}
