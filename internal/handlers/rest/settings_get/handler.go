package settings_get

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

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	settings, err := h.service.Get(r.Context())
	if err != nil {
		response.Error(w, r, h.log, err)
		return
	}
	response.JSON(w, r, h.log, http.StatusOK, converters.SettingsToDTO(settings))
}
