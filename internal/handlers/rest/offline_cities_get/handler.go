package offline_cities_get

import (
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
	cities, err := h.service.ListCities(r.Context())
	if err != nil {
		response.Error(w, r, h.log, err)
		return
	}

	res := make([]dto.OfflineCity, 0, len(cities))
	for i := range cities {
		res = append(res, converters.CityToDTO(&cities[i]))
	}
	response.JSON(w, r, h.log, http.StatusOK, res)
}
