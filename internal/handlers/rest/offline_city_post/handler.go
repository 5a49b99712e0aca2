package offline_city_post

import (
	"encoding/json"
	"net/http"

	"courier-sync/internal/entities"
	"courier-sync/internal/generated/dto"
	"courier-sync/internal/handlers/rest/converters"
	"courier-sync/internal/handlers/rest/response"
	"courier-sync/pkg/logger"
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
	var cityDTO dto.OfflineCityCreate
	if err := json.NewDecoder(r.Body).Decode(&cityDTO); err != nil {
		response.BadRequest(w, r, h.log, "invalid JSON body")
		return
	}

	city, err := h.service.RegisterCity(r.Context(), entities.OfflineCity{
		Name:    cityDTO.Name,
		Bounds:  converters.PolygonFromDTO(cityDTO.Bounds),
		MinZoom: cityDTO.MinZoom,
		MaxZoom: cityDTO.MaxZoom,
	})
	if err != nil {
		response.Error(w, r, h.log, err)
		return
	}

	h.log.Info("offline city registered",
		logger.NewField("name", city.Name),
		logger.NewField("tiles", city.TileCount),
	)
	response.JSON(w, r, h.log, http.StatusCreated, converters.CityToDTO(city))
}
