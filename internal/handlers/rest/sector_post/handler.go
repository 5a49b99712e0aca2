package sector_post

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
	var sectorDTO dto.SectorCreate
	if err := json.NewDecoder(r.Body).Decode(&sectorDTO); err != nil {
		response.BadRequest(w, r, h.log, "invalid JSON body")
		return
	}

	sector, err := h.service.CreateSector(r.Context(), sectorDTO.Name, converters.PolygonFromDTO(sectorDTO.Polygon))
	if err != nil {
		response.Error(w, r, h.log, err)
		return
	}
	response.JSON(w, r, h.log, http.StatusCreated, converters.SectorToDTO(sector))
}
