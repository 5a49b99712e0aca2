package sectors_get

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
	sectors, err := h.service.ListSectors(r.Context())
	if err != nil {
		response.Error(w, r, h.log, err)
		return
	}

	res := make([]dto.Sector, 0, len(sectors))
	for i := range sectors {
		res = append(res, converters.SectorToDTO(&sectors[i]))
	}
	response.JSON(w, r, h.log, http.StatusOK, res)
}
