package itinerary_finalize_post

import (
	"net/http"

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
	itinerary, err := h.service.Finalize(r.Context())
	if err != nil {
		response.Error(w, r, h.log, err)
		return
	}

	h.log.Info("itinerary finalized",
		logger.NewField("id", itinerary.ID),
		logger.NewField("total_earnings", itinerary.TotalEarnings),
	)
	response.JSON(w, r, h.log, http.StatusOK, converters.ItineraryToDTO(itinerary))
}
