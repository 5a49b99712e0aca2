package itinerary_post

import (
	"encoding/json"
	"net/http"
	"time"

	"courier-sync/internal/entities"
	"courier-sync/internal/generated/dto"
	"courier-sync/internal/handlers/rest/converters"
	"courier-sync/internal/handlers/rest/response"
	"courier-sync/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
	now     func() time.Time
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
		now:     time.Now,
	}
}

// ServeHTTP creates the route. A missing date means today.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var itineraryDTO dto.ItineraryCreate
	if err := json.NewDecoder(r.Body).Decode(&itineraryDTO); err != nil {
		response.BadRequest(w, r, h.log, "invalid JSON body")
		return
	}

	date := h.now()
	if itineraryDTO.Date != "" {
		parsed, err := time.Parse(entities.ItineraryDateLayout, itineraryDTO.Date)
		if err != nil {
			response.BadRequest(w, r, h.log, "date must be YYYY-MM-DD")
			return
		}
		date = parsed
	}

	itinerary, err := h.service.Create(r.Context(), itineraryDTO.Name, date)
	if err != nil {
		response.Error(w, r, h.log, err)
		return
	}

	h.log.Info("itinerary created",
		logger.NewField("id", itinerary.ID),
		logger.NewField("date", itinerary.Date.Format(entities.ItineraryDateLayout)),
	)
	response.JSON(w, r, h.log, http.StatusCreated, converters.ItineraryToDTO(itinerary))
}
