package location_put

import (
	"encoding/json"
	"net/http"

	"courier-sync/internal/entities"
	"courier-sync/internal/generated/dto"
	"courier-sync/internal/handlers/rest/response"

	"github.com/AlekSi/pointer"
)

type Handler struct {
	log     handlerLogger
	tracker Tracker
}

func New(log handlerLogger, tracker Tracker) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		tracker: tracker,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var locationDTO dto.LocationUpdate
	if err := json.NewDecoder(r.Body).Decode(&locationDTO); err != nil {
		response.BadRequest(w, r, h.log, "invalid JSON body")
		return
	}

	location := entities.DeviceLocation{
		Coordinates: entities.Coordinates{
			Latitude:  locationDTO.Latitude,
			Longitude: locationDTO.Longitude,
		},
		Accuracy:   pointer.Get(locationDTO.Accuracy),
		RecordedAt: pointer.Get(locationDTO.RecordedAt),
	}
	if err := h.tracker.Report(r.Context(), location); err != nil {
		response.Error(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
