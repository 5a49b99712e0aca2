package stop_status_patch

import (
	"encoding/json"
	"net/http"

	"courier-sync/internal/entities"
	"courier-sync/internal/generated/dto"
	"courier-sync/internal/handlers/rest/converters"
	"courier-sync/internal/handlers/rest/response"
	"courier-sync/pkg/logger"

	"github.com/gorilla/mux"
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
	id := mux.Vars(r)["id"]

	var statusDTO dto.StopStatusUpdate
	if err := json.NewDecoder(r.Body).Decode(&statusDTO); err != nil {
		response.BadRequest(w, r, h.log, "invalid JSON body")
		return
	}

	status := entities.StopStatus(statusDTO.Status)
	if !status.IsValid() {
		response.BadRequest(w, r, h.log, "unknown status")
		return
	}

	stop, err := h.service.UpdateStatus(r.Context(), id, entities.StopStatusUpdate{
		Status:                status,
		DeliveredPackageCount: statusDTO.DeliveredPackageCount,
	})
	if err != nil {
		response.Error(w, r, h.log, err)
		return
	}

	h.log.Info("stop status changed",
		logger.NewField("id", stop.ID),
		logger.NewField("status", stop.Status.String()),
	)
	response.JSON(w, r, h.log, http.StatusOK, converters.StopToDTO(stop))
}
