package sync_status_get

import (
	"net/http"

	"courier-sync/internal/entities"
	"courier-sync/internal/handlers/rest/converters"
	"courier-sync/internal/handlers/rest/response"
)

type Handler struct {
	log          handlerLogger
	queue        Queue
	connectivity Connectivity
}

func New(log handlerLogger, queue Queue, connectivity Connectivity) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:          handlerLog,
		queue:        queue,
		connectivity: connectivity,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	items, err := h.queue.Pending(r.Context())
	if err != nil {
		response.Error(w, r, h.log, err)
		return
	}

	state := entities.SyncState{
		Online:      h.connectivity.IsOnline(),
		Draining:    h.queue.IsDraining(),
		QueueLength: len(items),
		Items:       items,
	}
	response.JSON(w, r, h.log, http.StatusOK, converters.SyncStateToDTO(&state))
}
