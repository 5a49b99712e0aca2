package sync_drain_post

import (
	"net/http"

	"courier-sync/internal/handlers/rest/converters"
	"courier-sync/internal/handlers/rest/response"
)

type Handler struct {
	log   handlerLogger
	queue Queue
}

func New(log handlerLogger, queue Queue) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:   handlerLog,
		queue: queue,
	}
}

// ServeHTTP runs a drain in the request. A skipped drain is still a 200 with
// the skip reason in the report.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	report, err := h.queue.Drain(r.Context())
	if err != nil {
		response.Error(w, r, h.log, err)
		return
	}
	response.JSON(w, r, h.log, http.StatusOK, converters.DrainReportToDTO(report))
}
