package ping_get

import (
	"net/http"

	"courier-sync/internal/generated/dto"
	"courier-sync/internal/handlers/rest/response"

	"github.com/AlekSi/pointer"
)

const pong = "pong"

type Handler struct {
	log handlerLogger
}

func New(log handlerLogger) *Handler {
	handlerLog := log.With()

	return &Handler{
		log: handlerLog,
	}
}

// ServeHTTP answers liveness probes from the UI shell without touching the store.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, r, h.log, http.StatusOK, dto.PingResponse{
		Message: pointer.To(pong),
	})
}
