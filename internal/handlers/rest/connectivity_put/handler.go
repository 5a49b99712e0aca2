package connectivity_put

import (
	"encoding/json"
	"net/http"

	"courier-sync/internal/generated/dto"
	"courier-sync/internal/handlers/rest/response"
)

type Handler struct {
	log          handlerLogger
	connectivity Connectivity
}

func New(log handlerLogger, connectivity Connectivity) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:          handlerLog,
		connectivity: connectivity,
	}
}

// ServeHTTP records the connectivity the shell observed. Going online wakes
// the queue drain.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var updateDTO dto.ConnectivityUpdate
	if err := json.NewDecoder(r.Body).Decode(&updateDTO); err != nil {
		response.BadRequest(w, r, h.log, "invalid JSON body")
		return
	}

	h.connectivity.Report(r.Context(), updateDTO.Online)
	w.WriteHeader(http.StatusNoContent)
}
