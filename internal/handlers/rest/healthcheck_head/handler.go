package healthcheck_head

import (
	"net/http"
	"sync/atomic"
)

// Store reports the applied schema version and fails while the store is closed.
type Store interface {
	Version() (int64, error)
}

type Handler struct {
	isShuttingDown *atomic.Bool
	store          Store
}

func New(isShuttingDown *atomic.Bool, store Store) *Handler {
	return &Handler{
		isShuttingDown: isShuttingDown,
		store:          store,
	}
}

// ServeHTTP answers 204 while the agent accepts work. A shutdown in progress or a
// closed store answers 503.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.isShuttingDown.Load() {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}
	if _, err := h.store.Version(); err != nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
