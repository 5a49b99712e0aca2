package connectivity

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"courier-sync/internal/entities"
	"courier-sync/pkg/logger"
)

// Listener is called on every offline to online transition. It runs on the
// reporting goroutine and must not block.
type Listener func(ctx context.Context)

type Monitor struct {
	prober    Prober
	publisher Publisher
	log       handlerLogger
	interval  time.Duration

	online atomic.Bool

	mu        sync.RWMutex
	listeners []Listener
}

// New starts offline; the first probe or report settles the state.
func New(prober Prober, publisher Publisher, log handlerLogger, interval time.Duration) *Monitor {
	return &Monitor{
		prober:    prober,
		publisher: publisher,
		log:       log,
		interval:  interval,
	}
}

func (m *Monitor) IsOnline() bool {
	return m.online.Load()
}

func (m *Monitor) Subscribe(listener Listener) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.listeners = append(m.listeners, listener)
}

// Report records the connectivity state. Repeated reports of the same state are ignored.
func (m *Monitor) Report(ctx context.Context, online bool) {
	if m.online.Swap(online) == online {
		return
	}

	m.log.Info("connectivity changed", logger.NewField("online", online))
	m.publisher.Publish(entities.Event{
		Type:    entities.EventConnectivityChanged,
		At:      time.Now().UTC(),
		Payload: map[string]bool{"online": online},
	})
	MonitorOnline.Set(boolToFloat(online))

	if !online {
		return
	}

	m.mu.RLock()
	listeners := make([]Listener, len(m.listeners))
	copy(listeners, m.listeners)
	m.mu.RUnlock()

	for _, listener := range listeners {
		listener(ctx)
	}
}

func (m *Monitor) TTL() time.Duration {
	return m.interval
}

func (m *Monitor) Info() string {
	return "connectivity probe"
}

// Do probes the remote once. Being offline is a state, not a task failure.
func (m *Monitor) Do(ctx context.Context) error {
	err := m.prober.Ping(ctx)
	if ctx.Err() != nil {
		return nil
	}
	if err != nil && m.IsOnline() {
		m.log.Warn("remote unreachable", logger.NewField("error", err))
	}

	m.Report(ctx, err == nil)
	return nil
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
