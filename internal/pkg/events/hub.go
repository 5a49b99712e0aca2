package events

import (
	"sync"

	"courier-sync/internal/entities"
	"courier-sync/pkg/logger"
)

const subscriberBuffer = 32

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
}

// Hub fans events out to subscribers. Publish never blocks: a subscriber whose
// buffer is full misses the event.
type Hub struct {
	log handlerLogger

	mu          sync.RWMutex
	subscribers map[chan entities.Event]struct{}
}

func NewHub(log handlerLogger) *Hub {
	return &Hub{
		log:         log,
		subscribers: make(map[chan entities.Event]struct{}),
	}
}

func (h *Hub) Publish(event entities.Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for ch := range h.subscribers {
		select {
		case ch <- event:
			EventsPublishedTotal.WithLabelValues(string(event.Type), "delivered").Inc()
		default:
			EventsPublishedTotal.WithLabelValues(string(event.Type), "dropped").Inc()
			h.log.Debug("event dropped for slow subscriber", logger.NewField("type", string(event.Type)))
		}
	}
}

// Subscribe returns the event channel and a function that unsubscribes and
// closes it.
func (h *Hub) Subscribe() (<-chan entities.Event, func()) {
	ch := make(chan entities.Event, subscriberBuffer)

	h.mu.Lock()
	h.subscribers[ch] = struct{}{}
	EventSubscribers.Set(float64(len(h.subscribers)))
	h.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subscribers, ch)
			EventSubscribers.Set(float64(len(h.subscribers)))
			h.mu.Unlock()
			close(ch)
		})
	}
}
