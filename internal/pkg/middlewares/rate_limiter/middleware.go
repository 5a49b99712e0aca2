package rate_limiter

import (
	"net/http"
	"strconv"

	"courier-sync/pkg/logger"

	"github.com/gorilla/mux"
)

const rejectBody = `{"message":"rate limit exceeded, try again later"}`

// Middleware отвечает 429, когда в лимитере не осталось токенов.
// limitQPS отдается в заголовке X-RateLimit-Limit.
func Middleware(log handlerLogger, limitQPS int, limiter Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if limiter.Allow() {
				next.ServeHTTP(w, r)
				return
			}

			route := r.URL.Path
			if current := mux.CurrentRoute(r); current != nil {
				if template, err := current.GetPathTemplate(); err == nil {
					route = template
				}
			}

			RateLimitExceededTotal.WithLabelValues(r.Method, route).Inc()
			log.With(
				logger.NewField("method", r.Method),
				logger.NewField("route", route),
				logger.NewField("remote_addr", r.RemoteAddr),
			).Warn("rate limit exceeded")

			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(limitQPS))
			w.Header().Set("Retry-After", "1")
			w.WriteHeader(http.StatusTooManyRequests)

			if _, err := w.Write([]byte(rejectBody)); err != nil {
				log.With(logger.NewField("error", err)).Error("write rate limit response")
			}
		})
	}
}
