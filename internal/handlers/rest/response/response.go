package response

import (
	"encoding/json"
	"net/http"

	"courier-sync/internal/generated/dto"
	"courier-sync/pkg/logger"
)

type errorLogger interface {
	Error(msg string, fields ...logger.Field)
}

func JSON(w http.ResponseWriter, r *http.Request, log errorLogger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("encode JSON response",
			logger.NewField("method", r.Method),
			logger.NewField("path", r.URL.Path),
			logger.NewField("error", err),
		)
	}
}

// Error writes err with the status StatusOf assigns to it. Unclassified
// errors are logged and their text is not exposed.
func Error(w http.ResponseWriter, r *http.Request, log errorLogger, err error) {
	status := StatusOf(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		log.Error("request failed",
			logger.NewField("method", r.Method),
			logger.NewField("path", r.URL.Path),
			logger.NewField("error", err),
		)
		message = http.StatusText(status)
	}
	JSON(w, r, log, status, dto.Error{Message: message})
}

func BadRequest(w http.ResponseWriter, r *http.Request, log errorLogger, message string) {
	JSON(w, r, log, http.StatusBadRequest, dto.Error{Message: message})
}
