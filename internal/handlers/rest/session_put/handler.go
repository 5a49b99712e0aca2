package session_put

import (
	"encoding/json"
	"net/http"

	"courier-sync/internal/entities"
	"courier-sync/internal/generated/dto"
	"courier-sync/internal/handlers/rest/response"
	"courier-sync/pkg/logger"

	"github.com/AlekSi/pointer"
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

// ServeHTTP caches the session used to authorize remote calls. An empty token
// signs out and answers 204. The token is never echoed back.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var sessionDTO dto.SessionUpdate
	if err := json.NewDecoder(r.Body).Decode(&sessionDTO); err != nil {
		response.BadRequest(w, r, h.log, "invalid JSON body")
		return
	}

	session, err := h.service.SetSession(r.Context(), entities.Session{
		UserID:      pointer.Get(sessionDTO.UserId),
		DisplayName: pointer.Get(sessionDTO.DisplayName),
		Token:       sessionDTO.Token,
	})
	if err != nil {
		response.Error(w, r, h.log, err)
		return
	}
	if session == nil {
		h.log.Info("session cleared")
		w.WriteHeader(http.StatusNoContent)
		return
	}

	h.log.Info("session cached", logger.NewField("user_id", session.UserID))
	response.JSON(w, r, h.log, http.StatusOK, dto.Session{
		UserId:      session.UserID,
		DisplayName: session.DisplayName,
		UpdatedAt:   session.UpdatedAt,
	})
}
