package stops_sequence_post

import (
	"encoding/json"
	"net/http"

	"courier-sync/internal/entities"
	"courier-sync/internal/generated/dto"
	"courier-sync/internal/handlers/rest/converters"
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

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var sequenceDTO dto.SequenceRequest
	if err := json.NewDecoder(r.Body).Decode(&sequenceDTO); err != nil {
		response.BadRequest(w, r, h.log, "invalid JSON body")
		return
	}

	req := entities.SequenceRequest{
		Strategy:     entities.SequencingStrategy(sequenceDTO.Strategy),
		PreferServer: pointer.Get(sequenceDTO.PreferServer),
	}
	if sequenceDTO.Start != nil {
		start := converters.CoordinatesFromDTO(*sequenceDTO.Start)
		req.Start = &start
	}

	res, err := h.service.Sequence(r.Context(), req)
	if err != nil {
		response.Error(w, r, h.log, err)
		return
	}

	h.log.Info("stops sequenced",
		logger.NewField("strategy", res.Strategy.String()),
		logger.NewField("source", res.Source),
		logger.NewField("stops", len(res.Stops)),
	)
	response.JSON(w, r, h.log, http.StatusOK, dto.SequenceResponse{
		Strategy: dto.SequencingStrategy(res.Strategy),
		Source:   dto.SequenceResponseSource(res.Source),
		Stops:    converters.StopsToDTO(res.Stops),
	})
}
