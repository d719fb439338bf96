package availability_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"herbmart/internal/handlers/rest/dto"
	"herbmart/internal/pkg/auth"
	"herbmart/internal/service/agent"
	"herbmart/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		service: service,
		log:     handlerLog,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.FromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	agentEntity, err := h.service.ToggleAvailability(r.Context(), principal.UserID)
	if err != nil {
		switch {
		case errors.Is(err, agent.ErrAgentNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, agent.ErrInvalidUserID):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(dto.FromAgent(agentEntity))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
