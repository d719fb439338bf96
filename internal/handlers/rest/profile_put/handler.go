package profile_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"herbmart/internal/entities"
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

	var req dto.ProfileRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	agentEntity, err := h.service.GetAgentByUserID(r.Context(), principal.UserID)
	if err != nil {
		switch {
		case errors.Is(err, agent.ErrAgentNotFound):
			writeError(w, http.StatusNotFound, err)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	agentModify := entities.AgentModify{
		ID:    &agentEntity.ID,
		Name:  req.Name,
		Email: req.Email,
	}

	updated, err := h.service.UpdateProfile(r.Context(), agentModify)
	if err != nil {
		switch {
		case errors.Is(err, agent.ErrInvalidName),
			errors.Is(err, agent.ErrInvalidEmail),
			errors.Is(err, agent.ErrMissingRequiredFields):
			writeError(w, http.StatusBadRequest, err)
		case errors.Is(err, agent.ErrAgentNotFound):
			writeError(w, http.StatusNotFound, err)
		case errors.Is(err, agent.ErrConflict):
			writeError(w, http.StatusConflict, err)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(dto.FromAgent(updated))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(dto.Error{Error: err.Error()})
}
