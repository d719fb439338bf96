package location_put

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

	var req dto.LocationRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	location := entities.GeoPoint{
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	}

	agentEntity, err := h.service.UpdateLocation(r.Context(), principal.UserID, location)
	if err != nil {
		switch {
		case errors.Is(err, agent.ErrInvalidLatitude),
			errors.Is(err, agent.ErrInvalidLongitude):
			writeError(w, http.StatusBadRequest, err)
		case errors.Is(err, agent.ErrAgentNotFound):
			writeError(w, http.StatusNotFound, err)
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

func writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(dto.Error{Error: err.Error()})
}
