package auto_assign_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"herbmart/internal/handlers/rest/dto"
	"herbmart/internal/service/assignment"
	"herbmart/internal/service/order"
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
	orderID := mux.Vars(r)["id"]

	result, err := h.service.AutoAssignNearest(r.Context(), orderID)
	if err != nil {
		switch {
		case errors.Is(err, assignment.ErrInvalidOrderID):
			writeError(w, http.StatusBadRequest, err)
		case errors.Is(err, order.ErrOrderNotFound):
			writeError(w, http.StatusNotFound, err)
		case errors.Is(err, assignment.ErrOrderCancelled),
			errors.Is(err, assignment.ErrOrderNotApproved),
			errors.Is(err, assignment.ErrOrderAlreadyAssigned),
			errors.Is(err, assignment.ErrOrderNotLocated),
			errors.Is(err, assignment.ErrNoAvailableAgents):
			writeError(w, http.StatusConflict, err)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	res := dto.AutoAssignResponse{
		Order:    dto.FromOrder(result.Order),
		Delivery: dto.Delivery{Name: result.Agent.Name},
		Distance: result.DistanceKm,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(res)
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
