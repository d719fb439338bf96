package assign_delivery_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"herbmart/internal/handlers/rest/dto"
	"herbmart/internal/service/agent"
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

	var req dto.AssignDeliveryRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	orderEntity, err := h.service.AssignOrder(r.Context(), orderID, req.DeliveryID)
	if err != nil {
		switch {
		case errors.Is(err, assignment.ErrInvalidOrderID),
			errors.Is(err, assignment.ErrMissingAgentID):
			writeError(w, http.StatusBadRequest, err)
		case errors.Is(err, order.ErrOrderNotFound),
			errors.Is(err, agent.ErrAgentNotFound):
			writeError(w, http.StatusNotFound, err)
		case errors.Is(err, assignment.ErrOrderCancelled),
			errors.Is(err, assignment.ErrOrderNotApproved),
			errors.Is(err, assignment.ErrOrderAlreadyAssigned),
			errors.Is(err, assignment.ErrDeliveryInProgress):
			writeError(w, http.StatusConflict, err)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(dto.FromOrder(orderEntity))
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
