package delivery_status_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"herbmart/internal/entities"
	"herbmart/internal/handlers/rest/dto"
	"herbmart/internal/pkg/auth"
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
	principal, ok := auth.FromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	orderID := mux.Vars(r)["id"]

	var req dto.DeliveryStatusRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	next := entities.DeliveryStatusType(req.Status)

	orderEntity, err := h.service.AdvanceDeliveryStatus(r.Context(), orderID, principal.UserID, next)
	if err != nil {
		switch {
		case errors.Is(err, assignment.ErrInvalidOrderID),
			errors.Is(err, assignment.ErrUndefinedStatus):
			writeError(w, http.StatusBadRequest, err)
		case errors.Is(err, order.ErrOrderNotFound),
			errors.Is(err, agent.ErrAgentNotFound):
			writeError(w, http.StatusNotFound, err)
		case errors.Is(err, assignment.ErrNotAssignee):
			writeError(w, http.StatusForbidden, err)
		case errors.Is(err, assignment.ErrOrderCancelled),
			errors.Is(err, assignment.ErrIllegalTransition):
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
