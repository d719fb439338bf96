package leave_delete

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"herbmart/internal/handlers/rest/dto"
	"herbmart/internal/pkg/auth"
	"herbmart/internal/service/agent"
	"herbmart/internal/service/leave"
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

	idStr := mux.Vars(r)["id"]
	leaveID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	leaveEntity, err := h.service.CancelLeave(r.Context(), principal.UserID, leaveID)
	if err != nil {
		switch {
		case errors.Is(err, leave.ErrInvalidLeaveID):
			writeError(w, http.StatusBadRequest, err)
		case errors.Is(err, leave.ErrLeaveNotFound),
			errors.Is(err, agent.ErrAgentNotFound):
			writeError(w, http.StatusNotFound, err)
		case errors.Is(err, leave.ErrNotLeaveOwner):
			writeError(w, http.StatusForbidden, err)
		case errors.Is(err, leave.ErrLeaveNotPending):
			writeError(w, http.StatusConflict, err)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(dto.FromLeave(leaveEntity))
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
