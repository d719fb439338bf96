package leave_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"herbmart/internal/entities"
	"herbmart/internal/handlers/rest/dto"
	"herbmart/internal/pkg/auth"
	"herbmart/internal/service/agent"
	"herbmart/internal/service/leave"
	"herbmart/pkg/logger"
)

var errInvalidDate = errors.New("dates must use the yyyy-mm-dd format")

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

	var req dto.LeaveRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	startDate, err := dto.ParseDate(req.StartDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, errInvalidDate)
		return
	}
	endDate, err := dto.ParseDate(req.EndDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, errInvalidDate)
		return
	}

	application := entities.LeaveApplication{
		Type:        entities.LeaveType(req.Type),
		Reason:      req.Reason,
		Description: req.Description,
		StartDate:   startDate,
		EndDate:     endDate,
	}

	leaveEntity, err := h.service.ApplyForLeave(r.Context(), principal.UserID, application)
	if err != nil {
		switch {
		case errors.Is(err, leave.ErrInvalidLeaveType),
			errors.Is(err, leave.ErrReasonTooShort),
			errors.Is(err, leave.ErrDescriptionTooShort),
			errors.Is(err, leave.ErrStartDateInPast),
			errors.Is(err, leave.ErrEndBeforeStart):
			writeError(w, http.StatusBadRequest, err)
		case errors.Is(err, agent.ErrAgentNotFound):
			writeError(w, http.StatusNotFound, err)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
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
