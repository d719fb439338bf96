package nearest_deliveries_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"herbmart/internal/handlers/rest/dto"
	"herbmart/internal/service/assignment"
	"herbmart/internal/service/order"
	"herbmart/pkg/logger"
)

const defaultLimit = 5

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

	limit := defaultLimit
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed <= 0 {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	candidates, err := h.service.NearestCandidates(r.Context(), orderID, limit)
	if err != nil {
		switch {
		case errors.Is(err, assignment.ErrInvalidOrderID):
			writeError(w, http.StatusBadRequest, err)
		case errors.Is(err, order.ErrOrderNotFound):
			writeError(w, http.StatusNotFound, err)
		case errors.Is(err, assignment.ErrOrderNotLocated):
			writeError(w, http.StatusConflict, err)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(dto.FromCandidateList(candidates))
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
