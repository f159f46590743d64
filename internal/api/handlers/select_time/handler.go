package select_time

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/salaoflow/booking-service/internal/api/handlers"
	"github.com/salaoflow/booking-service/internal/infra/sessionstore"
	"github.com/salaoflow/booking-service/internal/service/bookingflow"
	"github.com/salaoflow/booking-service/pkg/types"
)

const (
	msgInvalidRequestBody = "Corpo da requisição inválido"
	msgSlotNotBookable    = "Horário fora do expediente"
	msgSessionNotFound    = "Sessão não encontrada"
	msgWrongStep          = "Operação não permitida neste passo"
)

// SelectTimeRequest тело запроса выбора времени
type SelectTimeRequest struct {
	Time string `json:"time"` // HH:MM
}

type Handler struct {
	flow   BookingFlowService
	logger Logger
}

func NewHandler(flow BookingFlowService, logger Logger) *Handler {
	return &Handler{
		flow:   flow,
		logger: logger,
	}
}

// Handle POST /api/v1/sessions/{id}/time
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req SelectTimeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions/%s/time - Invalid request body: %v", id, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	session, err := h.flow.SelectTime(r.Context(), id, types.TimeString(req.Time))
	if err != nil {
		switch {
		case errors.Is(err, bookingflow.ErrSlotNotBookable):
			h.logger.Warn("POST /sessions/%s/time - Slot %q not bookable", id, req.Time)
			handlers.RespondBadRequest(w, msgSlotNotBookable)
		case errors.Is(err, sessionstore.ErrSessionNotFound):
			h.logger.Warn("POST /sessions/%s/time - Session not found", id)
			handlers.RespondNotFound(w, msgSessionNotFound)
		case errors.Is(err, bookingflow.ErrWrongStep):
			h.logger.Warn("POST /sessions/%s/time - Wrong step: %v", id, err)
			handlers.RespondConflict(w, msgWrongStep)
		default:
			h.logger.Error("POST /sessions/%s/time - Failed: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.FromSession(session))
}
