package select_date

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/salaoflow/booking-service/internal/api/handlers"
	"github.com/salaoflow/booking-service/internal/infra/sessionstore"
	"github.com/salaoflow/booking-service/internal/service/bookingflow"
)

const (
	msgInvalidRequestBody = "Corpo da requisição inválido"
	msgInvalidDate        = "Formato de data inválido, use YYYY-MM-DD"
	msgDateInPast         = "Não é possível agendar em datas passadas"
	msgSessionNotFound    = "Sessão não encontrada"
	msgWrongStep          = "Operação não permitida neste passo"
)

// SelectDateRequest тело запроса выбора даты
type SelectDateRequest struct {
	Date string `json:"date"` // YYYY-MM-DD
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

// Handle POST /api/v1/sessions/{id}/date
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req SelectDateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions/%s/date - Invalid request body: %v", id, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	session, err := h.flow.SelectDate(r.Context(), id, req.Date)
	if err != nil {
		switch {
		case errors.Is(err, bookingflow.ErrInvalidDate):
			h.logger.Warn("POST /sessions/%s/date - Invalid date %q", id, req.Date)
			handlers.RespondBadRequest(w, msgInvalidDate)
		case errors.Is(err, bookingflow.ErrDateInPast):
			h.logger.Warn("POST /sessions/%s/date - Date %s in the past", id, req.Date)
			handlers.RespondBadRequest(w, msgDateInPast)
		case errors.Is(err, sessionstore.ErrSessionNotFound):
			h.logger.Warn("POST /sessions/%s/date - Session not found", id)
			handlers.RespondNotFound(w, msgSessionNotFound)
		case errors.Is(err, bookingflow.ErrWrongStep):
			h.logger.Warn("POST /sessions/%s/date - Wrong step: %v", id, err)
			handlers.RespondConflict(w, msgWrongStep)
		default:
			h.logger.Error("POST /sessions/%s/date - Failed: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.FromSession(session))
}
