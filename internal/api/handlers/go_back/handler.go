package go_back

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/salaoflow/booking-service/internal/api/handlers"
	"github.com/salaoflow/booking-service/internal/infra/sessionstore"
	"github.com/salaoflow/booking-service/internal/service/bookingflow"
)

const (
	msgSessionNotFound = "Sessão não encontrada"
	msgWrongStep       = "Operação não permitida neste passo"
)

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

// Handle POST /api/v1/sessions/{id}/back
// Возврат из меню или с шага успеха завершает сессию: ответ 204
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	session, err := h.flow.GoBack(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, sessionstore.ErrSessionNotFound):
			h.logger.Warn("POST /sessions/%s/back - Session not found", id)
			handlers.RespondNotFound(w, msgSessionNotFound)
		case errors.Is(err, bookingflow.ErrWrongStep):
			h.logger.Warn("POST /sessions/%s/back - Wrong step: %v", id, err)
			handlers.RespondConflict(w, msgWrongStep)
		default:
			h.logger.Error("POST /sessions/%s/back - Failed: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	if session == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.FromSession(session))
}
