package get_session

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/salaoflow/booking-service/internal/api/handlers"
	"github.com/salaoflow/booking-service/internal/infra/sessionstore"
)

const msgSessionNotFound = "Sessão não encontrada"

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

// Handle GET /api/v1/sessions/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	session, err := h.flow.GetSession(r.Context(), id)
	if err != nil {
		if errors.Is(err, sessionstore.ErrSessionNotFound) {
			h.logger.Warn("GET /sessions/%s - Session not found", id)
			handlers.RespondNotFound(w, msgSessionNotFound)
			return
		}
		h.logger.Error("GET /sessions/%s - Failed to get session: %v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.FromSession(session))
}
