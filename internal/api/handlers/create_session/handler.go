package create_session

import (
	"net/http"

	"github.com/salaoflow/booking-service/internal/api/handlers"
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

// Handle POST /api/v1/sessions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, err := h.flow.StartSession(r.Context())
	if err != nil {
		h.logger.Error("POST /sessions - Failed to start session: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, handlers.FromSession(session))
}
