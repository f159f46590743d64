package select_professional

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/salaoflow/booking-service/internal/api/handlers"
	"github.com/salaoflow/booking-service/internal/infra/sessionstore"
	"github.com/salaoflow/booking-service/internal/service/bookingflow"
	"github.com/salaoflow/booking-service/internal/service/catalog"
)

const (
	msgInvalidRequestBody   = "Corpo da requisição inválido"
	msgProfessionalNotFound = "Profissional não encontrado"
	msgSessionNotFound      = "Sessão não encontrada"
	msgWrongStep            = "Operação não permitida neste passo"
)

// SelectProfessionalRequest тело запроса выбора мастера
type SelectProfessionalRequest struct {
	ProfessionalID string `json:"professionalId"`
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

// Handle POST /api/v1/sessions/{id}/professional
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req SelectProfessionalRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions/%s/professional - Invalid request body: %v", id, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	session, err := h.flow.SelectProfessional(r.Context(), id, req.ProfessionalID)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrProfessionalNotFound):
			h.logger.Warn("POST /sessions/%s/professional - Professional %s not found", id, req.ProfessionalID)
			handlers.RespondNotFound(w, msgProfessionalNotFound)
		case errors.Is(err, sessionstore.ErrSessionNotFound):
			h.logger.Warn("POST /sessions/%s/professional - Session not found", id)
			handlers.RespondNotFound(w, msgSessionNotFound)
		case errors.Is(err, bookingflow.ErrWrongStep):
			h.logger.Warn("POST /sessions/%s/professional - Wrong step: %v", id, err)
			handlers.RespondConflict(w, msgWrongStep)
		default:
			h.logger.Error("POST /sessions/%s/professional - Failed: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.FromSession(session))
}
