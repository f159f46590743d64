package select_service

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
	msgInvalidRequestBody = "Corpo da requisição inválido"
	msgServiceNotFound    = "Serviço não encontrado"
	msgCategoryMismatch   = "Serviço não pertence à categoria selecionada"
	msgSessionNotFound    = "Sessão não encontrada"
	msgWrongStep          = "Operação não permitida neste passo"
)

// SelectServiceRequest тело запроса выбора услуги
type SelectServiceRequest struct {
	ServiceID string `json:"serviceId"`
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

// Handle POST /api/v1/sessions/{id}/service
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req SelectServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions/%s/service - Invalid request body: %v", id, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	session, err := h.flow.SelectService(r.Context(), id, req.ServiceID)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrServiceNotFound):
			h.logger.Warn("POST /sessions/%s/service - Service %s not found", id, req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)
		case errors.Is(err, bookingflow.ErrServiceCategoryMismatch):
			h.logger.Warn("POST /sessions/%s/service - Service %s outside selected category", id, req.ServiceID)
			handlers.RespondBadRequest(w, msgCategoryMismatch)
		case errors.Is(err, sessionstore.ErrSessionNotFound):
			h.logger.Warn("POST /sessions/%s/service - Session not found", id)
			handlers.RespondNotFound(w, msgSessionNotFound)
		case errors.Is(err, bookingflow.ErrWrongStep):
			h.logger.Warn("POST /sessions/%s/service - Wrong step: %v", id, err)
			handlers.RespondConflict(w, msgWrongStep)
		default:
			h.logger.Error("POST /sessions/%s/service - Failed: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.FromSession(session))
}
