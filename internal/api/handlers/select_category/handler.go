package select_category

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
	msgEmptyCategory      = "Categoria é obrigatória"
	msgSessionNotFound    = "Sessão não encontrada"
	msgWrongStep          = "Operação não permitida neste passo"
)

// SelectCategoryRequest тело запроса выбора категории
type SelectCategoryRequest struct {
	Category string `json:"category"`
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

// Handle POST /api/v1/sessions/{id}/category
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req SelectCategoryRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions/%s/category - Invalid request body: %v", id, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	session, err := h.flow.SelectCategory(r.Context(), id, req.Category)
	if err != nil {
		switch {
		case errors.Is(err, bookingflow.ErrEmptyCategory):
			h.logger.Warn("POST /sessions/%s/category - Empty category", id)
			handlers.RespondBadRequest(w, msgEmptyCategory)
		case errors.Is(err, sessionstore.ErrSessionNotFound):
			h.logger.Warn("POST /sessions/%s/category - Session not found", id)
			handlers.RespondNotFound(w, msgSessionNotFound)
		case errors.Is(err, bookingflow.ErrWrongStep):
			h.logger.Warn("POST /sessions/%s/category - Wrong step: %v", id, err)
			handlers.RespondConflict(w, msgWrongStep)
		default:
			h.logger.Error("POST /sessions/%s/category - Failed: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.FromSession(session))
}
