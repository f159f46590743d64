package confirm_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/salaoflow/booking-service/internal/api/handlers"
	confirmBooking "github.com/salaoflow/booking-service/internal/usecase/confirm_booking"
)

const (
	msgInvalidRequestBody = "Corpo da requisição inválido"
	msgSessionNotFound    = "Sessão não encontrada"
	msgWrongStep          = "Confirmação disponível apenas no checkout"
	msgAlreadySubmitting  = "Confirmação já está em andamento"
	msgIncompleteDraft    = "Complete todas as seleções antes de confirmar"
	msgMissingContactInfo = "Informe nome e telefone para confirmar"
	msgSuperseded         = "A sessão mudou durante a confirmação"
)

// ConfirmBookingRequest тело запроса подтверждения записи
type ConfirmBookingRequest struct {
	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`
}

type Handler struct {
	useCase ConfirmBookingUseCase
	logger  Logger
}

func NewHandler(useCase ConfirmBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/sessions/{id}/confirm
// Исход commit отражается шагом сессии в ответе: success или failure
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req ConfirmBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions/%s/confirm - Invalid request body: %v", id, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &confirmBooking.Request{
		SessionID:     id,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
	})
	if err != nil {
		switch {
		case errors.Is(err, confirmBooking.ErrSessionNotFound):
			h.logger.Warn("POST /sessions/%s/confirm - Session not found", id)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, confirmBooking.ErrWrongStep):
			h.logger.Warn("POST /sessions/%s/confirm - Wrong step", id)
			handlers.RespondConflict(w, msgWrongStep)

		case errors.Is(err, confirmBooking.ErrAlreadySubmitting):
			h.logger.Warn("POST /sessions/%s/confirm - Already submitting", id)
			handlers.RespondConflict(w, msgAlreadySubmitting)

		case errors.Is(err, confirmBooking.ErrIncompleteDraft):
			h.logger.Warn("POST /sessions/%s/confirm - Incomplete draft: %v", id, err)
			handlers.RespondBadRequest(w, msgIncompleteDraft)

		case errors.Is(err, confirmBooking.ErrMissingContactInfo):
			h.logger.Warn("POST /sessions/%s/confirm - Missing contact info", id)
			handlers.RespondBadRequest(w, msgMissingContactInfo)

		case errors.Is(err, confirmBooking.ErrInvalidInput):
			h.logger.Warn("POST /sessions/%s/confirm - Invalid input: %v", id, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, confirmBooking.ErrSuperseded):
			h.logger.Warn("POST /sessions/%s/confirm - Superseded by navigation", id)
			handlers.RespondConflict(w, msgSuperseded)

		default:
			h.logger.Error("POST /sessions/%s/confirm - Failed: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.FromSession(result.Session))
}
