package create_appointment

import (
	"errors"
	"net/http"

	"github.com/salaoflow/booking-service/internal/api/handlers"
	"github.com/salaoflow/booking-service/internal/domain"
	createAppointment "github.com/salaoflow/booking-service/internal/usecase/create_appointment"
	"github.com/salaoflow/booking-service/pkg/types"
)

const (
	msgInvalidRequestBody   = "Corpo da requisição inválido"
	msgRequiredFields       = "Campos obrigatórios: serviceId, appointmentDate, appointmentTime"
	msgMissingCustomer      = "customerId é obrigatório ou nome e telefone devem ser fornecidos"
	msgCustomerCreateFailed = "Erro ao criar perfil do cliente"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/create-appointment
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /create-appointment - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &createAppointment.Request{
		CustomerID:     coalesce(req.CustomerID, req.CustomerIDSnake),
		ServiceID:      coalesce(req.ServiceID, req.ServiceIDSnake),
		ProfessionalID: coalesce(req.ProfessionalID, req.ProfIDSnake),
		Date:           coalesce(req.Date, req.DateSnake),
		Time:           types.TimeString(coalesce(req.Time, req.TimeSnake)),
		Status:         req.Status,
		CustomerName:   req.CustomerName,
		CustomerPhone:  req.CustomerPhone,
	})
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /create-appointment - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgRequiredFields)
		case errors.Is(err, createAppointment.ErrMissingCustomer):
			h.logger.Warn("POST /create-appointment - Missing customer info: %v", err)
			handlers.RespondBadRequest(w, msgMissingCustomer)
		case errors.Is(err, createAppointment.ErrCustomerCreateFailed):
			h.logger.Error("POST /create-appointment - Customer create failed: %v", err)
			handlers.RespondBadRequest(w, msgCustomerCreateFailed)
		default:
			h.logger.Error("POST /create-appointment - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, CreateAppointmentResponse{
		Success:       true,
		AppointmentID: result.ID,
		Appointment: AppointmentResponse{
			ID:             result.ID,
			CustomerID:     result.CustomerID,
			ServiceID:      result.ServiceID,
			ProfessionalID: result.ProfessionalID,
			Date:           result.Date.Format(domain.DateFormat),
			Time:           result.Time.String(),
			Status:         string(result.Status),
		},
	})
}
