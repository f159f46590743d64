package register_customer

import (
	"errors"
	"net/http"

	"github.com/salaoflow/booking-service/internal/api/handlers"
	registerCustomer "github.com/salaoflow/booking-service/internal/usecase/register_customer"
)

const (
	msgInvalidRequestBody = "Corpo da requisição inválido"
	msgNamePhoneRequired  = "Nome e telefone são obrigatórios"
)

// RegisterCustomerRequest тело запроса регистрации клиента
type RegisterCustomerRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// RegisterCustomerResponse тело ответа регистрации клиента
type RegisterCustomerResponse struct {
	Success    bool   `json:"success"`
	CustomerID string `json:"customerId"`
	Message    string `json:"message"`
}

type Handler struct {
	useCase RegisterCustomerUseCase
	logger  Logger
}

func NewHandler(useCase RegisterCustomerUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/register-customer
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req RegisterCustomerRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /register-customer - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &registerCustomer.Request{
		Name:  req.Name,
		Phone: req.Phone,
	})
	if err != nil {
		switch {
		case errors.Is(err, registerCustomer.ErrInvalidInput):
			h.logger.Warn("POST /register-customer - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgNamePhoneRequired)
		default:
			h.logger.Error("POST /register-customer - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, RegisterCustomerResponse{
		Success:    true,
		CustomerID: result.CustomerID,
		Message:    result.Message,
	})
}
