package register_customer

import (
	"context"

	registerCustomer "github.com/salaoflow/booking-service/internal/usecase/register_customer"
)

// RegisterCustomerUseCase интерфейс use case регистрации клиента
type RegisterCustomerUseCase interface {
	Execute(ctx context.Context, req *registerCustomer.Request) (*registerCustomer.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
