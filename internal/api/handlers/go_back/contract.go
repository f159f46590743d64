package go_back

import (
	"context"

	"github.com/salaoflow/booking-service/internal/domain"
)

// BookingFlowService интерфейс state machine записи
type BookingFlowService interface {
	GoBack(ctx context.Context, id string) (*domain.BookingSession, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
