package create_session

import (
	"context"

	"github.com/salaoflow/booking-service/internal/domain"
)

// BookingFlowService интерфейс state machine записи
type BookingFlowService interface {
	StartSession(ctx context.Context) (*domain.BookingSession, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
