package select_time

import (
	"context"

	"github.com/salaoflow/booking-service/internal/domain"
	"github.com/salaoflow/booking-service/pkg/types"
)

// BookingFlowService интерфейс state machine записи
type BookingFlowService interface {
	SelectTime(ctx context.Context, id string, slot types.TimeString) (*domain.BookingSession, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
