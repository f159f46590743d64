package bookingflow

import (
	"context"
	"time"

	"github.com/salaoflow/booking-service/internal/domain"
	"github.com/salaoflow/booking-service/pkg/types"
)

// SessionStore хранилище сессий записи
type SessionStore interface {
	Save(ctx context.Context, session *domain.BookingSession) error
	Get(ctx context.Context, id string) (*domain.BookingSession, error)
	Delete(ctx context.Context, id string) error
}

// Catalog снимок каталога услуг и мастеров
type Catalog interface {
	Categories(ctx context.Context) []string
	ServicesByCategory(ctx context.Context, category string) []domain.Service
	FindService(ctx context.Context, id string) (*domain.Service, error)
	FindProfessional(ctx context.Context, id string) (*domain.Professional, error)
}

// Schedule проверяет слоты дневного шаблона
type Schedule interface {
	IsBookableSlot(slot types.TimeString) bool
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
