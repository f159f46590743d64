package confirm_booking

import (
	"context"
	"time"

	"github.com/salaoflow/booking-service/internal/domain"
	"github.com/salaoflow/booking-service/internal/integrations/appointmentservice"
)

// SessionStore интерфейс хранилища сессий записи
type SessionStore interface {
	Save(ctx context.Context, session *domain.BookingSession) error
	Get(ctx context.Context, id string) (*domain.BookingSession, error)
}

// IdentityResolver интерфейс определения личности клиента
type IdentityResolver interface {
	Resolve(ctx context.Context, name, phone string, prior *domain.CustomerIdentity) (*domain.CustomerIdentity, error)
}

// AppointmentServiceClient интерфейс клиента хранилища записей
type AppointmentServiceClient interface {
	CreateAppointment(ctx context.Context, request *appointmentservice.CreateAppointmentRequest) (*appointmentservice.CreateAppointmentResult, error)
}

// Catalog интерфейс снимка каталога для денормализации подтверждения
type Catalog interface {
	FindService(ctx context.Context, id string) (*domain.Service, error)
	FindProfessional(ctx context.Context, id string) (*domain.Professional, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
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
