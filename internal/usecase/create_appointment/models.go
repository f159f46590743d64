package create_appointment

import (
	"time"

	"github.com/salaoflow/booking-service/internal/domain"
	"github.com/salaoflow/booking-service/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	CustomerID     string           // ID клиента (опционально, если переданы имя и телефон)
	ServiceID      string           // ID услуги
	ProfessionalID string           // ID мастера (опционально)
	Date           string           // Дата записи (YYYY-MM-DD)
	Time           types.TimeString // Время записи (например, "14:00")
	Status         string           // Статус записи (по умолчанию pending)
	CustomerName   *string          // Имя клиента для регистрации на лету
	CustomerPhone  *string          // Телефон клиента для регистрации на лету
}

// Response модель ответа с созданной записью
type Response struct {
	ID             string                   // ID созданной записи
	CustomerID     string                   // ID клиента
	ServiceID      string                   // ID услуги
	ProfessionalID string                   // ID мастера
	Date           time.Time                // Дата записи
	Time           types.TimeString         // Время записи
	Status         domain.AppointmentStatus // Статус записи

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
