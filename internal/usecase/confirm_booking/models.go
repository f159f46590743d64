package confirm_booking

import "github.com/salaoflow/booking-service/internal/domain"

// Request модель запроса на подтверждение записи
type Request struct {
	SessionID     string // ID сессии записи
	CustomerName  string // Имя клиента (опционально, если личность уже определена)
	CustomerPhone string // Телефон клиента (опционально, если личность уже определена)
}

// Response модель ответа с итоговым состоянием сессии.
// Шаг сессии сообщает исход: success с заполненным подтверждением
// либо failure с причиной и сохраненным черновиком
type Response struct {
	Session *domain.BookingSession
}
