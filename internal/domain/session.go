package domain

import "time"

// BookingSession is one in-progress booking flow owned by a single UI surface.
// Сессия - единственный владелец черновика; все переходы между шагами
// проходят через state machine (internal/service/bookingflow)
type BookingSession struct {
	ID       string       `json:"id"`
	Step     Step         `json:"step"`
	Category string       `json:"category,omitempty"`
	Draft    BookingDraft `json:"draft"`

	// Customer последний успешно разрешенный клиент
	// Позволяет повторный чекаут без повторного ввода контактов
	Customer *CustomerIdentity `json:"customer,omitempty"`

	// Submitting защита от двойного подтверждения: пока commit в полете,
	// повторные confirm отклоняются
	Submitting bool `json:"submitting"`

	// Generation счетчик навигации. Инкрементируется при каждом "назад";
	// результат commit со старым значением отбрасывается
	Generation int64 `json:"generation"`

	FailureReason string                   `json:"failureReason,omitempty"`
	Confirmation  *AppointmentConfirmation `json:"confirmation,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Clone returns a deep copy of the session
func (s *BookingSession) Clone() *BookingSession {
	clone := *s
	if s.Customer != nil {
		customer := *s.Customer
		clone.Customer = &customer
	}
	if s.Confirmation != nil {
		confirmation := *s.Confirmation
		clone.Confirmation = &confirmation
	}
	return &clone
}
