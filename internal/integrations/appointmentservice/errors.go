package appointmentservice

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("appointmentservice client: internal error")

	// ErrInvalidResponse возвращается при нечитаемом ответе сервиса
	ErrInvalidResponse = errors.New("appointmentservice client: invalid response")
)
