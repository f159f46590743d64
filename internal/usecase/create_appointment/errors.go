package create_appointment

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrMissingCustomer возвращается, когда не передан ни ID клиента, ни имя с телефоном
	ErrMissingCustomer = errors.New("create_appointment: customer id or name and phone required")

	// ErrCustomerCreateFailed возвращается, когда не удалось создать профиль клиента
	ErrCustomerCreateFailed = errors.New("create_appointment: failed to create customer profile")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
