package customerservice

import "errors"

var (
	// ErrRegistrationRejected возвращается, когда реестр отказал в регистрации
	ErrRegistrationRejected = errors.New("customerservice client: registration rejected")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("customerservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе реестра
	ErrInvalidResponse = errors.New("customerservice client: invalid response")
)
