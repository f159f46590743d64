package confirm_booking

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена
	ErrSessionNotFound = errors.New("confirm_booking: session not found")

	// ErrWrongStep возвращается, когда сессия не находится на шаге чекаута
	ErrWrongStep = errors.New("confirm_booking: session is not at checkout step")

	// ErrAlreadySubmitting возвращается при повторном подтверждении, пока commit в полете
	ErrAlreadySubmitting = errors.New("confirm_booking: submission already in flight")

	// ErrIncompleteDraft возвращается, когда в черновике не хватает выборов
	ErrIncompleteDraft = errors.New("confirm_booking: draft is incomplete")

	// ErrMissingContactInfo возвращается, когда личность клиента определить невозможно
	ErrMissingContactInfo = errors.New("confirm_booking: missing customer contact info")

	// ErrSuperseded возвращается, когда за время commit пользователь ушел с чекаута
	// и результат отброшен
	ErrSuperseded = errors.New("confirm_booking: session navigated away during commit")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("confirm_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("confirm_booking: internal error")
)
