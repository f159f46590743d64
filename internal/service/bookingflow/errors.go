package bookingflow

import "errors"

var (
	ErrWrongStep               = errors.New("operation not allowed at current step")
	ErrEmptyCategory           = errors.New("category must not be empty")
	ErrServiceCategoryMismatch = errors.New("service does not belong to the selected category")
	ErrInvalidDate             = errors.New("invalid date format")
	ErrDateInPast              = errors.New("date is in the past")
	ErrSlotNotBookable         = errors.New("time slot is outside the working day")
	ErrInternal                = errors.New("internal error")
)
