package schedule

import "errors"

var (
	// ErrInvalidMonth возвращается при некорректном номере месяца
	ErrInvalidMonth = errors.New("schedule: invalid month")

	// ErrInvalidYear возвращается при некорректном годе
	ErrInvalidYear = errors.New("schedule: invalid year")
)
