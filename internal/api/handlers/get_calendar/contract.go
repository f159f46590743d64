package get_calendar

import (
	"github.com/salaoflow/booking-service/internal/service/schedule"
)

// ScheduleService интерфейс генератора календарной сетки
type ScheduleService interface {
	MonthGrid(year int, month int) (*schedule.MonthGrid, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
