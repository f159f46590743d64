package get_time_slots

import (
	"github.com/salaoflow/booking-service/pkg/types"
)

// ScheduleService интерфейс генератора слотов дневного шаблона
type ScheduleService interface {
	DailySlots() []types.TimeString
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
