package schedule

import (
	"fmt"
	"time"

	"github.com/salaoflow/booking-service/internal/domain"
	"github.com/salaoflow/booking-service/pkg/ptr"
	"github.com/salaoflow/booking-service/pkg/types"
)

// Service генератор календарной сетки и дневного шаблона слотов
// Обе операции чистые: не зависят от текущего времени и занятости
type Service struct {
	workdayStartHour int
	workdayEndHour   int
	slotStepMinutes  int
}

// NewService создает сервис расписания
// Нулевые параметры заменяются дефолтным шаблоном рабочего дня
func NewService(workdayStartHour, workdayEndHour, slotStepMinutes int) *Service {
	if workdayEndHour <= workdayStartHour {
		workdayStartHour = domain.DefaultWorkdayStartHour
		workdayEndHour = domain.DefaultWorkdayEndHour
	}
	if slotStepMinutes <= 0 || 60%slotStepMinutes != 0 {
		slotStepMinutes = domain.DefaultSlotStepMinutes
	}
	return &Service{
		workdayStartHour: workdayStartHour,
		workdayEndHour:   workdayEndHour,
		slotStepMinutes:  slotStepMinutes,
	}
}

// MonthGrid возвращает сетку календаря на указанный месяц
// Неделя начинается с понедельника: перед первым днем месяца вставляются
// nil-заглушки, их количество равно (weekday+6)%7 для weekday первого числа
func (s *Service) MonthGrid(year int, month int) (*MonthGrid, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMonth, month)
	}
	if year < 1 || year > 9999 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidYear, year)
	}

	firstDay := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	// День 0 следующего месяца - последний день текущего
	lastDay := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC)
	daysInMonth := lastDay.Day()

	// time.Weekday: 0=воскресенье..6=суббота; приводим к понедельнику
	weekday := int(firstDay.Weekday())
	leading := weekday - 1
	if weekday == 0 {
		leading = 6
	}

	days := make([]*int, 0, leading+daysInMonth)
	for i := 0; i < leading; i++ {
		days = append(days, nil)
	}
	for day := 1; day <= daysInMonth; day++ {
		days = append(days, ptr.Ptr(day))
	}

	return &MonthGrid{Year: year, Month: month, Days: days}, nil
}

// DailySlots возвращает упорядоченный дневной шаблон времен для записи
// Шаблон одинаков для любой даты, включая выходные; занятость не учитывается
func (s *Service) DailySlots() []types.TimeString {
	slotsPerHour := 60 / s.slotStepMinutes
	slots := make([]types.TimeString, 0, (s.workdayEndHour-s.workdayStartHour+1)*slotsPerHour)

	for hour := s.workdayStartHour; hour <= s.workdayEndHour; hour++ {
		for minute := 0; minute < 60; minute += s.slotStepMinutes {
			slots = append(slots, types.TimeString(fmt.Sprintf("%02d:%02d", hour, minute)))
		}
	}

	return slots
}

// IsBookableSlot проверяет принадлежность времени дневному шаблону
func (s *Service) IsBookableSlot(slot types.TimeString) bool {
	for _, candidate := range s.DailySlots() {
		if candidate == slot {
			return true
		}
	}
	return false
}
