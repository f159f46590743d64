package schedule

import "github.com/salaoflow/booking-service/pkg/types"

// MonthGrid сетка календаря на месяц
// Days содержит ведущие nil-заглушки, чтобы первая неделя начиналась
// с понедельника, затем номера дней 1..daysInMonth
// Хвостовые заглушки не добавляются - длина сетки не выравнивается до полных недель
type MonthGrid struct {
	Year  int    `json:"year"`
	Month int    `json:"month"` // 1..12
	Days  []*int `json:"days"`
}

// DaySlots список времен дневного шаблона
type DaySlots struct {
	Slots []types.TimeString `json:"slots"`
}
