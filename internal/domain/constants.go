package domain

// Time and date format constants
const (
	TimeFormat        = "15:04"      // HH:MM
	DateFormat        = "2006-01-02" // YYYY-MM-DD
	DisplayDateFormat = "02/01/2006" // DD/MM/YYYY, формат подтверждения для клиента
)

// Default working day template
// Слоты генерируются по фиксированному дневному шаблону, без учета
// занятости и без персональных расписаний мастеров
const (
	DefaultWorkdayStartHour = 8
	DefaultWorkdayEndHour   = 18
	DefaultSlotStepMinutes  = 30
)

// Business validation constants
const (
	MaxNameLength  = 200
	MaxPhoneLength = 32
)

// TempCustomerIDPrefix префикс синтетического идентификатора клиента
// Используется, когда регистрация в реестре клиентов недоступна
const TempCustomerIDPrefix = "temp_"
