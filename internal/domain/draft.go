package domain

import "github.com/salaoflow/booking-service/pkg/types"

// BookingDraft is the in-progress set of user selections.
// Каждое поле заполняется ровно одним шагом флоу и очищается
// только при навигации назад через этот шаг
type BookingDraft struct {
	ServiceID      string           `json:"serviceId"`
	ProfessionalID string           `json:"professionalId"`
	Date           string           `json:"date"` // YYYY-MM-DD
	Time           types.TimeString `json:"time"` // HH:MM
}

// IsComplete returns true when all four selections are present
func (d *BookingDraft) IsComplete() bool {
	return d.ServiceID != "" &&
		d.ProfessionalID != "" &&
		d.Date != "" &&
		!d.Time.IsZero()
}

// Reset очищает все выборы черновика
func (d *BookingDraft) Reset() {
	d.ServiceID = ""
	d.ProfessionalID = ""
	d.Date = ""
	d.Time = ""
}

// MissingFields возвращает список незаполненных полей черновика
func (d *BookingDraft) MissingFields() []string {
	missing := make([]string, 0, 4)
	if d.ServiceID == "" {
		missing = append(missing, "serviceId")
	}
	if d.ProfessionalID == "" {
		missing = append(missing, "professionalId")
	}
	if d.Date == "" {
		missing = append(missing, "date")
	}
	if d.Time.IsZero() {
		missing = append(missing, "time")
	}
	return missing
}
