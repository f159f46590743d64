package domain

import (
	"time"

	"github.com/salaoflow/booking-service/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
	AppointmentStatusCompleted AppointmentStatus = "completed"
)

// Appointment is a persisted appointment record.
// Создается только успешным commit; дальнейшие изменения происходят
// через внешнюю админку и этим сервисом не выполняются
type Appointment struct {
	ID             string
	CustomerID     string
	ServiceID      string
	ProfessionalID string
	Date           time.Time
	Time           types.TimeString
	Status         AppointmentStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// AppointmentConfirmation is the display-ready projection of a committed
// appointment: resolved names instead of ids, date in DD/MM/YYYY
type AppointmentConfirmation struct {
	AppointmentID    string `json:"appointmentId"`
	ServiceName      string `json:"serviceName"`
	ProfessionalName string `json:"professionalName"`
	Date             string `json:"date"` // DD/MM/YYYY
	Time             string `json:"time"` // HH:MM
	CustomerName     string `json:"customerName,omitempty"`
	CustomerPhone    string `json:"customerPhone,omitempty"`
}
