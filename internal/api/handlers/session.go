package handlers

import (
	"time"

	"github.com/salaoflow/booking-service/internal/domain"
)

// SessionResponse HTTP представление сессии записи
// Используется всеми обработчиками флоу, чтобы клиент после каждого
// шага получал одинаковую форму состояния
type SessionResponse struct {
	ID            string                `json:"id"`
	Step          string                `json:"step"`
	Category      string                `json:"category,omitempty"`
	Draft         DraftResponse         `json:"draft"`
	Customer      *CustomerResponse     `json:"customer,omitempty"`
	Submitting    bool                  `json:"submitting"`
	FailureReason string                `json:"failureReason,omitempty"`
	Confirmation  *ConfirmationResponse `json:"confirmation,omitempty"`
	CreatedAt     time.Time             `json:"createdAt"`
	UpdatedAt     time.Time             `json:"updatedAt"`
}

// DraftResponse HTTP представление черновика записи
type DraftResponse struct {
	ServiceID      string `json:"serviceId,omitempty"`
	ProfessionalID string `json:"professionalId,omitempty"`
	Date           string `json:"date,omitempty"`
	Time           string `json:"time,omitempty"`
}

// CustomerResponse HTTP представление определенного клиента
type CustomerResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name,omitempty"`
	Phone       string `json:"phone,omitempty"`
	IsTemporary bool   `json:"isTemporary"`
}

// ConfirmationResponse HTTP представление подтверждения записи
type ConfirmationResponse struct {
	AppointmentID    string `json:"appointmentId"`
	ServiceName      string `json:"serviceName"`
	ProfessionalName string `json:"professionalName"`
	Date             string `json:"date"`
	Time             string `json:"time"`
	CustomerName     string `json:"customerName,omitempty"`
	CustomerPhone    string `json:"customerPhone,omitempty"`
}

// FromSession конвертирует доменную сессию в HTTP представление
func FromSession(session *domain.BookingSession) *SessionResponse {
	response := &SessionResponse{
		ID:            session.ID,
		Step:          string(session.Step),
		Category:      session.Category,
		Submitting:    session.Submitting,
		FailureReason: session.FailureReason,
		CreatedAt:     session.CreatedAt,
		UpdatedAt:     session.UpdatedAt,
		Draft: DraftResponse{
			ServiceID:      session.Draft.ServiceID,
			ProfessionalID: session.Draft.ProfessionalID,
			Date:           session.Draft.Date,
			Time:           session.Draft.Time.String(),
		},
	}

	if session.Customer != nil {
		response.Customer = &CustomerResponse{
			ID:          session.Customer.ID,
			Name:        session.Customer.Name,
			Phone:       session.Customer.Phone,
			IsTemporary: session.Customer.IsTemporary,
		}
	}

	if session.Confirmation != nil {
		response.Confirmation = &ConfirmationResponse{
			AppointmentID:    session.Confirmation.AppointmentID,
			ServiceName:      session.Confirmation.ServiceName,
			ProfessionalName: session.Confirmation.ProfessionalName,
			Date:             session.Confirmation.Date,
			Time:             session.Confirmation.Time,
			CustomerName:     session.Confirmation.CustomerName,
			CustomerPhone:    session.Confirmation.CustomerPhone,
		}
	}

	return response
}
