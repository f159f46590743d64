package appointmentservice

// CreateAppointmentRequest тело запроса на создание записи
type CreateAppointmentRequest struct {
	CustomerID      string  `json:"customerId"`
	ServiceID       string  `json:"serviceId"`
	ProfessionalID  string  `json:"professionalId"`
	AppointmentDate string  `json:"appointmentDate"` // YYYY-MM-DD
	AppointmentTime string  `json:"appointmentTime"` // HH:MM
	CustomerName    *string `json:"customerName,omitempty"`
	CustomerPhone   *string `json:"customerPhone,omitempty"`
}

// CreateAppointmentResult ответ хранилища записей
// Success=false сопровождается текстом ошибки от сервера
type CreateAppointmentResult struct {
	Success       bool   `json:"success"`
	AppointmentID string `json:"appointmentId,omitempty"`
	Error         string `json:"error,omitempty"`
}
