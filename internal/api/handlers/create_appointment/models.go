package create_appointment

// CreateAppointmentRequest тело запроса создания записи
// Поля принимаются в camelCase и snake_case: внешние интеграции
// исторически присылают оба варианта
type CreateAppointmentRequest struct {
	CustomerID      string  `json:"customerId"`
	CustomerIDSnake string  `json:"customer_id"`
	ServiceID       string  `json:"serviceId"`
	ServiceIDSnake  string  `json:"service_id"`
	ProfessionalID  string  `json:"professionalId"`
	ProfIDSnake     string  `json:"professional_id"`
	Date            string  `json:"appointmentDate"`
	DateSnake       string  `json:"appointment_date"`
	Time            string  `json:"appointmentTime"`
	TimeSnake       string  `json:"appointment_time"`
	Status          string  `json:"status"`
	CustomerName    *string `json:"customerName"`
	CustomerPhone   *string `json:"customerPhone"`
}

func coalesce(camel, snake string) string {
	if camel != "" {
		return camel
	}
	return snake
}

// CreateAppointmentResponse тело ответа создания записи
type CreateAppointmentResponse struct {
	Success       bool                `json:"success"`
	AppointmentID string              `json:"appointmentId"`
	Appointment   AppointmentResponse `json:"appointment"`
}

// AppointmentResponse созданная запись
type AppointmentResponse struct {
	ID             string `json:"id"`
	CustomerID     string `json:"customerId"`
	ServiceID      string `json:"serviceId"`
	ProfessionalID string `json:"professionalId,omitempty"`
	Date           string `json:"appointmentDate"`
	Time           string `json:"appointmentTime"`
	Status         string `json:"status"`
}
