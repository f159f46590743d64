package create_appointment

import (
	"fmt"
	"time"

	"github.com/salaoflow/booking-service/internal/domain"
)

func validateRequest(req *Request) error {
	if req.ServiceID == "" {
		return fmt.Errorf("%w: serviceId is required", ErrInvalidInput)
	}
	if req.Date == "" {
		return fmt.Errorf("%w: appointmentDate is required", ErrInvalidInput)
	}
	if _, err := time.Parse(domain.DateFormat, req.Date); err != nil {
		return fmt.Errorf("%w: appointmentDate must be YYYY-MM-DD: %v", ErrInvalidInput, err)
	}
	if req.Time.IsZero() {
		return fmt.Errorf("%w: appointmentTime is required", ErrInvalidInput)
	}
	if err := req.Time.Validate(); err != nil {
		return fmt.Errorf("%w: appointmentTime: %v", ErrInvalidInput, err)
	}
	if req.Status != "" && !isValidStatus(req.Status) {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, req.Status)
	}
	return nil
}

func isValidStatus(status string) bool {
	switch domain.AppointmentStatus(status) {
	case domain.AppointmentStatusPending,
		domain.AppointmentStatusConfirmed,
		domain.AppointmentStatusCancelled,
		domain.AppointmentStatusCompleted:
		return true
	default:
		return false
	}
}

// validateCustomerInfo проверяет, что клиента можно определить:
// либо передан готовый ID, либо имя с телефоном для регистрации на лету
func validateCustomerInfo(req *Request) error {
	if req.CustomerID != "" {
		return nil
	}
	if req.CustomerName == nil && req.CustomerPhone == nil {
		return ErrMissingCustomer
	}
	if req.CustomerName == nil || *req.CustomerName == "" ||
		req.CustomerPhone == nil || *req.CustomerPhone == "" {
		return fmt.Errorf("%w: both name and phone are required", ErrMissingCustomer)
	}
	return nil
}
