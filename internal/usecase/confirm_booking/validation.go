package confirm_booking

import (
	"fmt"

	"github.com/salaoflow/booking-service/internal/domain"
)

func validateRequest(req *Request) error {
	if req.SessionID == "" {
		return fmt.Errorf("%w: sessionId is required", ErrInvalidInput)
	}
	if len(req.CustomerName) > domain.MaxNameLength {
		return fmt.Errorf("%w: customerName exceeds %d characters", ErrInvalidInput, domain.MaxNameLength)
	}
	if len(req.CustomerPhone) > domain.MaxPhoneLength {
		return fmt.Errorf("%w: customerPhone exceeds %d characters", ErrInvalidInput, domain.MaxPhoneLength)
	}
	return nil
}
