package domain

// Step represents the current step of a booking session
type Step string

const (
	StepMenu          Step = "menu"
	StepCategories    Step = "categories"
	StepServices      Step = "services"
	StepProfessionals Step = "professionals"
	StepDate          Step = "date"
	StepTime          Step = "time"
	StepCheckout      Step = "checkout"
	StepSuccess       Step = "success"
	StepFailure       Step = "failure"
)

// IsTerminal returns true if the step ends the booking flow
func (s Step) IsTerminal() bool {
	return s == StepSuccess || s == StepFailure
}

// IsValid returns true if the step is one of the known flow steps
func (s Step) IsValid() bool {
	switch s {
	case StepMenu, StepCategories, StepServices, StepProfessionals,
		StepDate, StepTime, StepCheckout, StepSuccess, StepFailure:
		return true
	default:
		return false
	}
}
