package catalog

import (
	"github.com/salaoflow/booking-service/internal/domain"
	"github.com/salaoflow/booking-service/pkg/ptr"
)

// Встроенный каталог на случай недоступности внешнего сервиса
func defaultServices() []domain.Service {
	return []domain.Service{
		{
			ID:          "550e8400-e29b-41d4-a716-446655440001",
			Name:        "Corte de Cabelo",
			Category:    "Cabelo",
			Duration:    "01:00:00",
			Price:       50,
			Description: ptr.Ptr("Corte masculino completo"),
		},
		{
			ID:          "550e8400-e29b-41d4-a716-446655440002",
			Name:        "Barba",
			Category:    "Barba",
			Duration:    "00:30:00",
			Price:       35,
			Description: ptr.Ptr("Barba feita com navalha"),
		},
	}
}

func defaultProfessionals() []domain.Professional {
	return []domain.Professional{
		{
			ID:       "650e8400-e29b-41d4-a716-446655440001",
			Name:     "Vitor",
			Position: ptr.Ptr("Barbeiro"),
		},
		{
			ID:       "650e8400-e29b-41d4-a716-446655440002",
			Name:     "Vinícius",
			Position: ptr.Ptr("Barbeiro"),
		},
	}
}
