package get_professionals

import (
	"net/http"

	"github.com/salaoflow/booking-service/internal/api/handlers"
	"github.com/salaoflow/booking-service/internal/domain"
)

// ProfessionalsResponse список мастеров
type ProfessionalsResponse struct {
	Professionals []domain.Professional `json:"professionals"`
}

type Handler struct {
	catalog CatalogService
	logger  Logger
}

func NewHandler(catalog CatalogService, logger Logger) *Handler {
	return &Handler{
		catalog: catalog,
		logger:  logger,
	}
}

// Handle GET /api/v1/professionals
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, ProfessionalsResponse{
		Professionals: h.catalog.Professionals(r.Context()),
	})
}
