package get_services

import (
	"net/http"

	"github.com/salaoflow/booking-service/internal/api/handlers"
	"github.com/salaoflow/booking-service/internal/domain"
)

// ServicesResponse список услуг и доступных категорий
type ServicesResponse struct {
	Services   []domain.Service `json:"services"`
	Categories []string         `json:"categories"`
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

// Handle GET /api/v1/services?category=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")

	var services []domain.Service
	if category != "" {
		services = h.catalog.ServicesByCategory(r.Context(), category)
	} else {
		services = h.catalog.Services(r.Context())
	}

	handlers.RespondJSON(w, http.StatusOK, ServicesResponse{
		Services:   services,
		Categories: h.catalog.Categories(r.Context()),
	})
}
