package get_time_slots

import (
	"net/http"

	"github.com/salaoflow/booking-service/internal/api/handlers"
	"github.com/salaoflow/booking-service/pkg/types"
)

// TimeSlotsResponse список слотов дневного шаблона
type TimeSlotsResponse struct {
	Slots []types.TimeString `json:"slots"`
}

type Handler struct {
	schedule ScheduleService
	logger   Logger
}

func NewHandler(scheduleService ScheduleService, logger Logger) *Handler {
	return &Handler{
		schedule: scheduleService,
		logger:   logger,
	}
}

// Handle GET /api/v1/slots
// Шаблон одинаков для всех дат и мастеров, занятость не учитывается
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, TimeSlotsResponse{Slots: h.schedule.DailySlots()})
}
