package get_calendar

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/salaoflow/booking-service/internal/api/handlers"
	"github.com/salaoflow/booking-service/internal/service/schedule"
)

const (
	msgInvalidYear  = "Ano inválido"
	msgInvalidMonth = "Mês inválido, use 1-12"
)

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

// Handle GET /api/v1/calendar/{year}/{month}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	year, err := strconv.Atoi(vars["year"])
	if err != nil {
		h.logger.Warn("GET /calendar - Invalid year %q", vars["year"])
		handlers.RespondBadRequest(w, msgInvalidYear)
		return
	}

	month, err := strconv.Atoi(vars["month"])
	if err != nil {
		h.logger.Warn("GET /calendar - Invalid month %q", vars["month"])
		handlers.RespondBadRequest(w, msgInvalidMonth)
		return
	}

	grid, err := h.schedule.MonthGrid(year, month)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidYear):
			h.logger.Warn("GET /calendar - Year %d out of range", year)
			handlers.RespondBadRequest(w, msgInvalidYear)
		case errors.Is(err, schedule.ErrInvalidMonth):
			h.logger.Warn("GET /calendar - Month %d out of range", month)
			handlers.RespondBadRequest(w, msgInvalidMonth)
		default:
			h.logger.Error("GET /calendar - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, grid)
}
