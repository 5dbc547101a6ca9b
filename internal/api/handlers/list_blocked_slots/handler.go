package list_blocked_slots

import (
	"errors"
	"net/http"

	"github.com/chaxxbarbers/booking-service/internal/api/handlers"
	"github.com/chaxxbarbers/booking-service/internal/service/schedule"
)

const msgInvalidDate = "Invalid date format, expected YYYY-MM-DD"

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /admin/blocked-slots?date=...|from=...&to=...
// Параметр date задает одиночный день, from/to - диапазон; без параметров
// возвращаются все блокировки.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	from := query.Get("from")
	to := query.Get("to")
	if date := query.Get("date"); date != "" {
		from, to = date, date
	}

	result, err := h.service.ListBlocks(r.Context(), from, to)
	if err != nil {
		if errors.Is(err, schedule.ErrInvalidDate) {
			h.logger.Warn("GET /admin/blocked-slots - Invalid date filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		h.logger.Error("GET /admin/blocked-slots - Failed to list blocks: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(result))
}
