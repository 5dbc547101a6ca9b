package block_slot

import (
	"errors"
	"net/http"

	"github.com/chaxxbarbers/booking-service/internal/api/handlers"
	"github.com/chaxxbarbers/booking-service/internal/service/schedule"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgInvalidDate        = "Invalid date format, expected YYYY-MM-DD"
	msgInvalidTimeSlot    = "Invalid time slot, expected an HH:MM label on the schedule grid"
	msgAlreadyBlocked     = "This slot is already blocked"
	msgBlocked            = "Slot blocked successfully"
	msgDayBlocked         = "Day blocked successfully"
)

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

// Handle POST /admin/block-slot
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req BlockSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/block-slot - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Block(r.Context(), schedule.BlockParams{
		Date:     req.Date,
		TimeSlot: req.TimeSlot,
		Reason:   req.Reason,
		FullDay:  req.FullDay,
	})
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidDate):
			h.logger.Warn("POST /admin/block-slot - Invalid date: %q", req.Date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, schedule.ErrInvalidTimeSlot):
			h.logger.Warn("POST /admin/block-slot - Invalid time slot: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, schedule.ErrAlreadyBlocked):
			h.logger.Warn("POST /admin/block-slot - Already blocked: date=%s", req.Date)
			handlers.RespondConflict(w, msgAlreadyBlocked)

		default:
			h.logger.Error("POST /admin/block-slot - Failed to block: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	message := msgBlocked
	if result.IsFullDay {
		message = msgDayBlocked
	}

	h.logger.Info("POST /admin/block-slot - Block created: id=%d, date=%s", result.ID, req.Date)
	handlers.RespondJSON(w, http.StatusCreated, FromDomain(result, message))
}
