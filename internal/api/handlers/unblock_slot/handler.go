package unblock_slot

import (
	"errors"
	"net/http"

	"github.com/chaxxbarbers/booking-service/internal/api/handlers"
	"github.com/chaxxbarbers/booking-service/internal/service/schedule"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgInvalidDate        = "Invalid date format, expected YYYY-MM-DD"
	msgInvalidTimeSlot    = "Time slot is required unless full_day is set"
	msgBlockNotFound      = "No matching block found"
	msgUnblocked          = "Block removed successfully"
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

// Handle DELETE /admin/unblock-slot
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req UnblockSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("DELETE /admin/unblock-slot - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	err := h.service.Unblock(r.Context(), req.Date, req.TimeSlot, req.FullDay)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidDate):
			h.logger.Warn("DELETE /admin/unblock-slot - Invalid date: %q", req.Date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, schedule.ErrInvalidTimeSlot):
			h.logger.Warn("DELETE /admin/unblock-slot - Missing time slot: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, schedule.ErrBlockNotFound):
			h.logger.Warn("DELETE /admin/unblock-slot - Block not found: date=%s", req.Date)
			handlers.RespondNotFound(w, msgBlockNotFound)

		default:
			h.logger.Error("DELETE /admin/unblock-slot - Failed to unblock: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/unblock-slot - Block removed: date=%s", req.Date)
	handlers.RespondJSON(w, http.StatusOK, UnblockSlotResponse{Success: true, Message: msgUnblocked})
}
