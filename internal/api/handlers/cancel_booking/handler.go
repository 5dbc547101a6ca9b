package cancel_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/chaxxbarbers/booking-service/internal/api/handlers"
	"github.com/chaxxbarbers/booking-service/internal/service/bookings"
)

const (
	msgInvalidBookingID = "Invalid booking id"
	msgBookingNotFound  = "Booking not found"
	msgCannotCancel     = "Booking is already cancelled or completed"
	msgCancelled        = "Booking cancelled successfully"
)

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /bookings/{bookingId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	idRaw := mux.Vars(r)["bookingId"]
	id, err := strconv.ParseInt(idRaw, 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id}/cancel - Invalid booking id: %q", idRaw)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	result, err := h.service.Cancel(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrNotFound):
			h.logger.Warn("PATCH /bookings/%d/cancel - Booking not found", id)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, bookings.ErrCannotCancel):
			h.logger.Warn("PATCH /bookings/%d/cancel - Cannot cancel", id)
			handlers.RespondConflict(w, msgCannotCancel)

		default:
			h.logger.Error("PATCH /bookings/%d/cancel - Failed to cancel: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/%d/cancel - Booking cancelled", id)
	handlers.RespondJSON(w, http.StatusOK, FromDomain(result, msgCancelled))
}
