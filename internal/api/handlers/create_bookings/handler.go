package create_bookings

import (
	"errors"
	"io"
	"net/http"

	"github.com/chaxxbarbers/booking-service/internal/api/handlers"
	admitBookings "github.com/chaxxbarbers/booking-service/internal/usecase/admit_bookings"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgEmptyBatch         = "Request must contain at least one booking"
	msgAllInvalid         = "All booking requests failed validation"
	msgAllConflicting     = "All requested time slots are unavailable"
	msgCreated            = "Booking created successfully"
	msgAllCreated         = "All bookings created successfully"
	msgPartialSuccess     = "Some bookings were created, others were rejected"
)

// maxBodyBytes предел размера тела запроса, 1 MiB
const maxBodyBytes = 1 << 20

type Handler struct {
	useCase AdmitBookingsUseCase
	logger  Logger
}

func NewHandler(useCase AdmitBookingsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /bookings
// Принимает одиночный объект или массив заявок; от формы входа зависит
// форма ответа. Пакет с частичным успехом отвечает 207 Multi-Status.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to read request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	items, isBulk, err := decodeItems(body)
	if err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), toUseCaseRequest(items))
	if err != nil {
		switch {
		case errors.Is(err, admitBookings.ErrEmptyBatch):
			h.logger.Warn("POST /bookings - Empty batch")
			handlers.RespondBadRequest(w, msgEmptyBatch)

		case errors.Is(err, admitBookings.ErrAllInvalid):
			h.logger.Warn("POST /bookings - All %d request(s) failed validation", len(items))
			handlers.RespondJSON(w, http.StatusBadRequest, FromUseCaseResponse(result, msgAllInvalid, false))

		case errors.Is(err, admitBookings.ErrAllConflicting):
			h.logger.Warn("POST /bookings - All %d request(s) conflicted", len(items))
			handlers.RespondJSON(w, http.StatusConflict, FromUseCaseResponse(result, msgAllConflicting, false))

		default:
			h.logger.Error("POST /bookings - Failed to admit bookings: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	if !isBulk {
		h.logger.Info("POST /bookings - Booking created: booking_id=%d, batch_id=%s",
			result.Bookings[0].ID, result.BatchID)
		handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponseSingle(result, msgCreated))
		return
	}

	rejected := len(result.ValidationErrors) + len(result.Conflicts)
	if rejected > 0 {
		h.logger.Info("POST /bookings - Partial success: batch_id=%s, created=%d, rejected=%d",
			result.BatchID, len(result.Bookings), rejected)
		handlers.RespondJSON(w, http.StatusMultiStatus, FromUseCaseResponse(result, msgPartialSuccess, true))
		return
	}

	h.logger.Info("POST /bookings - Batch created: batch_id=%s, created=%d",
		result.BatchID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result, msgAllCreated, true))
}
