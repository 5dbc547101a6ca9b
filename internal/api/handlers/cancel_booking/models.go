package cancel_booking

import (
	"time"

	"github.com/chaxxbarbers/booking-service/internal/domain"
)

// CancelResponse HTTP-модель результата отмены
type CancelResponse struct {
	Success         bool   `json:"success"`
	Message         string `json:"message"`
	ID              int64  `json:"id"`
	CustomerName    string `json:"customer_name"`
	AppointmentTime string `json:"appointment_time"`
	Status          string `json:"status"`
}

// FromDomain конвертирует отмененное бронирование в HTTP response
func FromDomain(b *domain.Booking, message string) *CancelResponse {
	return &CancelResponse{
		Success:         true,
		Message:         message,
		ID:              b.ID,
		CustomerName:    b.CustomerName,
		AppointmentTime: b.AppointmentTime.Format(time.RFC3339),
		Status:          string(b.Status),
	}
}
