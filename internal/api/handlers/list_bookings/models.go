package list_bookings

import (
	"time"

	"github.com/chaxxbarbers/booking-service/internal/domain"
)

// BookingPayload HTTP-модель бронирования
type BookingPayload struct {
	ID              int64   `json:"id"`
	CustomerName    string  `json:"customer_name"`
	PhoneNumber     string  `json:"phone_number"`
	Email           *string `json:"email,omitempty"`
	AppointmentTime string  `json:"appointment_time"`
	Status          string  `json:"status"`
	PaymentStatus   string  `json:"payment_status"`
	CreatedAt       string  `json:"created_at"`
	UpdatedAt       string  `json:"updated_at"`
}

// ListResponse HTTP-модель списка бронирований
type ListResponse struct {
	Success  bool             `json:"success"`
	Count    int              `json:"count"`
	Bookings []BookingPayload `json:"bookings"`
}

// FromDomain конвертирует доменные бронирования в HTTP response
func FromDomain(bookings []*domain.Booking) *ListResponse {
	payloads := make([]BookingPayload, 0, len(bookings))
	for _, b := range bookings {
		payloads = append(payloads, BookingPayload{
			ID:              b.ID,
			CustomerName:    b.CustomerName,
			PhoneNumber:     b.PhoneNumber,
			Email:           b.Email,
			AppointmentTime: b.AppointmentTime.Format(time.RFC3339),
			Status:          string(b.Status),
			PaymentStatus:   string(b.PaymentStatus),
			CreatedAt:       b.CreatedAt.Format(time.RFC3339),
			UpdatedAt:       b.UpdatedAt.Format(time.RFC3339),
		})
	}

	return &ListResponse{
		Success:  true,
		Count:    len(payloads),
		Bookings: payloads,
	}
}
