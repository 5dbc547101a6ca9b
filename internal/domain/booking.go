package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

// PaymentStatus represents the payment state of a booking
type PaymentStatus string

const (
	PaymentPaid     PaymentStatus = "paid"
	PaymentUnpaid   PaymentStatus = "unpaid"
	PaymentRefunded PaymentStatus = "refunded"
)

// Booking represents an appointment in the system
type Booking struct {
	ID              int64
	CustomerName    string
	PhoneNumber     string
	Email           *string
	AppointmentTime time.Time // всегда нормализовано к началу слота
	Status          BookingStatus
	PaymentStatus   PaymentStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking still occupies its slot
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// HasEmail returns true if the customer left an email address
func (b *Booking) HasEmail() bool {
	return b.Email != nil && *b.Email != ""
}

// ValidStatus reports whether s is one of the known booking statuses
func ValidStatus(s BookingStatus) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// ValidPaymentStatus reports whether s is one of the known payment statuses
func ValidPaymentStatus(s PaymentStatus) bool {
	switch s {
	case PaymentPaid, PaymentUnpaid, PaymentRefunded:
		return true
	}
	return false
}
