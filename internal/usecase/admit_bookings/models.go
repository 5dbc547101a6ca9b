package admit_bookings

import (
	"github.com/chaxxbarbers/booking-service/internal/domain"
	"github.com/chaxxbarbers/booking-service/internal/service/notifications"
)

// Item одна заявка на бронирование
type Item struct {
	CustomerName    string
	PhoneNumber     string
	Email           *string
	AppointmentTime string // сырое значение, парсится при валидации
	PayNow          bool
}

// Request пакет заявок на бронирование.
// Заявки обрабатываются строго в порядке следования:
// при конфликте внутри пакета побеждает более ранняя заявка.
type Request struct {
	Items []Item
}

// Сообщения пер-заявочных отказов
const (
	MsgMissingFields = "Missing required fields"
	MsgInvalidTime   = "Invalid appointment_time format"
	MsgInvalidEmail  = "Invalid email format"
	MsgTimeInPast    = "Appointment time cannot be in the past"
	MsgOutsideHours  = "Appointment time is outside business hours"
	MsgSlotBooked    = "Time slot already booked"
)

// ItemError отказ по одной заявке, с привязкой к позиции во входном пакете
type ItemError struct {
	Index         int
	CustomerName  string
	Message       string
	MissingFields []string
	Provided      string
}

// EmailResults исходы отправки уведомлений по результатам вызова
type EmailResults struct {
	CustomerEmails []notifications.Result
	AdminEmail     notifications.Result
}

// Summary сводные счетчики по пакету
type Summary struct {
	Total         int
	Successful    int
	Failed        int
	EmailsSent    int
	AdminNotified bool
}

// Response результат приема пакета заявок.
// При ErrAllInvalid и ErrAllConflicting ответ тоже возвращается:
// в нем перечислены пер-заявочные причины отказа.
type Response struct {
	BatchID          string
	Bookings         []*domain.Booking
	ValidationErrors []ItemError
	Conflicts        []ItemError
	EmailResults     EmailResults
	Summary          Summary
}
