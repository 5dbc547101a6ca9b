package create_bookings

import (
	"bytes"
	"encoding/json"
	"errors"
	"time"

	"github.com/chaxxbarbers/booking-service/internal/domain"
	admitBookings "github.com/chaxxbarbers/booking-service/internal/usecase/admit_bookings"
)

var errEmptyBody = errors.New("empty request body")

// BookingItem HTTP-модель одной заявки на бронирование
type BookingItem struct {
	CustomerName    string  `json:"customer_name"`
	PhoneNumber     string  `json:"phone_number"`
	Email           *string `json:"email,omitempty"`
	AppointmentTime string  `json:"appointment_time"`
	PayNow          bool    `json:"pay_now"`
}

// decodeItems разбирает тело запроса: одиночный объект или массив заявок.
// Возвращает признак пакетного запроса - от него зависит форма ответа.
func decodeItems(body []byte) (items []BookingItem, isBulk bool, err error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, false, errEmptyBody
	}

	if trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, true, err
		}
		return items, true, nil
	}

	var single BookingItem
	if err := json.Unmarshal(trimmed, &single); err != nil {
		return nil, false, err
	}
	return []BookingItem{single}, false, nil
}

func toUseCaseRequest(items []BookingItem) *admitBookings.Request {
	req := &admitBookings.Request{Items: make([]admitBookings.Item, 0, len(items))}
	for _, item := range items {
		req.Items = append(req.Items, admitBookings.Item{
			CustomerName:    item.CustomerName,
			PhoneNumber:     item.PhoneNumber,
			Email:           item.Email,
			AppointmentTime: item.AppointmentTime,
			PayNow:          item.PayNow,
		})
	}
	return req
}

// BookingPayload HTTP-модель созданного бронирования
type BookingPayload struct {
	ID              int64   `json:"id"`
	CustomerName    string  `json:"customer_name"`
	PhoneNumber     string  `json:"phone_number"`
	Email           *string `json:"email,omitempty"`
	AppointmentTime string  `json:"appointment_time"`
	Status          string  `json:"status"`
	PaymentStatus   string  `json:"payment_status"`
	CreatedAt       string  `json:"created_at"`
}

// ItemErrorPayload пер-заявочный отказ с позицией во входном пакете
type ItemErrorPayload struct {
	Index         int      `json:"index"`
	CustomerName  string   `json:"customer_name"`
	Message       string   `json:"message"`
	MissingFields []string `json:"missing_fields,omitempty"`
	Provided      string   `json:"provided,omitempty"`
}

// EmailResultPayload исход отправки одного письма
type EmailResultPayload struct {
	Sent   bool   `json:"sent"`
	To     string `json:"to,omitempty"`
	Reason string `json:"reason,omitempty"`
}

// EmailResultsPayload исходы всех отправок по пакету
type EmailResultsPayload struct {
	CustomerEmails []EmailResultPayload `json:"customer_emails"`
	AdminEmail     EmailResultPayload   `json:"admin_email"`
}

// SummaryPayload сводные счетчики по пакету
type SummaryPayload struct {
	Total         int  `json:"total"`
	Successful    int  `json:"successful"`
	Failed        int  `json:"failed"`
	EmailsSent    int  `json:"emails_sent"`
	AdminNotified bool `json:"admin_notified"`
}

// BulkResponse ответ на пакетный запрос
type BulkResponse struct {
	Success          bool                 `json:"success"`
	Message          string               `json:"message"`
	BatchID          string               `json:"batch_id"`
	Bookings         []BookingPayload     `json:"bookings"`
	ValidationErrors []ItemErrorPayload   `json:"validation_errors,omitempty"`
	Conflicts        []ItemErrorPayload   `json:"conflicts,omitempty"`
	EmailResults     *EmailResultsPayload `json:"email_results,omitempty"`
	Summary          SummaryPayload       `json:"summary"`
}

// SingleResponse ответ на одиночный запрос
type SingleResponse struct {
	Success       bool           `json:"success"`
	Message       string         `json:"message"`
	Booking       BookingPayload `json:"booking"`
	EmailSent     bool           `json:"email_sent"`
	AdminNotified bool           `json:"admin_notified"`
}

func toBookingPayload(b *domain.Booking) BookingPayload {
	return BookingPayload{
		ID:              b.ID,
		CustomerName:    b.CustomerName,
		PhoneNumber:     b.PhoneNumber,
		Email:           b.Email,
		AppointmentTime: b.AppointmentTime.Format(time.RFC3339),
		Status:          string(b.Status),
		PaymentStatus:   string(b.PaymentStatus),
		CreatedAt:       b.CreatedAt.Format(time.RFC3339),
	}
}

func toItemErrorPayloads(errs []admitBookings.ItemError) []ItemErrorPayload {
	if len(errs) == 0 {
		return nil
	}
	out := make([]ItemErrorPayload, 0, len(errs))
	for _, e := range errs {
		out = append(out, ItemErrorPayload{
			Index:         e.Index,
			CustomerName:  e.CustomerName,
			Message:       e.Message,
			MissingFields: e.MissingFields,
			Provided:      e.Provided,
		})
	}
	return out
}

func toEmailResultsPayload(results admitBookings.EmailResults) *EmailResultsPayload {
	out := &EmailResultsPayload{
		CustomerEmails: make([]EmailResultPayload, 0, len(results.CustomerEmails)),
		AdminEmail: EmailResultPayload{
			Sent:   results.AdminEmail.Sent,
			To:     results.AdminEmail.To,
			Reason: results.AdminEmail.Reason,
		},
	}
	for _, r := range results.CustomerEmails {
		out.CustomerEmails = append(out.CustomerEmails, EmailResultPayload{
			Sent:   r.Sent,
			To:     r.To,
			Reason: r.Reason,
		})
	}
	return out
}

// FromUseCaseResponse собирает ответ пакетного запроса
func FromUseCaseResponse(resp *admitBookings.Response, message string, success bool) *BulkResponse {
	bookings := make([]BookingPayload, 0, len(resp.Bookings))
	for _, b := range resp.Bookings {
		bookings = append(bookings, toBookingPayload(b))
	}

	out := &BulkResponse{
		Success:          success,
		Message:          message,
		BatchID:          resp.BatchID,
		Bookings:         bookings,
		ValidationErrors: toItemErrorPayloads(resp.ValidationErrors),
		Conflicts:        toItemErrorPayloads(resp.Conflicts),
		Summary: SummaryPayload{
			Total:         resp.Summary.Total,
			Successful:    resp.Summary.Successful,
			Failed:        resp.Summary.Failed,
			EmailsSent:    resp.Summary.EmailsSent,
			AdminNotified: resp.Summary.AdminNotified,
		},
	}

	if len(resp.Bookings) > 0 {
		out.EmailResults = toEmailResultsPayload(resp.EmailResults)
	}

	return out
}

// FromUseCaseResponseSingle собирает ответ одиночного запроса
func FromUseCaseResponseSingle(resp *admitBookings.Response, message string) *SingleResponse {
	emailSent := false
	for _, r := range resp.EmailResults.CustomerEmails {
		if r.Sent {
			emailSent = true
			break
		}
	}

	return &SingleResponse{
		Success:       true,
		Message:       message,
		Booking:       toBookingPayload(resp.Bookings[0]),
		EmailSent:     emailSent,
		AdminNotified: resp.Summary.AdminNotified,
	}
}
