package admit_bookings

import (
	"regexp"
	"time"

	"github.com/chaxxbarbers/booking-service/internal/domain"
)

// Форматы, в которых принимается appointment_time.
// Значение без зоны трактуется в локальной зоне сервиса.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
}

// emailPattern базовая проверка формы local@domain
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+$`)

// validItem заявка, прошедшая валидацию, с распарсенным и нормализованным временем
type validItem struct {
	index      int
	item       Item
	normalized time.Time
}

func parseAppointmentTime(raw string) (time.Time, error) {
	var lastErr error
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, raw, time.Local); err == nil {
			return t, nil
		} else {
			lastErr = err
		}
	}
	return time.Time{}, lastErr
}

// validateItem проверяет одну заявку независимо от остальных, без I/O.
// Возвращает нормализованное время встречи либо причину отказа.
func validateItem(index int, item Item, now time.Time) (*validItem, *ItemError) {
	missing := make([]string, 0, 3)
	if item.CustomerName == "" {
		missing = append(missing, "customer_name")
	}
	if item.PhoneNumber == "" {
		missing = append(missing, "phone_number")
	}
	if item.AppointmentTime == "" {
		missing = append(missing, "appointment_time")
	}

	if len(missing) > 0 {
		name := item.CustomerName
		if name == "" {
			name = "Unknown"
		}
		return nil, &ItemError{
			Index:         index,
			CustomerName:  name,
			Message:       MsgMissingFields,
			MissingFields: missing,
		}
	}

	if item.Email != nil && *item.Email != "" && !emailPattern.MatchString(*item.Email) {
		return nil, &ItemError{
			Index:        index,
			CustomerName: item.CustomerName,
			Message:      MsgInvalidEmail,
			Provided:     *item.Email,
		}
	}

	parsed, err := parseAppointmentTime(item.AppointmentTime)
	if err != nil {
		return nil, &ItemError{
			Index:        index,
			CustomerName: item.CustomerName,
			Message:      MsgInvalidTime,
			Provided:     item.AppointmentTime,
		}
	}

	if parsed.Before(now) {
		return nil, &ItemError{
			Index:        index,
			CustomerName: item.CustomerName,
			Message:      MsgTimeInPast,
			Provided:     item.AppointmentTime,
		}
	}

	// Нормализованное время обязано попадать в сетку слотов своего дня:
	// заявка на 08:15 нормализуется к 08:00 и отклоняется, а не сохраняется
	// вне рабочих часов
	normalized := domain.NormalizeToSlotStart(parsed)
	if !domain.WithinOperatingHours(normalized) {
		return nil, &ItemError{
			Index:        index,
			CustomerName: item.CustomerName,
			Message:      MsgOutsideHours,
			Provided:     item.AppointmentTime,
		}
	}

	return &validItem{index: index, item: item, normalized: normalized}, nil
}
