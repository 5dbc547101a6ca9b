package get_available_slots

import (
	getAvailability "github.com/chaxxbarbers/booking-service/internal/usecase/get_availability"
)

// AvailabilityResponse HTTP-модель разбиения слотов дня
type AvailabilityResponse struct {
	Success          bool     `json:"success"`
	Date             string   `json:"date"`
	DayType          string   `json:"day_type"`
	AvailableSlots   []string `json:"available_slots"`
	BookedSlots      []string `json:"booked_slots"`
	BlockedSlots     []string `json:"blocked_slots"`
	IsFullDayBlocked bool     `json:"is_full_day_blocked"`
	BlockedReason    string   `json:"blocked_reason,omitempty"`
	TotalSlots       int      `json:"total_slots"`
	AvailableCount   int      `json:"available_count"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	return &AvailabilityResponse{
		Success:          true,
		Date:             resp.Date,
		DayType:          resp.DayType,
		AvailableSlots:   resp.AvailableSlots,
		BookedSlots:      resp.BookedSlots,
		BlockedSlots:     resp.BlockedSlots,
		IsFullDayBlocked: resp.IsFullDayBlocked,
		BlockedReason:    resp.BlockedReason,
		TotalSlots:       resp.TotalSlots,
		AvailableCount:   resp.AvailableCount,
	}
}
