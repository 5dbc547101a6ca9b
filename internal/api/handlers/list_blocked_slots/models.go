package list_blocked_slots

import (
	"time"

	"github.com/chaxxbarbers/booking-service/internal/domain"
)

// BlockedSlotPayload HTTP-модель блокировки
type BlockedSlotPayload struct {
	ID        int64   `json:"id"`
	Date      string  `json:"date"`
	TimeSlot  *string `json:"time_slot,omitempty"`
	Reason    string  `json:"reason"`
	BlockedBy string  `json:"blocked_by"`
	IsFullDay bool    `json:"is_full_day"`
	CreatedAt string  `json:"created_at"`
}

// ListResponse HTTP-модель списка блокировок
type ListResponse struct {
	Success      bool                 `json:"success"`
	Count        int                  `json:"count"`
	BlockedSlots []BlockedSlotPayload `json:"blocked_slots"`
}

// FromDomain конвертирует блокировки в HTTP response
func FromDomain(blocks []*domain.BlockedSlot) *ListResponse {
	payloads := make([]BlockedSlotPayload, 0, len(blocks))
	for _, block := range blocks {
		payloads = append(payloads, BlockedSlotPayload{
			ID:        block.ID,
			Date:      block.Date.Format(domain.DateFormat),
			TimeSlot:  block.TimeSlot,
			Reason:    block.Reason,
			BlockedBy: block.BlockedBy,
			IsFullDay: block.IsFullDay,
			CreatedAt: block.CreatedAt.Format(time.RFC3339),
		})
	}

	return &ListResponse{
		Success:      true,
		Count:        len(payloads),
		BlockedSlots: payloads,
	}
}
