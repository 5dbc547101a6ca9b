package block_slot

import (
	"github.com/chaxxbarbers/booking-service/internal/domain"
)

// BlockSlotRequest HTTP-модель запроса блокировки
type BlockSlotRequest struct {
	Date     string  `json:"date"`                // YYYY-MM-DD
	TimeSlot *string `json:"time_slot,omitempty"` // HH:MM, опускается при full_day
	Reason   string  `json:"reason,omitempty"`
	FullDay  bool    `json:"full_day,omitempty"`
}

// BlockSlotResponse HTTP-модель созданной блокировки
type BlockSlotResponse struct {
	Success   bool    `json:"success"`
	Message   string  `json:"message"`
	ID        int64   `json:"id"`
	Date      string  `json:"date"`
	TimeSlot  *string `json:"time_slot,omitempty"`
	Reason    string  `json:"reason"`
	BlockedBy string  `json:"blocked_by"`
	IsFullDay bool    `json:"is_full_day"`
}

// FromDomain конвертирует блокировку в HTTP response
func FromDomain(block *domain.BlockedSlot, message string) *BlockSlotResponse {
	return &BlockSlotResponse{
		Success:   true,
		Message:   message,
		ID:        block.ID,
		Date:      block.Date.Format(domain.DateFormat),
		TimeSlot:  block.TimeSlot,
		Reason:    block.Reason,
		BlockedBy: block.BlockedBy,
		IsFullDay: block.IsFullDay,
	}
}
