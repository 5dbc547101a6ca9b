package unblock_slot

// UnblockSlotRequest HTTP-модель запроса снятия блокировки
type UnblockSlotRequest struct {
	Date     string  `json:"date"`                // YYYY-MM-DD
	TimeSlot *string `json:"time_slot,omitempty"` // HH:MM, опускается при full_day
	FullDay  bool    `json:"full_day,omitempty"`
}

// UnblockSlotResponse HTTP-модель результата снятия блокировки
type UnblockSlotResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
