package domain

import "time"

// BlockedSlot represents administrative unavailability of a slot or a whole day.
// Для блокировки всего дня TimeSlot равен nil, а IsFullDay - true.
type BlockedSlot struct {
	ID        int64
	Date      time.Time // только дата, время игнорируется
	TimeSlot  *string   // метка слота в формате HH:MM, nil для блокировки всего дня
	Reason    string
	BlockedBy string
	IsFullDay bool

	CreatedAt time.Time
}

// DefaultBlockReason причина блокировки по умолчанию
const DefaultBlockReason = "Unavailable"

// DefaultBlockedBy кто заблокировал слот по умолчанию
const DefaultBlockedBy = "admin"
