package domain

// Параметры сетки слотов
const (
	SlotDurationMinutes = 30

	OpenHour         = 9  // открытие, каждый день
	WeekdayCloseHour = 18 // закрытие пн-пт
	WeekendCloseHour = 20 // закрытие сб-вс
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
