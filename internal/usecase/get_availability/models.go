package get_availability

// Request запрос доступности слотов на дату
type Request struct {
	Date string // YYYY-MM-DD
}

// Типы дня, определяющие часы работы
const (
	DayTypeWeekday = "weekday"
	DayTypeWeekend = "weekend"
)

// Response разбиение сетки слотов дня на свободные, занятые и заблокированные.
// При блокировке целого дня AvailableSlots и BookedSlots пусты,
// а BlockedSlots содержит всю сетку.
type Response struct {
	Date             string
	DayType          string
	AvailableSlots   []string
	BookedSlots      []string
	BlockedSlots     []string
	IsFullDayBlocked bool
	BlockedReason    string
	TotalSlots       int
	AvailableCount   int
}
