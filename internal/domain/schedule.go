package domain

import "time"

// IsWeekend returns true for Saturday and Sunday
func IsWeekend(date time.Time) bool {
	wd := date.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// CloseHour returns the closing hour for the given date
func CloseHour(date time.Time) int {
	if IsWeekend(date) {
		return WeekendCloseHour
	}
	return WeekdayCloseHour
}

// SlotGrid возвращает упорядоченный список начал слотов на указанную дату.
// Слоты идут с шагом SlotDurationMinutes от OpenHour до часа закрытия
// (последний слот начинается за SlotDurationMinutes до закрытия).
// Функция чистая: для одной даты результат всегда одинаковый.
func SlotGrid(date time.Time) []time.Time {
	closeHour := CloseHour(date)

	slots := make([]time.Time, 0, (closeHour-OpenHour)*60/SlotDurationMinutes)
	for hour := OpenHour; hour < closeHour; hour++ {
		for minute := 0; minute < 60; minute += SlotDurationMinutes {
			slots = append(slots, time.Date(
				date.Year(), date.Month(), date.Day(),
				hour, minute, 0, 0, date.Location(),
			))
		}
	}

	return slots
}

// SlotGridLabels возвращает сетку слотов на дату в виде меток HH:MM
func SlotGridLabels(date time.Time) []string {
	grid := SlotGrid(date)
	labels := make([]string, len(grid))
	for i, slot := range grid {
		labels[i] = slot.Format(TimeFormat)
	}
	return labels
}

// NormalizeToSlotStart приводит произвольный момент времени к началу
// содержащего его слота: секунды и доли секунды обнуляются, минуты
// округляются вниз до кратного SlotDurationMinutes.
// Идемпотентна: NormalizeToSlotStart(NormalizeToSlotStart(t)) == NormalizeToSlotStart(t).
func NormalizeToSlotStart(t time.Time) time.Time {
	return time.Date(
		t.Year(), t.Month(), t.Day(),
		t.Hour(), t.Minute()/SlotDurationMinutes*SlotDurationMinutes,
		0, 0, t.Location(),
	)
}

// WithinOperatingHours проверяет, что нормализованный момент времени
// попадает в сетку слотов своего дня. Ненормализованное время всегда false.
func WithinOperatingHours(t time.Time) bool {
	if t.Minute()%SlotDurationMinutes != 0 || t.Second() != 0 || t.Nanosecond() != 0 {
		return false
	}
	return t.Hour() >= OpenHour && t.Hour() < CloseHour(t)
}
