package schedule

import "errors"

var (
	// ErrInvalidDate возвращается при нераспознанном формате даты
	ErrInvalidDate = errors.New("schedule.service: invalid date format, expected YYYY-MM-DD")

	// ErrInvalidTimeSlot возвращается, когда метка слота не лежит
	// на сетке рабочих часов своей даты
	ErrInvalidTimeSlot = errors.New("schedule.service: time slot is not on the schedule grid")

	// ErrAlreadyBlocked возвращается, когда пара (дата, слот) уже заблокирована
	ErrAlreadyBlocked = errors.New("schedule.service: slot already blocked")

	// ErrBlockNotFound возвращается при удалении несуществующей блокировки
	ErrBlockNotFound = errors.New("schedule.service: block not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("schedule.service: internal error")
)
