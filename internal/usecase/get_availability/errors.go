package get_availability

import "errors"

var (
	// ErrInvalidDate возвращается при нераспознанном формате даты
	ErrInvalidDate = errors.New("get_availability: invalid date format, expected YYYY-MM-DD")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_availability: internal error")
)
