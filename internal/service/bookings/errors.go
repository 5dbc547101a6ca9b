package bookings

import "errors"

var (
	// ErrNotFound возвращается, когда бронирование с таким ID не существует
	ErrNotFound = errors.New("bookings.service: booking not found")

	// ErrCannotCancel возвращается при попытке отменить уже отмененное
	// или завершенное бронирование
	ErrCannotCancel = errors.New("bookings.service: booking cannot be cancelled")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("bookings.service: internal error")
)
