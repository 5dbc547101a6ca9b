package admit_bookings

import "errors"

var (
	// ErrEmptyBatch возвращается, когда в запросе нет ни одной заявки
	ErrEmptyBatch = errors.New("admit_bookings: empty batch")

	// ErrAllInvalid возвращается, когда все заявки пакета не прошли валидацию.
	// Ответ при этом содержит ошибки валидации по каждой заявке,
	// хранилище не затрагивается.
	ErrAllInvalid = errors.New("admit_bookings: all requests failed validation")

	// ErrAllConflicting возвращается, когда ни одна заявка не была принята:
	// все слоты заняты существующими бронированиями или заявками того же пакета.
	ErrAllConflicting = errors.New("admit_bookings: all time slots unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("admit_bookings: internal error")
)
