package mailjet

import "errors"

var (
	// ErrNotConfigured возвращается, когда API ключи Mailjet не заданы
	ErrNotConfigured = errors.New("mailjet client: not configured")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("mailjet client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от Mailjet
	ErrInvalidResponse = errors.New("mailjet client: invalid response")

	// ErrSendFailed возвращается, когда Mailjet не принял сообщение
	ErrSendFailed = errors.New("mailjet client: send failed")
)
