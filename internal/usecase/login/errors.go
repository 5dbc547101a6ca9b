package login

import "errors"

var (
	// ErrMissingFields возвращается, когда email или пароль не переданы
	ErrMissingFields = errors.New("login: email and password are required")

	// ErrInvalidCredentials возвращается при неизвестном email или неверном
	// пароле. Причины не различаются, чтобы не раскрывать существование аккаунта.
	ErrInvalidCredentials = errors.New("login: invalid credentials")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("login: internal error")
)
