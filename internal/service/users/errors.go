package users

import "errors"

var (
	// ErrMissingName возвращается, когда имя пользователя не передано
	ErrMissingName = errors.New("users.service: name is required")

	// ErrEmailTaken возвращается, когда email уже занят другим пользователем
	ErrEmailTaken = errors.New("users.service: email already taken")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("users.service: internal error")
)
