package login

import (
	"context"

	"github.com/chaxxbarbers/booking-service/internal/domain"
)

// UserRepository интерфейс хранилища учетных записей
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
