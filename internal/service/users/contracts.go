package users

import (
	"context"

	"github.com/chaxxbarbers/booking-service/internal/domain"
)

// UserRepository интерфейс хранилища учетных записей
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
