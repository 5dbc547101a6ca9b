package create_user

import (
	"context"

	"github.com/chaxxbarbers/booking-service/internal/domain"
)

type UsersService interface {
	Create(ctx context.Context, name string, email, password *string) (*domain.User, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
