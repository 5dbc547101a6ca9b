package list_users

import (
	"context"

	"github.com/chaxxbarbers/booking-service/internal/domain"
)

type UsersService interface {
	List(ctx context.Context) ([]*domain.User, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
