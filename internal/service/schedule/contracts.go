package schedule

import (
	"context"
	"time"

	"github.com/chaxxbarbers/booking-service/internal/domain"
)

// BlockedSlotRepository интерфейс репозитория блокировок
type BlockedSlotRepository interface {
	Create(ctx context.Context, block *domain.BlockedSlot) (*domain.BlockedSlot, error)
	Delete(ctx context.Context, date time.Time, timeSlot *string, isFullDay bool) error
	ListRange(ctx context.Context, from, to *time.Time) ([]*domain.BlockedSlot, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
