package get_availability

import (
	"context"
	"time"

	"github.com/chaxxbarbers/booking-service/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований (только чтение)
type BookingRepository interface {
	GetActiveInWindow(ctx context.Context, from, to time.Time) ([]*domain.Booking, error)
}

// BlockedSlotRepository интерфейс репозитория блокировок (только чтение)
type BlockedSlotRepository interface {
	GetFullDayBlock(ctx context.Context, date time.Time) (*domain.BlockedSlot, error)
	GetSlotBlocks(ctx context.Context, date time.Time) ([]*domain.BlockedSlot, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
