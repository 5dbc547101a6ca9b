package list_blocked_slots

import (
	"context"

	"github.com/chaxxbarbers/booking-service/internal/domain"
)

type ScheduleService interface {
	ListBlocks(ctx context.Context, from, to string) ([]*domain.BlockedSlot, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
