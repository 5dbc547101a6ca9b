package block_slot

import (
	"context"

	"github.com/chaxxbarbers/booking-service/internal/domain"
	"github.com/chaxxbarbers/booking-service/internal/service/schedule"
)

type ScheduleService interface {
	Block(ctx context.Context, params schedule.BlockParams) (*domain.BlockedSlot, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
