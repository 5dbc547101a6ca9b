package unblock_slot

import "context"

type ScheduleService interface {
	Unblock(ctx context.Context, date string, timeSlot *string, fullDay bool) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
