package create_bookings

import (
	"context"

	admitBookings "github.com/chaxxbarbers/booking-service/internal/usecase/admit_bookings"
)

type AdmitBookingsUseCase interface {
	Execute(ctx context.Context, req *admitBookings.Request) (*admitBookings.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
