package admit_bookings

import (
	"context"
	"time"

	"github.com/chaxxbarbers/booking-service/internal/domain"
	"github.com/chaxxbarbers/booking-service/internal/infra/storage/booking"
	"github.com/chaxxbarbers/booking-service/internal/service/notifications"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	FindOccupiedInstants(ctx context.Context, instants []time.Time) ([]time.Time, error)
	InsertBookings(ctx context.Context, records []*domain.Booking) ([]*domain.Booking, []booking.InsertFailure, error)
}

// Dispatcher интерфейс диспетчера уведомлений.
// Вызывается только после успешной записи бронирований,
// любой исход отправки не влияет на результат приема заявок.
type Dispatcher interface {
	Notify(ctx context.Context, booking *domain.Booking) notifications.Result
	NotifyAdmin(ctx context.Context, bookings []*domain.Booking) notifications.Result
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
