package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/chaxxbarbers/booking-service/internal/domain"
	"github.com/chaxxbarbers/booking-service/internal/infra/storage/booking"
)

// Service административные операции над бронированиями:
// листинг, отмена, смена статуса оплаты.
// Создание бронирований сюда не входит - оно идет через движок приема заявок.
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// List возвращает все бронирования, новые встречи первыми
func (s *Service) List(ctx context.Context) ([]*domain.Booking, error) {
	result, err := s.bookingRepo.List(ctx)
	if err != nil {
		s.logger.Error("Bookings.List: failed to list bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}
	return result, nil
}

// Cancel отменяет бронирование: только переход статуса, запись не удаляется.
// Отмененное бронирование освобождает слот - частичный уникальный индекс
// не учитывает отмененные записи.
func (s *Service) Cancel(ctx context.Context, id int64) (*domain.Booking, error) {
	b, err := s.bookingRepo.GetByID(ctx, id)
	if errors.Is(err, booking.ErrBookingNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		s.logger.Error("Bookings.Cancel: failed to fetch booking %d: %v", id, err)
		return nil, fmt.Errorf("%w: failed to fetch booking: %v", ErrInternal, err)
	}

	if !b.CanBeCancelled() {
		s.logger.Warn("Bookings.Cancel: booking %d has status %q, cannot cancel", id, b.Status)
		return nil, ErrCannotCancel
	}

	if err := s.bookingRepo.UpdateStatus(ctx, id, domain.StatusCancelled); err != nil {
		if errors.Is(err, booking.ErrBookingNotFound) {
			return nil, ErrNotFound
		}
		s.logger.Error("Bookings.Cancel: failed to update status for booking %d: %v", id, err)
		return nil, fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
	}

	s.logger.Info("Bookings.Cancel: booking %d cancelled, slot %s released",
		id, b.AppointmentTime.Format("2006-01-02 15:04"))

	b.Status = domain.StatusCancelled

	return b, nil
}

// SetPaymentStatus меняет статус оплаты бронирования
func (s *Service) SetPaymentStatus(ctx context.Context, id int64, status domain.PaymentStatus) error {
	err := s.bookingRepo.UpdatePaymentStatus(ctx, id, status)
	if errors.Is(err, booking.ErrBookingNotFound) {
		return ErrNotFound
	}
	if err != nil {
		s.logger.Error("Bookings.SetPaymentStatus: failed for booking %d: %v", id, err)
		return fmt.Errorf("%w: failed to update payment status: %v", ErrInternal, err)
	}

	s.logger.Info("Bookings.SetPaymentStatus: booking %d marked %s", id, status)

	return nil
}
