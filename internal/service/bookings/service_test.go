package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/chaxxbarbers/booking-service/internal/domain"
	"github.com/chaxxbarbers/booking-service/internal/infra/storage/booking"
)

type mockBookingRepo struct {
	mock.Mock
}

func (m *mockBookingRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *mockBookingRepo) List(ctx context.Context) ([]*domain.Booking, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Booking), args.Error(1)
}

func (m *mockBookingRepo) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *mockBookingRepo) UpdatePaymentStatus(ctx context.Context, id int64, status domain.PaymentStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestCancel_PendingBooking(t *testing.T) {
	repo := new(mockBookingRepo)
	svc := NewService(repo, nopLogger{})

	repo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Booking{
		ID:              1,
		Status:          domain.StatusPending,
		AppointmentTime: time.Date(2025, 6, 2, 10, 0, 0, 0, time.Local),
	}, nil).Once()
	repo.On("UpdateStatus", mock.Anything, int64(1), domain.StatusCancelled).Return(nil).Once()

	b, err := svc.Cancel(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, b.Status)
	repo.AssertExpectations(t)
}

func TestCancel_AlreadyCancelled(t *testing.T) {
	repo := new(mockBookingRepo)
	svc := NewService(repo, nopLogger{})

	repo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Booking{
		ID:     1,
		Status: domain.StatusCancelled,
	}, nil).Once()

	_, err := svc.Cancel(context.Background(), 1)

	assert.ErrorIs(t, err, ErrCannotCancel)
	repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestCancel_Completed(t *testing.T) {
	repo := new(mockBookingRepo)
	svc := NewService(repo, nopLogger{})

	repo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Booking{
		ID:     1,
		Status: domain.StatusCompleted,
	}, nil).Once()

	_, err := svc.Cancel(context.Background(), 1)

	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestCancel_NotFound(t *testing.T) {
	repo := new(mockBookingRepo)
	svc := NewService(repo, nopLogger{})

	repo.On("GetByID", mock.Anything, int64(42)).Return(nil, booking.ErrBookingNotFound).Once()

	_, err := svc.Cancel(context.Background(), 42)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestList_PropagatesStorageError(t *testing.T) {
	repo := new(mockBookingRepo)
	svc := NewService(repo, nopLogger{})

	repo.On("List", mock.Anything).Return(nil, errors.New("connection refused")).Once()

	_, err := svc.List(context.Background())

	assert.ErrorIs(t, err, ErrInternal)
}

func TestSetPaymentStatus_NotFound(t *testing.T) {
	repo := new(mockBookingRepo)
	svc := NewService(repo, nopLogger{})

	repo.On("UpdatePaymentStatus", mock.Anything, int64(7), domain.PaymentPaid).Return(booking.ErrBookingNotFound).Once()

	err := svc.SetPaymentStatus(context.Background(), 7, domain.PaymentPaid)

	assert.ErrorIs(t, err, ErrNotFound)
}
