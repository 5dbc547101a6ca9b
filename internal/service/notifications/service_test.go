package notifications

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/chaxxbarbers/booking-service/internal/domain"
	"github.com/chaxxbarbers/booking-service/internal/integrations/mailjet"
	"github.com/chaxxbarbers/booking-service/pkg/ptr"
)

type mockMailer struct {
	mock.Mock
}

func (m *mockMailer) IsConfigured() bool {
	return m.Called().Bool(0)
}

func (m *mockMailer) Send(ctx context.Context, msg mailjet.Message) error {
	return m.Called(ctx, msg).Error(0)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func sampleBooking() *domain.Booking {
	return &domain.Booking{
		ID:              1,
		CustomerName:    "John Doe",
		PhoneNumber:     "+441234567890",
		Email:           ptr.Ptr("john@example.com"),
		AppointmentTime: time.Date(2025, 6, 2, 10, 0, 0, 0, time.Local),
		Status:          domain.StatusPending,
		PaymentStatus:   domain.PaymentUnpaid,
	}
}

func newTestService(mailer MailSender) *Service {
	return NewService(mailer, "bookings@example.com", "Chaxx Barbershop", "admin@example.com", nopLogger{})
}

func TestNotify_Success(t *testing.T) {
	mailer := new(mockMailer)
	svc := newTestService(mailer)

	mailer.On("IsConfigured").Return(true)
	mailer.On("Send", mock.Anything, mock.MatchedBy(func(msg mailjet.Message) bool {
		return msg.ToEmail == "john@example.com" &&
			msg.ToName == "John Doe" &&
			msg.Subject == "Booking Confirmation - Chaxx Barbershop" &&
			msg.HTMLPart != ""
	})).Return(nil).Once()

	result := svc.Notify(context.Background(), sampleBooking())

	assert.True(t, result.Sent)
	assert.Equal(t, "john@example.com", result.To)
	mailer.AssertExpectations(t)
}

func TestNotify_NoEmail(t *testing.T) {
	mailer := new(mockMailer)
	svc := newTestService(mailer)

	b := sampleBooking()
	b.Email = nil

	result := svc.Notify(context.Background(), b)

	assert.False(t, result.Sent)
	assert.Equal(t, ReasonNoEmail, result.Reason)
	mailer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestNotify_MailerNotConfigured(t *testing.T) {
	mailer := new(mockMailer)
	svc := newTestService(mailer)

	mailer.On("IsConfigured").Return(false)

	result := svc.Notify(context.Background(), sampleBooking())

	assert.False(t, result.Sent)
	assert.Equal(t, ReasonNotConfigured, result.Reason)
	mailer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestNotify_SendFailure(t *testing.T) {
	mailer := new(mockMailer)
	svc := newTestService(mailer)

	mailer.On("IsConfigured").Return(true)
	mailer.On("Send", mock.Anything, mock.Anything).Return(errors.New("api unavailable")).Once()

	result := svc.Notify(context.Background(), sampleBooking())

	assert.False(t, result.Sent)
	assert.Equal(t, "john@example.com", result.To)
	assert.NotEmpty(t, result.Reason)
}

func TestNotifyAdmin_SingleBooking(t *testing.T) {
	mailer := new(mockMailer)
	svc := newTestService(mailer)

	mailer.On("IsConfigured").Return(true)
	mailer.On("Send", mock.Anything, mock.MatchedBy(func(msg mailjet.Message) bool {
		return msg.ToEmail == "admin@example.com" && msg.Subject == "New Booking - Chaxx Barbershop"
	})).Return(nil).Once()

	result := svc.NotifyAdmin(context.Background(), []*domain.Booking{sampleBooking()})

	assert.True(t, result.Sent)
	mailer.AssertExpectations(t)
}

func TestNotifyAdmin_BulkSubject(t *testing.T) {
	mailer := new(mockMailer)
	svc := newTestService(mailer)

	mailer.On("IsConfigured").Return(true)
	mailer.On("Send", mock.Anything, mock.MatchedBy(func(msg mailjet.Message) bool {
		return msg.Subject == "New Bulk Booking: 3 Appointments"
	})).Return(nil).Once()

	bookings := []*domain.Booking{sampleBooking(), sampleBooking(), sampleBooking()}
	result := svc.NotifyAdmin(context.Background(), bookings)

	assert.True(t, result.Sent)
	mailer.AssertExpectations(t)
}

func TestNotifyAdmin_EmptyBatch(t *testing.T) {
	mailer := new(mockMailer)
	svc := newTestService(mailer)

	result := svc.NotifyAdmin(context.Background(), nil)

	assert.False(t, result.Sent)
	mailer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}
