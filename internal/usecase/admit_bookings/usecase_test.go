package admit_bookings

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
	"github.com/chaxxbarbers/booking-service/internal/service/notifications"
)

type mockBookingRepo struct {
	mock.Mock
}

func (m *mockBookingRepo) FindOccupiedInstants(ctx context.Context, instants []time.Time) ([]time.Time, error) {
	args := m.Called(ctx, instants)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]time.Time), args.Error(1)
}

func (m *mockBookingRepo) InsertBookings(ctx context.Context, records []*domain.Booking) ([]*domain.Booking, []booking.InsertFailure, error) {
	args := m.Called(ctx, records)
	var created []*domain.Booking
	if args.Get(0) != nil {
		created = args.Get(0).([]*domain.Booking)
	}
	var failures []booking.InsertFailure
	if args.Get(1) != nil {
		failures = args.Get(1).([]booking.InsertFailure)
	}
	return created, failures, args.Error(2)
}

type mockDispatcher struct {
	mock.Mock
}

func (m *mockDispatcher) Notify(ctx context.Context, b *domain.Booking) notifications.Result {
	args := m.Called(ctx, b)
	return args.Get(0).(notifications.Result)
}

func (m *mockDispatcher) NotifyAdmin(ctx context.Context, bookings []*domain.Booking) notifications.Result {
	args := m.Called(ctx, bookings)
	return args.Get(0).(notifications.Result)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// понедельник, 08:00 локального времени - до открытия, но все слоты дня впереди
var testNow = time.Date(2025, 6, 2, 8, 0, 0, 0, time.Local)

func newTestUseCase(repo BookingRepository, dispatcher Dispatcher) *UseCase {
	return &UseCase{
		bookingRepo:  repo,
		dispatcher:   dispatcher,
		timeProvider: &fixedTimeProvider{now: testNow},
		logger:       nopLogger{},
	}
}

func item(name, phone, at string) Item {
	return Item{CustomerName: name, PhoneNumber: "+4412345678" + phone, AppointmentTime: at}
}

func TestExecute_EmptyBatch(t *testing.T) {
	repo := new(mockBookingRepo)
	dispatcher := new(mockDispatcher)
	uc := newTestUseCase(repo, dispatcher)

	resp, err := uc.Execute(context.Background(), &Request{})

	assert.ErrorIs(t, err, ErrEmptyBatch)
	assert.Nil(t, resp)
	repo.AssertNotCalled(t, "FindOccupiedInstants", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "InsertBookings", mock.Anything, mock.Anything)
}

func TestExecute_SingleBooking_Success(t *testing.T) {
	repo := new(mockBookingRepo)
	dispatcher := new(mockDispatcher)
	uc := newTestUseCase(repo, dispatcher)

	slot := time.Date(2025, 6, 2, 10, 0, 0, 0, time.Local)
	created := &domain.Booking{
		ID:              1,
		CustomerName:    "John Doe",
		AppointmentTime: slot,
		Status:          domain.StatusPending,
		PaymentStatus:   domain.PaymentUnpaid,
	}

	repo.On("FindOccupiedInstants", mock.Anything, []time.Time{slot}).Return([]time.Time{}, nil).Once()
	repo.On("InsertBookings", mock.Anything, mock.MatchedBy(func(records []*domain.Booking) bool {
		return len(records) == 1 &&
			records[0].Status == domain.StatusPending &&
			records[0].PaymentStatus == domain.PaymentUnpaid &&
			records[0].AppointmentTime.Equal(slot)
	})).Return([]*domain.Booking{created}, nil, nil).Once()
	dispatcher.On("NotifyAdmin", mock.Anything, mock.Anything).Return(notifications.Result{Sent: true}).Once()

	resp, err := uc.Execute(context.Background(), &Request{Items: []Item{
		item("John Doe", "1", "2025-06-02T10:00:00"),
	}})

	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, domain.StatusPending, resp.Bookings[0].Status)
	assert.Equal(t, domain.PaymentUnpaid, resp.Bookings[0].PaymentStatus)
	assert.Equal(t, 1, resp.Summary.Total)
	assert.Equal(t, 1, resp.Summary.Successful)
	assert.Equal(t, 0, resp.Summary.Failed)
	assert.True(t, resp.Summary.AdminNotified)
	assert.NotEmpty(t, resp.BatchID)
	// письмо клиенту не отправляется без email
	dispatcher.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)
	repo.AssertExpectations(t)
}

func TestExecute_PayNow_MarksPaid(t *testing.T) {
	repo := new(mockBookingRepo)
	dispatcher := new(mockDispatcher)
	uc := newTestUseCase(repo, dispatcher)

	repo.On("FindOccupiedInstants", mock.Anything, mock.Anything).Return([]time.Time{}, nil).Once()
	repo.On("InsertBookings", mock.Anything, mock.MatchedBy(func(records []*domain.Booking) bool {
		return len(records) == 1 && records[0].PaymentStatus == domain.PaymentPaid
	})).Return([]*domain.Booking{{ID: 1, PaymentStatus: domain.PaymentPaid}}, nil, nil).Once()
	dispatcher.On("NotifyAdmin", mock.Anything, mock.Anything).Return(notifications.Result{Sent: true}).Once()

	it := item("Jane", "2", "2025-06-02T11:00:00")
	it.PayNow = true

	resp, err := uc.Execute(context.Background(), &Request{Items: []Item{it}})

	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, domain.PaymentPaid, resp.Bookings[0].PaymentStatus)
	repo.AssertExpectations(t)
}

func TestExecute_NormalizesTimeToSlotStart(t *testing.T) {
	repo := new(mockBookingRepo)
	dispatcher := new(mockDispatcher)
	uc := newTestUseCase(repo, dispatcher)

	wantSlot := time.Date(2025, 6, 2, 10, 0, 0, 0, time.Local)

	repo.On("FindOccupiedInstants", mock.Anything, []time.Time{wantSlot}).Return([]time.Time{}, nil).Once()
	repo.On("InsertBookings", mock.Anything, mock.MatchedBy(func(records []*domain.Booking) bool {
		return len(records) == 1 && records[0].AppointmentTime.Equal(wantSlot)
	})).Return([]*domain.Booking{{ID: 1, AppointmentTime: wantSlot}}, nil, nil).Once()
	dispatcher.On("NotifyAdmin", mock.Anything, mock.Anything).Return(notifications.Result{Sent: true}).Once()

	// 10:17 округляется вниз к началу получасового слота
	_, err := uc.Execute(context.Background(), &Request{Items: []Item{
		item("John", "3", "2025-06-02T10:17:00"),
	}})

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestExecute_IntraBatchDuplicate_FirstWins(t *testing.T) {
	repo := new(mockBookingRepo)
	dispatcher := new(mockDispatcher)
	uc := newTestUseCase(repo, dispatcher)

	slot := time.Date(2025, 6, 2, 10, 0, 0, 0, time.Local)

	// оба кандидата нормализуются в один слот, в запрос он попадает один раз
	repo.On("FindOccupiedInstants", mock.Anything, []time.Time{slot}).Return([]time.Time{}, nil).Once()
	repo.On("InsertBookings", mock.Anything, mock.MatchedBy(func(records []*domain.Booking) bool {
		return len(records) == 1 && records[0].CustomerName == "First"
	})).Return([]*domain.Booking{{ID: 1, CustomerName: "First", AppointmentTime: slot}}, nil, nil).Once()
	dispatcher.On("NotifyAdmin", mock.Anything, mock.Anything).Return(notifications.Result{Sent: true}).Once()

	resp, err := uc.Execute(context.Background(), &Request{Items: []Item{
		item("First", "4", "2025-06-02T10:00:00"),
		item("Second", "5", "2025-06-02T10:20:00"), // нормализуется в тот же 10:00
	}})

	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, "First", resp.Bookings[0].CustomerName)
	require.Len(t, resp.Conflicts, 1)
	assert.Equal(t, 1, resp.Conflicts[0].Index)
	assert.Equal(t, "Second", resp.Conflicts[0].CustomerName)
	assert.Equal(t, MsgSlotBooked, resp.Conflicts[0].Message)
	repo.AssertExpectations(t)
}

func TestExecute_MixedBatch_PartialAccounting(t *testing.T) {
	repo := new(mockBookingRepo)
	dispatcher := new(mockDispatcher)
	uc := newTestUseCase(repo, dispatcher)

	okSlot := time.Date(2025, 6, 2, 10, 0, 0, 0, time.Local)
	takenSlot := time.Date(2025, 6, 2, 11, 0, 0, 0, time.Local)

	repo.On("FindOccupiedInstants", mock.Anything, mock.Anything).Return([]time.Time{takenSlot}, nil).Once()
	repo.On("InsertBookings", mock.Anything, mock.MatchedBy(func(records []*domain.Booking) bool {
		return len(records) == 1 && records[0].AppointmentTime.Equal(okSlot)
	})).Return([]*domain.Booking{{ID: 1, CustomerName: "Good", AppointmentTime: okSlot}}, nil, nil).Once()
	dispatcher.On("NotifyAdmin", mock.Anything, mock.Anything).Return(notifications.Result{Sent: true}).Once()

	resp, err := uc.Execute(context.Background(), &Request{Items: []Item{
		{CustomerName: "Broken"}, // нет телефона и времени
		item("Good", "6", "2025-06-02T10:00:00"),
		item("Clashed", "7", "2025-06-02T11:00:00"),
	}})

	require.NoError(t, err)
	assert.Equal(t, 3, resp.Summary.Total)
	assert.Equal(t, 1, resp.Summary.Successful)
	assert.Equal(t, 2, resp.Summary.Failed)
	require.Len(t, resp.ValidationErrors, 1)
	assert.Equal(t, 0, resp.ValidationErrors[0].Index)
	assert.ElementsMatch(t, []string{"phone_number", "appointment_time"}, resp.ValidationErrors[0].MissingFields)
	require.Len(t, resp.Conflicts, 1)
	assert.Equal(t, 2, resp.Conflicts[0].Index)
	repo.AssertExpectations(t)
}

func TestExecute_PastTime_RejectedWithoutStorage(t *testing.T) {
	repo := new(mockBookingRepo)
	dispatcher := new(mockDispatcher)
	uc := newTestUseCase(repo, dispatcher)

	resp, err := uc.Execute(context.Background(), &Request{Items: []Item{
		item("John", "8", "2025-06-01T10:00:00"),
	}})

	assert.ErrorIs(t, err, ErrAllInvalid)
	require.NotNil(t, resp)
	require.Len(t, resp.ValidationErrors, 1)
	assert.Equal(t, MsgTimeInPast, resp.ValidationErrors[0].Message)
	repo.AssertNotCalled(t, "FindOccupiedInstants", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "InsertBookings", mock.Anything, mock.Anything)
	dispatcher.AssertNotCalled(t, "NotifyAdmin", mock.Anything, mock.Anything)
}

func TestExecute_OutsideBusinessHours_Rejected(t *testing.T) {
	repo := new(mockBookingRepo)
	dispatcher := new(mockDispatcher)
	uc := newTestUseCase(repo, dispatcher)

	// понедельник закрывается в 18:00, слот 18:30 недоступен
	resp, err := uc.Execute(context.Background(), &Request{Items: []Item{
		item("John", "9", "2025-06-02T18:30:00"),
	}})

	assert.ErrorIs(t, err, ErrAllInvalid)
	require.Len(t, resp.ValidationErrors, 1)
	assert.Equal(t, MsgOutsideHours, resp.ValidationErrors[0].Message)
}

func TestExecute_InvalidTimeFormat_Rejected(t *testing.T) {
	repo := new(mockBookingRepo)
	dispatcher := new(mockDispatcher)
	uc := newTestUseCase(repo, dispatcher)

	resp, err := uc.Execute(context.Background(), &Request{Items: []Item{
		item("John", "0", "next tuesday"),
	}})

	assert.ErrorIs(t, err, ErrAllInvalid)
	require.Len(t, resp.ValidationErrors, 1)
	assert.Equal(t, MsgInvalidTime, resp.ValidationErrors[0].Message)
	assert.Equal(t, "next tuesday", resp.ValidationErrors[0].Provided)
}

func TestExecute_AllConflicting(t *testing.T) {
	repo := new(mockBookingRepo)
	dispatcher := new(mockDispatcher)
	uc := newTestUseCase(repo, dispatcher)

	slot := time.Date(2025, 6, 2, 10, 0, 0, 0, time.Local)
	repo.On("FindOccupiedInstants", mock.Anything, mock.Anything).Return([]time.Time{slot}, nil).Once()

	resp, err := uc.Execute(context.Background(), &Request{Items: []Item{
		item("John", "1", "2025-06-02T10:00:00"),
	}})

	assert.ErrorIs(t, err, ErrAllConflicting)
	require.NotNil(t, resp)
	require.Len(t, resp.Conflicts, 1)
	assert.Equal(t, MsgSlotBooked, resp.Conflicts[0].Message)
	assert.Equal(t, 0, resp.Summary.Successful)
	repo.AssertNotCalled(t, "InsertBookings", mock.Anything, mock.Anything)
	dispatcher.AssertNotCalled(t, "NotifyAdmin", mock.Anything, mock.Anything)
}

func TestExecute_InsertRace_ReclassifiedAsConflict(t *testing.T) {
	repo := new(mockBookingRepo)
	dispatcher := new(mockDispatcher)
	uc := newTestUseCase(repo, dispatcher)

	okSlot := time.Date(2025, 6, 2, 10, 0, 0, 0, time.Local)

	repo.On("FindOccupiedInstants", mock.Anything, mock.Anything).Return([]time.Time{}, nil).Once()
	// конкурирующий вызов занял второй слот между проверкой и вставкой
	repo.On("InsertBookings", mock.Anything, mock.Anything).Return(
		[]*domain.Booking{{ID: 1, CustomerName: "Lucky", AppointmentTime: okSlot}},
		[]booking.InsertFailure{{Index: 1, Err: booking.ErrSlotTaken}},
		nil,
	).Once()
	dispatcher.On("NotifyAdmin", mock.Anything, mock.Anything).Return(notifications.Result{Sent: true}).Once()

	resp, err := uc.Execute(context.Background(), &Request{Items: []Item{
		item("Lucky", "2", "2025-06-02T10:00:00"),
		item("Raced", "3", "2025-06-02T11:00:00"),
	}})

	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	require.Len(t, resp.Conflicts, 1)
	assert.Equal(t, 1, resp.Conflicts[0].Index)
	assert.Equal(t, "Raced", resp.Conflicts[0].CustomerName)
	assert.Equal(t, MsgSlotBooked, resp.Conflicts[0].Message)
	assert.Equal(t, 1, resp.Summary.Successful)
	assert.Equal(t, 1, resp.Summary.Failed)
	repo.AssertExpectations(t)
}

func TestExecute_InsertRace_AllLost(t *testing.T) {
	repo := new(mockBookingRepo)
	dispatcher := new(mockDispatcher)
	uc := newTestUseCase(repo, dispatcher)

	repo.On("FindOccupiedInstants", mock.Anything, mock.Anything).Return([]time.Time{}, nil).Once()
	repo.On("InsertBookings", mock.Anything, mock.Anything).Return(
		nil,
		[]booking.InsertFailure{{Index: 0, Err: booking.ErrSlotTaken}},
		nil,
	).Once()

	resp, err := uc.Execute(context.Background(), &Request{Items: []Item{
		item("Raced", "4", "2025-06-02T10:00:00"),
	}})

	assert.ErrorIs(t, err, ErrAllConflicting)
	require.Len(t, resp.Conflicts, 1)
	dispatcher.AssertNotCalled(t, "NotifyAdmin", mock.Anything, mock.Anything)
}

func TestExecute_NotificationFailure_DoesNotFailBooking(t *testing.T) {
	repo := new(mockBookingRepo)
	dispatcher := new(mockDispatcher)
	uc := newTestUseCase(repo, dispatcher)

	email := "john@example.com"
	slot := time.Date(2025, 6, 2, 10, 0, 0, 0, time.Local)
	created := &domain.Booking{ID: 1, CustomerName: "John", Email: &email, AppointmentTime: slot}

	repo.On("FindOccupiedInstants", mock.Anything, mock.Anything).Return([]time.Time{}, nil).Once()
	repo.On("InsertBookings", mock.Anything, mock.Anything).Return([]*domain.Booking{created}, nil, nil).Once()
	dispatcher.On("Notify", mock.Anything, created).Return(notifications.Result{To: email}).Once()
	dispatcher.On("NotifyAdmin", mock.Anything, mock.Anything).Return(notifications.Result{}).Once()

	it := item("John", "5", "2025-06-02T10:00:00")
	it.Email = &email

	resp, err := uc.Execute(context.Background(), &Request{Items: []Item{it}})

	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, 1, resp.Summary.Successful)
	assert.Equal(t, 0, resp.Summary.EmailsSent)
	assert.False(t, resp.Summary.AdminNotified)
	require.Len(t, resp.EmailResults.CustomerEmails, 1)
	assert.False(t, resp.EmailResults.CustomerEmails[0].Sent)
	dispatcher.AssertExpectations(t)
}

func TestExecute_InvalidEmail_Rejected(t *testing.T) {
	repo := new(mockBookingRepo)
	dispatcher := new(mockDispatcher)
	uc := newTestUseCase(repo, dispatcher)

	bad := "not-an-email"
	it := item("John", "6", "2025-06-02T10:00:00")
	it.Email = &bad

	resp, err := uc.Execute(context.Background(), &Request{Items: []Item{it}})

	assert.ErrorIs(t, err, ErrAllInvalid)
	require.Len(t, resp.ValidationErrors, 1)
	assert.Equal(t, MsgInvalidEmail, resp.ValidationErrors[0].Message)
	assert.Equal(t, bad, resp.ValidationErrors[0].Provided)
}

func TestExecute_StorageError_Internal(t *testing.T) {
	repo := new(mockBookingRepo)
	dispatcher := new(mockDispatcher)
	uc := newTestUseCase(repo, dispatcher)

	repo.On("FindOccupiedInstants", mock.Anything, mock.Anything).Return(nil, errors.New("connection refused")).Once()

	resp, err := uc.Execute(context.Background(), &Request{Items: []Item{
		item("John", "7", "2025-06-02T10:00:00"),
	}})

	assert.ErrorIs(t, err, ErrInternal)
	assert.Nil(t, resp)
}
