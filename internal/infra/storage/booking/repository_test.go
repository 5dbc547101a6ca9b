package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chaxxbarbers/booking-service/internal/domain"
)

func newMock(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), mock
}

func TestFindOccupiedInstants_EmptyInput(t *testing.T) {
	repo, mock := newMock(t)

	occupied, err := repo.FindOccupiedInstants(context.Background(), nil)

	require.NoError(t, err)
	assert.Empty(t, occupied)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindOccupiedInstants_ReturnsSubset(t *testing.T) {
	repo, mock := newMock(t)

	taken := time.Date(2025, 6, 2, 10, 0, 0, 0, time.Local)
	free := time.Date(2025, 6, 2, 11, 0, 0, 0, time.Local)

	mock.ExpectQuery("SELECT appointment_time FROM bookings").
		WithArgs(taken, free, string(domain.StatusCancelled)).
		WillReturnRows(sqlmock.NewRows([]string{"appointment_time"}).AddRow(taken))

	occupied, err := repo.FindOccupiedInstants(context.Background(), []time.Time{taken, free})

	require.NoError(t, err)
	require.Len(t, occupied, 1)
	assert.True(t, occupied[0].Equal(taken))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertBookings_ContinuesPastConflict(t *testing.T) {
	repo, mock := newMock(t)

	now := time.Now()
	records := []*domain.Booking{
		{CustomerName: "A", PhoneNumber: "1", AppointmentTime: time.Date(2025, 6, 2, 10, 0, 0, 0, time.Local), Status: domain.StatusPending, PaymentStatus: domain.PaymentUnpaid},
		{CustomerName: "B", PhoneNumber: "2", AppointmentTime: time.Date(2025, 6, 2, 11, 0, 0, 0, time.Local), Status: domain.StatusPending, PaymentStatus: domain.PaymentUnpaid},
		{CustomerName: "C", PhoneNumber: "3", AppointmentTime: time.Date(2025, 6, 2, 12, 0, 0, 0, time.Local), Status: domain.StatusPending, PaymentStatus: domain.PaymentUnpaid},
	}

	mock.ExpectQuery("INSERT INTO bookings").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(1, now, now))
	// второй слот перехвачен конкурирующей вставкой
	mock.ExpectQuery("INSERT INTO bookings").
		WillReturnError(&pq.Error{Code: "23505"})
	mock.ExpectQuery("INSERT INTO bookings").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(3, now, now))

	created, failures, err := repo.InsertBookings(context.Background(), records)

	require.NoError(t, err)
	require.Len(t, created, 2)
	assert.Equal(t, int64(1), created[0].ID)
	assert.Equal(t, int64(3), created[1].ID)
	require.Len(t, failures, 1)
	assert.Equal(t, 1, failures[0].Index)
	assert.ErrorIs(t, failures[0].Err, ErrSlotTaken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertBookings_OtherErrorAborts(t *testing.T) {
	repo, mock := newMock(t)

	records := []*domain.Booking{
		{CustomerName: "A", PhoneNumber: "1", AppointmentTime: time.Now(), Status: domain.StatusPending, PaymentStatus: domain.PaymentUnpaid},
	}

	mock.ExpectQuery("INSERT INTO bookings").
		WillReturnError(errors.New("connection reset"))

	created, failures, err := repo.InsertBookings(context.Background(), records)

	assert.ErrorIs(t, err, ErrExecQuery)
	assert.Nil(t, created)
	assert.Nil(t, failures)
}

func TestUpdateStatus_NotFound(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectExec("UPDATE bookings").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateStatus(context.Background(), 42, domain.StatusCancelled)

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestUpdateStatus_RejectsUnknownStatus(t *testing.T) {
	repo, mock := newMock(t)

	err := repo.UpdateStatus(context.Background(), 1, domain.BookingStatus("archived"))

	assert.ErrorIs(t, err, ErrInvalidStatus)
	assert.NoError(t, mock.ExpectationsWereMet())
}
