package blockedslot

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chaxxbarbers/booking-service/internal/domain"
	"github.com/chaxxbarbers/booking-service/pkg/ptr"
)

func newMock(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), mock
}

func TestCreate_Success(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery("INSERT INTO blocked_slots").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(1, time.Now()))

	block, err := repo.Create(context.Background(), &domain.BlockedSlot{
		Date:      time.Date(2025, 6, 2, 0, 0, 0, 0, time.Local),
		TimeSlot:  ptr.Ptr("12:00"),
		Reason:    "Lunch",
		BlockedBy: "admin",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), block.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_DuplicateKey(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery("INSERT INTO blocked_slots").
		WillReturnError(&pq.Error{Code: "23505"})

	_, err := repo.Create(context.Background(), &domain.BlockedSlot{
		Date:     time.Date(2025, 6, 2, 0, 0, 0, 0, time.Local),
		TimeSlot: ptr.Ptr("12:00"),
	})

	assert.ErrorIs(t, err, ErrAlreadyBlocked)
}

func TestDelete_NotFound(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectExec("DELETE FROM blocked_slots").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), time.Date(2025, 6, 2, 0, 0, 0, 0, time.Local), ptr.Ptr("12:00"), false)

	assert.ErrorIs(t, err, ErrBlockNotFound)
}

func TestGetFullDayBlock_NotFound(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery("SELECT .+ FROM blocked_slots").
		WillReturnRows(sqlmock.NewRows(blockColumns))

	_, err := repo.GetFullDayBlock(context.Background(), time.Date(2025, 6, 2, 0, 0, 0, 0, time.Local))

	assert.ErrorIs(t, err, ErrBlockNotFound)
}

func TestGetSlotBlocks_ScansRows(t *testing.T) {
	repo, mock := newMock(t)

	date := time.Date(2025, 6, 2, 0, 0, 0, 0, time.Local)
	mock.ExpectQuery("SELECT .+ FROM blocked_slots").
		WillReturnRows(sqlmock.NewRows(blockColumns).
			AddRow(1, date, "12:00", "Lunch", "admin", false, time.Now()).
			AddRow(2, date, "12:30", "Lunch", "admin", false, time.Now()))

	blocks, err := repo.GetSlotBlocks(context.Background(), date)

	require.NoError(t, err)
	require.Len(t, blocks, 2)
	assert.Equal(t, "12:00", *blocks[0].TimeSlot)
	assert.False(t, blocks[0].IsFullDay)
}
