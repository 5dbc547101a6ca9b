package blockedslot

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/chaxxbarbers/booking-service/internal/domain"
	"github.com/chaxxbarbers/booking-service/pkg/dbmetrics"
	"github.com/chaxxbarbers/booking-service/pkg/psqlbuilder"
)

// pgUniqueViolation код ошибки PostgreSQL для нарушения уникального ограничения
const pgUniqueViolation = "23505"

var blockColumns = []string{
	"id",
	"date",
	"time_slot",
	"reason",
	"blocked_by",
	"is_full_day",
	"created_at",
}

// Repository репозиторий для работы с блокировками слотов
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория блокировок
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает блокировку слота или целого дня.
// Уникальность пары (date, time_slot) обеспечивается индексом в БД:
// повторная блокировка возвращает ErrAlreadyBlocked.
func (r *Repository) Create(ctx context.Context, block *domain.BlockedSlot) (*domain.BlockedSlot, error) {
	query, args, err := psqlbuilder.Insert("blocked_slots").
		Columns("date", "time_slot", "reason", "blocked_by", "is_full_day").
		Values(block.Date, block.TimeSlot, block.Reason, block.BlockedBy, block.IsFullDay).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&block.ID, &createdAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
			return nil, ErrAlreadyBlocked
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	block.CreatedAt = createdAt.Time

	return block, nil
}

// Delete удаляет блокировку по ключу (date, time_slot | full day).
// Возвращает ErrBlockNotFound, если подходящей блокировки нет.
func (r *Repository) Delete(ctx context.Context, date time.Time, timeSlot *string, isFullDay bool) error {
	deleteBuilder := psqlbuilder.Delete("blocked_slots").
		Where(squirrel.Eq{"date": date})

	if isFullDay {
		deleteBuilder = deleteBuilder.Where(squirrel.Eq{"is_full_day": true})
	} else if timeSlot != nil {
		deleteBuilder = deleteBuilder.Where(squirrel.Eq{"time_slot": *timeSlot})
	}

	query, args, err := deleteBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrBlockNotFound
	}

	return nil
}

// GetFullDayBlock возвращает блокировку целого дня на дату, если она есть
func (r *Repository) GetFullDayBlock(ctx context.Context, date time.Time) (*domain.BlockedSlot, error) {
	query, args, err := psqlbuilder.Select(blockColumns...).
		From("blocked_slots").
		Where(squirrel.Eq{"date": date, "is_full_day": true}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetFullDayBlock - build select query: %v", ErrBuildQuery, err)
	}

	var block domain.BlockedSlot
	var createdAt sql.NullTime

	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&block.ID,
		&block.Date,
		&block.TimeSlot,
		&block.Reason,
		&block.BlockedBy,
		&block.IsFullDay,
		&createdAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBlockNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetFullDayBlock - scan row: %v", ErrScanRow, err)
	}

	block.CreatedAt = createdAt.Time

	return &block, nil
}

// GetSlotBlocks возвращает все пер-слотовые блокировки на дату
func (r *Repository) GetSlotBlocks(ctx context.Context, date time.Time) ([]*domain.BlockedSlot, error) {
	query, args, err := psqlbuilder.Select(blockColumns...).
		From("blocked_slots").
		Where(squirrel.Eq{"date": date, "is_full_day": false}).
		OrderBy("time_slot ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetSlotBlocks - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetSlotBlocks - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBlocks(rows)
}

// ListRange возвращает блокировки за период.
// Если from и to равны nil - возвращает все блокировки.
func (r *Repository) ListRange(ctx context.Context, from, to *time.Time) ([]*domain.BlockedSlot, error) {
	selectBuilder := psqlbuilder.Select(blockColumns...).
		From("blocked_slots").
		OrderBy("date ASC, time_slot ASC")

	if from != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"date": *from})
	}
	if to != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"date": *to})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBlocks(rows)
}

// scanBlocks сканирует результаты запроса в слайс блокировок
func (r *Repository) scanBlocks(rows *sql.Rows) ([]*domain.BlockedSlot, error) {
	blocks := make([]*domain.BlockedSlot, 0)

	for rows.Next() {
		var block domain.BlockedSlot
		var createdAt sql.NullTime

		err := rows.Scan(
			&block.ID,
			&block.Date,
			&block.TimeSlot,
			&block.Reason,
			&block.BlockedBy,
			&block.IsFullDay,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBlocks - scan row: %v", ErrScanRow, err)
		}

		block.CreatedAt = createdAt.Time

		blocks = append(blocks, &block)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBlocks - rows error: %v", ErrScanRow, err)
	}

	return blocks, nil
}
