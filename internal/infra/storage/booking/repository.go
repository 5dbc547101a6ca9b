package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/chaxxbarbers/booking-service/internal/domain"
	"github.com/chaxxbarbers/booking-service/pkg/psqlbuilder"
)

// pgUniqueViolation код ошибки PostgreSQL для нарушения уникального ограничения
const pgUniqueViolation = "23505"

var bookingColumns = []string{
	"id",
	"customer_name",
	"phone_number",
	"email",
	"appointment_time",
	"status",
	"payment_status",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// FindOccupiedInstants возвращает подмножество переданных моментов времени,
// на которые уже есть активное (не отмененное) бронирование.
// Один запрос на весь набор кандидатов, без пер-запросных round-trip-ов.
func (r *Repository) FindOccupiedInstants(ctx context.Context, instants []time.Time) ([]time.Time, error) {
	if len(instants) == 0 {
		return nil, nil
	}

	query, args, err := psqlbuilder.Select("appointment_time").
		From("bookings").
		Where(squirrel.Eq{"appointment_time": instants}).
		Where(squirrel.NotEq{"status": domain.StatusCancelled}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindOccupiedInstants - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FindOccupiedInstants - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	occupied := make([]time.Time, 0, len(instants))
	for rows.Next() {
		var t time.Time
		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("%w: FindOccupiedInstants - scan row: %v", ErrScanRow, err)
		}
		occupied = append(occupied, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: FindOccupiedInstants - rows error: %v", ErrScanRow, err)
	}

	return occupied, nil
}

// InsertBookings вставляет записи по одной, не прерывая пакет на нарушении
// уникальности слота: такая запись попадает в failures с ErrSlotTaken,
// остальные продолжают вставляться (аналог unordered bulk insert).
// Любая другая ошибка БД прерывает пакет целиком.
// Частично записанных бронирований не бывает: запись либо вставлена, либо нет.
func (r *Repository) InsertBookings(ctx context.Context, records []*domain.Booking) ([]*domain.Booking, []InsertFailure, error) {
	created := make([]*domain.Booking, 0, len(records))
	failures := make([]InsertFailure, 0)

	for i, record := range records {
		query, args, err := psqlbuilder.Insert("bookings").
			Columns(
				"customer_name",
				"phone_number",
				"email",
				"appointment_time",
				"status",
				"payment_status",
			).
			Values(
				record.CustomerName,
				record.PhoneNumber,
				record.Email,
				record.AppointmentTime,
				record.Status,
				record.PaymentStatus,
			).
			Suffix("RETURNING id, created_at, updated_at").
			ToSql()
		if err != nil {
			return nil, nil, fmt.Errorf("%w: InsertBookings - build insert query: %v", ErrBuildQuery, err)
		}

		var createdAt, updatedAt sql.NullTime
		err = r.db.QueryRowContext(ctx, query, args...).Scan(
			&record.ID,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			var pqErr *pq.Error
			if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
				failures = append(failures, InsertFailure{Index: i, Err: ErrSlotTaken})
				continue
			}
			return nil, nil, fmt.Errorf("%w: InsertBookings - execute insert: %v", ErrExecQuery, err)
		}

		record.CreatedAt = createdAt.Time
		record.UpdatedAt = updatedAt.Time
		created = append(created, record)
	}

	return created, failures, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var b domain.Booking
	var createdAt, updatedAt sql.NullTime

	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&b.ID,
		&b.CustomerName,
		&b.PhoneNumber,
		&b.Email,
		&b.AppointmentTime,
		&b.Status,
		&b.PaymentStatus,
		&createdAt,
		&updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return &b, nil
}

// List возвращает все бронирования, новые встречи первыми
func (r *Repository) List(ctx context.Context) ([]*domain.Booking, error) {
	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		OrderBy("appointment_time DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// GetActiveInWindow возвращает активные бронирования с временем встречи
// в полуинтервале [from, to). Используется для расчета занятости слотов на дату.
func (r *Repository) GetActiveInWindow(ctx context.Context, from, to time.Time) ([]*domain.Booking, error) {
	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.GtOrEq{"appointment_time": from}).
		Where(squirrel.Lt{"appointment_time": to}).
		Where(squirrel.NotEq{"status": domain.StatusCancelled}).
		OrderBy("appointment_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveInWindow - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveInWindow - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// UpdateStatus обновляет статус бронирования
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	if !domain.ValidStatus(status) {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// UpdatePaymentStatus обновляет статус оплаты бронирования
func (r *Repository) UpdatePaymentStatus(ctx context.Context, id int64, status domain.PaymentStatus) error {
	if !domain.ValidPaymentStatus(status) {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	query, args, err := psqlbuilder.Update("bookings").
		Set("payment_status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdatePaymentStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdatePaymentStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdatePaymentStatus - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var b domain.Booking
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&b.ID,
			&b.CustomerName,
			&b.PhoneNumber,
			&b.Email,
			&b.AppointmentTime,
			&b.Status,
			&b.PaymentStatus,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}

		b.CreatedAt = createdAt.Time
		b.UpdatedAt = updatedAt.Time

		bookings = append(bookings, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
