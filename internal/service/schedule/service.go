package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/chaxxbarbers/booking-service/internal/domain"
	"github.com/chaxxbarbers/booking-service/internal/infra/storage/blockedslot"
)

// Service административное управление блокировками расписания.
// Блокировка целого дня и пер-слотовые блокировки той же даты сосуществуют:
// уникальность обеспечивается ключом (date, time_slot), где у блокировки
// целого дня слот NULL.
type Service struct {
	blockedSlotRepo BlockedSlotRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса
func NewService(blockedSlotRepo BlockedSlotRepository, logger Logger) *Service {
	return &Service{
		blockedSlotRepo: blockedSlotRepo,
		logger:          logger,
	}
}

// BlockParams параметры создания блокировки
type BlockParams struct {
	Date      string  // YYYY-MM-DD
	TimeSlot  *string // HH:MM, nil для блокировки целого дня
	Reason    string
	BlockedBy string
	FullDay   bool
}

// Block создает блокировку слота или целого дня.
// Повторная блокировка того же ключа возвращает ErrAlreadyBlocked.
func (s *Service) Block(ctx context.Context, params BlockParams) (*domain.BlockedSlot, error) {
	date, err := parseDate(params.Date)
	if err != nil {
		return nil, err
	}

	if !params.FullDay {
		if params.TimeSlot == nil || *params.TimeSlot == "" {
			return nil, fmt.Errorf("%w: time_slot is required unless full_day is set", ErrInvalidTimeSlot)
		}
		if err := validateSlotLabel(date, *params.TimeSlot); err != nil {
			return nil, err
		}
	}

	block := &domain.BlockedSlot{
		Date:      date,
		Reason:    params.Reason,
		BlockedBy: params.BlockedBy,
		IsFullDay: params.FullDay,
	}
	if !params.FullDay {
		block.TimeSlot = params.TimeSlot
	}
	if block.Reason == "" {
		block.Reason = domain.DefaultBlockReason
	}
	if block.BlockedBy == "" {
		block.BlockedBy = domain.DefaultBlockedBy
	}

	created, err := s.blockedSlotRepo.Create(ctx, block)
	if errors.Is(err, blockedslot.ErrAlreadyBlocked) {
		return nil, ErrAlreadyBlocked
	}
	if err != nil {
		s.logger.Error("Schedule.Block: failed to create block for %s: %v", params.Date, err)
		return nil, fmt.Errorf("%w: failed to create block: %v", ErrInternal, err)
	}

	if params.FullDay {
		s.logger.Info("Schedule.Block: %s fully blocked by %s (%s)", params.Date, block.BlockedBy, block.Reason)
	} else {
		s.logger.Info("Schedule.Block: %s %s blocked by %s (%s)", params.Date, *block.TimeSlot, block.BlockedBy, block.Reason)
	}

	return created, nil
}

// Unblock удаляет блокировку по ключу (дата, слот | целый день)
func (s *Service) Unblock(ctx context.Context, dateRaw string, timeSlot *string, fullDay bool) error {
	date, err := parseDate(dateRaw)
	if err != nil {
		return err
	}

	if !fullDay && (timeSlot == nil || *timeSlot == "") {
		return fmt.Errorf("%w: time_slot is required unless full_day is set", ErrInvalidTimeSlot)
	}

	err = s.blockedSlotRepo.Delete(ctx, date, timeSlot, fullDay)
	if errors.Is(err, blockedslot.ErrBlockNotFound) {
		return ErrBlockNotFound
	}
	if err != nil {
		s.logger.Error("Schedule.Unblock: failed to delete block for %s: %v", dateRaw, err)
		return fmt.Errorf("%w: failed to delete block: %v", ErrInternal, err)
	}

	s.logger.Info("Schedule.Unblock: block removed for %s", dateRaw)

	return nil
}

// ListBlocks возвращает блокировки за период.
// Пустые границы означают открытый диапазон.
func (s *Service) ListBlocks(ctx context.Context, fromRaw, toRaw string) ([]*domain.BlockedSlot, error) {
	var from, to *time.Time

	if fromRaw != "" {
		parsed, err := parseDate(fromRaw)
		if err != nil {
			return nil, err
		}
		from = &parsed
	}
	if toRaw != "" {
		parsed, err := parseDate(toRaw)
		if err != nil {
			return nil, err
		}
		to = &parsed
	}

	blocks, err := s.blockedSlotRepo.ListRange(ctx, from, to)
	if err != nil {
		s.logger.Error("Schedule.ListBlocks: failed to list blocks: %v", err)
		return nil, fmt.Errorf("%w: failed to list blocks: %v", ErrInternal, err)
	}

	return blocks, nil
}

func parseDate(raw string) (time.Time, error) {
	date, err := time.ParseInLocation(domain.DateFormat, raw, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, raw)
	}
	return date, nil
}

// validateSlotLabel проверяет, что метка HH:MM попадает на сетку слотов даты
func validateSlotLabel(date time.Time, label string) error {
	parsed, err := time.Parse(domain.TimeFormat, label)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeSlot, label)
	}

	instant := time.Date(date.Year(), date.Month(), date.Day(),
		parsed.Hour(), parsed.Minute(), 0, 0, time.Local)
	if !domain.WithinOperatingHours(instant) {
		return fmt.Errorf("%w: %q", ErrInvalidTimeSlot, label)
	}

	return nil
}
