package get_availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/chaxxbarbers/booking-service/internal/domain"
	"github.com/chaxxbarbers/booking-service/internal/infra/storage/blockedslot"
)

// UseCase use case расчета доступности слотов на дату.
// Путь чтения: не зависит от движка приема заявок, но строит разбиение
// по той же сетке слотов и тем же правилам нормализации.
type UseCase struct {
	bookingRepo     BookingRepository
	blockedSlotRepo BlockedSlotRepository
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, blockedSlotRepo BlockedSlotRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo:     bookingRepo,
		blockedSlotRepo: blockedSlotRepo,
		logger:          logger,
	}
}

// Execute возвращает разбиение сетки слотов даты на свободные, занятые и
// заблокированные. Блокировка целого дня короткозамыкает расчет:
// вся сетка отдается как заблокированная, занятость не запрашивается.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	date, err := time.ParseInLocation(domain.DateFormat, req.Date, time.Local)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, req.Date)
	}

	dayType := DayTypeWeekday
	if domain.IsWeekend(date) {
		dayType = DayTypeWeekend
	}

	labels := domain.SlotGridLabels(date)

	fullDay, err := uc.blockedSlotRepo.GetFullDayBlock(ctx, date)
	if err != nil && !errors.Is(err, blockedslot.ErrBlockNotFound) {
		uc.logger.Error("GetAvailability: failed to query full-day block for %s: %v", req.Date, err)
		return nil, fmt.Errorf("%w: failed to query full-day block: %v", ErrInternal, err)
	}

	if fullDay != nil {
		uc.logger.Info("GetAvailability: %s is fully blocked (%s)", req.Date, fullDay.Reason)
		return &Response{
			Date:             req.Date,
			DayType:          dayType,
			AvailableSlots:   []string{},
			BookedSlots:      []string{},
			BlockedSlots:     labels,
			IsFullDayBlocked: true,
			BlockedReason:    fullDay.Reason,
			TotalSlots:       len(labels),
			AvailableCount:   0,
		}, nil
	}

	slotBlocks, err := uc.blockedSlotRepo.GetSlotBlocks(ctx, date)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to query slot blocks for %s: %v", req.Date, err)
		return nil, fmt.Errorf("%w: failed to query slot blocks: %v", ErrInternal, err)
	}

	blocked := make(map[string]struct{}, len(slotBlocks))
	for _, block := range slotBlocks {
		if block.TimeSlot != nil {
			blocked[*block.TimeSlot] = struct{}{}
		}
	}

	// границы дня в локальной зоне, полуинтервал [00:00, 00:00 след. дня)
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.Local)
	dayEnd := dayStart.AddDate(0, 0, 1)

	bookings, err := uc.bookingRepo.GetActiveInWindow(ctx, dayStart, dayEnd)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to query bookings for %s: %v", req.Date, err)
		return nil, fmt.Errorf("%w: failed to query bookings: %v", ErrInternal, err)
	}

	booked := make(map[string]struct{}, len(bookings))
	for _, b := range bookings {
		booked[b.AppointmentTime.Format(domain.TimeFormat)] = struct{}{}
	}

	// Разбиение в порядке сетки; блокировка имеет приоритет над занятостью
	resp := &Response{
		Date:           req.Date,
		DayType:        dayType,
		AvailableSlots: make([]string, 0, len(labels)),
		BookedSlots:    make([]string, 0, len(booked)),
		BlockedSlots:   make([]string, 0, len(blocked)),
		TotalSlots:     len(labels),
	}

	for _, label := range labels {
		if _, ok := blocked[label]; ok {
			resp.BlockedSlots = append(resp.BlockedSlots, label)
			continue
		}
		if _, ok := booked[label]; ok {
			resp.BookedSlots = append(resp.BookedSlots, label)
			continue
		}
		resp.AvailableSlots = append(resp.AvailableSlots, label)
	}

	resp.AvailableCount = len(resp.AvailableSlots)

	uc.logger.Info("GetAvailability: %s (%s) - available=%d, booked=%d, blocked=%d",
		req.Date, dayType, resp.AvailableCount, len(resp.BookedSlots), len(resp.BlockedSlots))

	return resp, nil
}
