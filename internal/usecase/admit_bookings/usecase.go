package admit_bookings

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/chaxxbarbers/booking-service/internal/domain"
	"github.com/chaxxbarbers/booking-service/internal/service/notifications"
)

// UseCase use case приема пакета заявок на бронирование.
// Единственная точка, через которую появляются новые бронирования:
// одиночная заявка - это пакет из одного элемента.
type UseCase struct {
	bookingRepo  BookingRepository
	dispatcher   Dispatcher
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, dispatcher Dispatcher, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		dispatcher:   dispatcher,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute принимает пакет заявок: валидирует, нормализует время к началу слота,
// проверяет конфликты против хранилища и внутри пакета, записывает принятые
// бронирования и запускает уведомления.
//
// Межпроцессных блокировок нет: от гонки с параллельными вызовами защищает
// уникальный индекс по appointment_time в БД, а нарушение уникальности при
// вставке переквалифицируется в обычный конфликт.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	batchID := uuid.New().String()

	if len(req.Items) == 0 {
		uc.logger.Warn("AdmitBookings[%s]: empty batch", batchID)
		return nil, ErrEmptyBatch
	}

	uc.logger.Info("AdmitBookings[%s]: processing %d request(s)", batchID, len(req.Items))

	now := uc.timeProvider.Now()

	// 1. Пер-заявочная валидация, независимая и без I/O
	validationErrors := make([]ItemError, 0)
	valid := make([]*validItem, 0, len(req.Items))

	for i, item := range req.Items {
		v, itemErr := validateItem(i, item, now)
		if itemErr != nil {
			validationErrors = append(validationErrors, *itemErr)
			continue
		}
		valid = append(valid, v)
	}

	uc.logger.Info("AdmitBookings[%s]: valid=%d, invalid=%d", batchID, len(valid), len(validationErrors))

	// Если все заявки невалидны - хранилище не трогаем
	if len(valid) == 0 {
		return &Response{
			BatchID:          batchID,
			ValidationErrors: validationErrors,
			Summary:          Summary{Total: len(req.Items), Failed: len(validationErrors)},
		}, ErrAllInvalid
	}

	// 2. Группировка по нормализованным моментам времени
	candidates := make([]time.Time, 0, len(valid))
	seen := make(map[int64]struct{}, len(valid))
	for _, v := range valid {
		key := v.normalized.Unix()
		if _, ok := seen[key]; !ok {
			seen[key] = struct{}{}
			candidates = append(candidates, v.normalized)
		}
	}

	// 3. Одна массовая проверка занятости по всему набору кандидатов
	occupiedInstants, err := uc.bookingRepo.FindOccupiedInstants(ctx, candidates)
	if err != nil {
		uc.logger.Error("AdmitBookings[%s]: failed to query occupied instants: %v", batchID, err)
		return nil, fmt.Errorf("%w: failed to query occupied instants: %v", ErrInternal, err)
	}

	occupied := make(map[int64]struct{}, len(occupiedInstants))
	for _, t := range occupiedInstants {
		occupied[t.Unix()] = struct{}{}
	}

	// 4. Решения о приеме в порядке следования заявок.
	// Принятая заявка помечает свой слот занятым до конца пакета,
	// так что две заявки одного пакета на один слот не пройдут обе.
	conflicts := make([]ItemError, 0)
	toCreate := make([]*domain.Booking, 0, len(valid))
	toCreateIndex := make([]int, 0, len(valid)) // позиция заявки во входном пакете

	for _, v := range valid {
		key := v.normalized.Unix()
		if _, taken := occupied[key]; taken {
			conflicts = append(conflicts, ItemError{
				Index:        v.index,
				CustomerName: v.item.CustomerName,
				Message:      MsgSlotBooked,
			})
			continue
		}

		paymentStatus := domain.PaymentUnpaid
		if v.item.PayNow {
			paymentStatus = domain.PaymentPaid
		}

		toCreate = append(toCreate, &domain.Booking{
			CustomerName:    v.item.CustomerName,
			PhoneNumber:     v.item.PhoneNumber,
			Email:           v.item.Email,
			AppointmentTime: v.normalized,
			Status:          domain.StatusPending,
			PaymentStatus:   paymentStatus,
		})
		toCreateIndex = append(toCreateIndex, v.index)
		occupied[key] = struct{}{}
	}

	uc.logger.Info("AdmitBookings[%s]: to create=%d, conflicts=%d", batchID, len(toCreate), len(conflicts))

	if len(toCreate) == 0 {
		return &Response{
			BatchID:          batchID,
			ValidationErrors: validationErrors,
			Conflicts:        conflicts,
			Summary: Summary{
				Total:  len(req.Items),
				Failed: len(validationErrors) + len(conflicts),
			},
		}, ErrAllConflicting
	}

	// 5. Пакетная вставка, не прерывающаяся на занятых слотах.
	// Поздняя гонка (параллельный вызов занял слот между шагами 3 и 5)
	// проявляется как пер-записная ошибка уникальности и становится конфликтом.
	created, failures, err := uc.bookingRepo.InsertBookings(ctx, toCreate)
	if err != nil {
		uc.logger.Error("AdmitBookings[%s]: failed to insert bookings: %v", batchID, err)
		return nil, fmt.Errorf("%w: failed to insert bookings: %v", ErrInternal, err)
	}

	for _, f := range failures {
		idx := toCreateIndex[f.Index]
		uc.logger.Warn("AdmitBookings[%s]: insert race on index=%d, reclassified as conflict", batchID, idx)
		conflicts = append(conflicts, ItemError{
			Index:        idx,
			CustomerName: toCreate[f.Index].CustomerName,
			Message:      MsgSlotBooked,
		})
	}

	if len(created) == 0 {
		return &Response{
			BatchID:          batchID,
			ValidationErrors: validationErrors,
			Conflicts:        conflicts,
			Summary: Summary{
				Total:  len(req.Items),
				Failed: len(validationErrors) + len(conflicts),
			},
		}, ErrAllConflicting
	}

	// 6. Уведомления - строго после записи в БД.
	// Исходы отправки попадают в ответ, но не меняют судьбу бронирований.
	emailResults := uc.dispatch(ctx, batchID, created)

	emailsSent := 0
	for _, r := range emailResults.CustomerEmails {
		if r.Sent {
			emailsSent++
		}
	}

	uc.logger.Info("AdmitBookings[%s]: created=%d, rejected=%d, emails_sent=%d",
		batchID, len(created), len(validationErrors)+len(conflicts), emailsSent)

	return &Response{
		BatchID:          batchID,
		Bookings:         created,
		ValidationErrors: validationErrors,
		Conflicts:        conflicts,
		EmailResults:     emailResults,
		Summary: Summary{
			Total:         len(req.Items),
			Successful:    len(created),
			Failed:        len(validationErrors) + len(conflicts),
			EmailsSent:    emailsSent,
			AdminNotified: emailResults.AdminEmail.Sent,
		},
	}, nil
}

// dispatch отправляет подтверждения клиентам и одну сводку администратору
func (uc *UseCase) dispatch(ctx context.Context, batchID string, created []*domain.Booking) EmailResults {
	results := EmailResults{
		CustomerEmails: make([]notifications.Result, 0, len(created)),
	}

	for _, b := range created {
		if !b.HasEmail() {
			continue
		}
		results.CustomerEmails = append(results.CustomerEmails, uc.dispatcher.Notify(ctx, b))
	}

	results.AdminEmail = uc.dispatcher.NotifyAdmin(ctx, created)

	uc.logger.Info("AdmitBookings[%s]: dispatched %d customer email(s), admin_notified=%v",
		batchID, len(results.CustomerEmails), results.AdminEmail.Sent)

	return results
}
