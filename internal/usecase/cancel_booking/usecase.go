package cancel_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rpires71/PK-BookingService/internal/domain"
	bookingRepo "github.com/rpires71/PK-BookingService/internal/infra/storage/booking"
)

// UseCase use case для отмены бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	slotRepo     TimeSlotRepository
	notifier     Notifier
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	slotRepo TimeSlotRepository,
	notifier Notifier,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		slotRepo:     slotRepo,
		notifier:     notifier,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case отмены бронирования.
// Отмена освобождает места в слоте; повторная отмена - не ошибка (ErrAlreadyCancelled).
// Обычной транзакции с блокировкой строки достаточно: конкурирующие создания
// от отмены только выигрывают.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CancelBooking: reference=%s", req.Reference)

	if strings.TrimSpace(req.Reference) == "" {
		return nil, fmt.Errorf("%w: reference is required", ErrInvalidInput)
	}

	now := uc.timeProvider.Now()

	var (
		result *domain.Booking
		slot   *domain.TimeSlot
	)

	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 1. Получаем бронь с блокировкой строки
		booking, err := uc.bookingRepo.GetByReference(txCtx, req.Reference)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("CancelBooking: booking %s not found", req.Reference)
				return ErrBookingNotFound
			}
			uc.logger.Error("CancelBooking: failed to get booking %s: %v", req.Reference, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		// 2. Права доступа
		if !req.Requester.CanMutate(booking) {
			uc.logger.Warn("CancelBooking: access denied to booking %s", req.Reference)
			return ErrAccessDenied
		}

		// 3. Состояние брони
		if booking.IsCancelled() {
			uc.logger.Info("CancelBooking: booking %s is already cancelled", req.Reference)
			result = booking
			return ErrAlreadyCancelled
		}
		if booking.IsPast(now) {
			uc.logger.Warn("CancelBooking: booking %s date has passed", req.Reference)
			return ErrPastBooking
		}
		if !booking.CanBeCancelled() {
			uc.logger.Warn("CancelBooking: booking %s in status %s cannot be cancelled",
				req.Reference, booking.Status)
			return ErrNotCancellable
		}

		// 4. Отменяем
		if err := uc.bookingRepo.Cancel(txCtx, booking.ID); err != nil {
			uc.logger.Error("CancelBooking: failed to cancel booking %s: %v", req.Reference, err)
			return fmt.Errorf("%w: failed to cancel booking: %v", ErrInternal, err)
		}

		booking.Status = domain.StatusCancelled
		cancelledAt := now
		booking.CancelledAt = &cancelledAt
		result = booking

		// Слот нужен только для письма; его отсутствие отмену не ломает
		if s, err := uc.slotRepo.GetByID(txCtx, booking.TimeSlotID); err == nil {
			slot = s
		} else {
			uc.logger.Warn("CancelBooking: failed to get time slot id=%d for notification: %v",
				booking.TimeSlotID, err)
		}

		return nil
	})

	if err != nil {
		if errors.Is(err, ErrAlreadyCancelled) && result != nil {
			return toResponse(result), ErrAlreadyCancelled
		}
		return nil, err
	}

	uc.logger.Info("CancelBooking: successfully cancelled booking %s", req.Reference)

	// 5. Уведомление после коммита
	uc.notifier.BookingCancelled(result, slot)

	return toResponse(result), nil
}

func toResponse(b *domain.Booking) *Response {
	resp := &Response{
		ID:        b.ID,
		Reference: b.Reference,
		Status:    string(b.Status),
	}
	if b.CancelledAt != nil {
		resp.CancelledAt = *b.CancelledAt
	}
	return resp
}
