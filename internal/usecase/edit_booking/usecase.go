package edit_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rpires71/PK-BookingService/internal/domain"
	bookingRepo "github.com/rpires71/PK-BookingService/internal/infra/storage/booking"
	slotRepo "github.com/rpires71/PK-BookingService/internal/infra/storage/timeslot"
	"github.com/rpires71/PK-BookingService/pkg/txmanager"
)

// UseCase use case для изменения бронирования
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

// Execute выполняет use case изменения бронирования.
// Перепроверка вместимости целевого слота идёт в сериализуемой транзакции,
// при этом собственные гости брони из суммы исключаются.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("EditBooking: reference=%s", req.Reference)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("EditBooking: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	var (
		result *domain.Booking
		slot   *domain.TimeSlot
	)

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2. Получаем бронь с блокировкой строки
		booking, err := uc.bookingRepo.GetByReference(txCtx, req.Reference)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("EditBooking: booking %s not found", req.Reference)
				return ErrBookingNotFound
			}
			uc.logger.Error("EditBooking: failed to get booking %s: %v", req.Reference, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		// 3. Права доступа и состояние брони
		if !req.Requester.CanMutate(booking) {
			uc.logger.Warn("EditBooking: access denied to booking %s", req.Reference)
			return ErrAccessDenied
		}
		if booking.IsPast(now) {
			uc.logger.Warn("EditBooking: booking %s date has passed", req.Reference)
			return ErrPastBooking
		}
		if !booking.CanBeEdited() {
			uc.logger.Warn("EditBooking: booking %s in status %s is not editable", req.Reference, booking.Status)
			return ErrNotEditable
		}

		// 4. Применяем изменения
		if req.TimeSlotID != nil {
			booking.TimeSlotID = *req.TimeSlotID
		}
		if req.Date != nil {
			booking.BookingDate = *req.Date
		}
		if req.PartySize != nil {
			booking.PartySize = *req.PartySize
		}
		if req.SpecialRequests != nil {
			booking.SpecialRequests = req.SpecialRequests
		}

		if err := validateTargetDate(booking.BookingDate, now); err != nil {
			uc.logger.Warn("EditBooking: target date %s is in the past",
				booking.BookingDate.Format(domain.DateFormat))
			return err
		}

		// 5. Целевой слот должен существовать и быть активным
		s, err := uc.slotRepo.GetByID(txCtx, booking.TimeSlotID)
		if err != nil {
			if errors.Is(err, slotRepo.ErrSlotNotFound) {
				uc.logger.Warn("EditBooking: time slot id=%d not found", booking.TimeSlotID)
				return ErrSlotNotFound
			}
			uc.logger.Error("EditBooking: failed to get time slot id=%d: %v", booking.TimeSlotID, err)
			return fmt.Errorf("%w: failed to get time slot: %v", ErrInternal, err)
		}
		if !s.IsActive {
			uc.logger.Warn("EditBooking: time slot id=%d is not active", booking.TimeSlotID)
			return ErrSlotInactive
		}
		slot = s

		// 6. Вместимость целевого слота без учёта самой брони
		taken, err := uc.bookingRepo.SumActivePartySize(txCtx, booking.TimeSlotID, booking.BookingDate, &booking.ID)
		if err != nil {
			uc.logger.Error("EditBooking: failed to sum party sizes: %v", err)
			return fmt.Errorf("%w: failed to sum party sizes: %v", ErrInternal, err)
		}

		remaining := slot.EffectiveCapacity() - taken
		if booking.PartySize > remaining {
			uc.logger.Warn("EditBooking: insufficient capacity for slot=%d on %s: requested=%d, remaining=%d",
				booking.TimeSlotID, booking.BookingDate.Format(domain.DateFormat), booking.PartySize, remaining)
			return domain.NewCapacityError(remaining)
		}

		// 7. Сохраняем
		if err := uc.bookingRepo.Update(txCtx, booking); err != nil {
			if errors.Is(err, bookingRepo.ErrDuplicateUserBooking) {
				uc.logger.Warn("EditBooking: duplicate booking for slot=%d on %s",
					booking.TimeSlotID, booking.BookingDate.Format(domain.DateFormat))
				return ErrDuplicateBooking
			}
			uc.logger.Error("EditBooking: failed to update booking %s: %v", req.Reference, err)
			return fmt.Errorf("%w: failed to update booking: %v", ErrInternal, err)
		}

		result = booking
		return nil
	})

	if err != nil {
		if errors.Is(err, txmanager.ErrSerializationFailure) {
			uc.logger.Warn("EditBooking: serialization conflict: %v", err)
			return nil, ErrTransient
		}
		return nil, err
	}

	uc.logger.Info("EditBooking: successfully updated booking %s", req.Reference)

	// 8. Уведомление после коммита
	uc.notifier.BookingUpdated(result, slot)

	return &Response{
		ID:              result.ID,
		Reference:       result.Reference,
		TimeSlotID:      result.TimeSlotID,
		SlotTime:        slot.Time.String(),
		BookingDate:     result.BookingDate,
		PartySize:       result.PartySize,
		Status:          string(result.Status),
		SpecialRequests: result.SpecialRequests,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.Reference) == "" {
		return fmt.Errorf("%w: reference is required", ErrInvalidInput)
	}

	if req.TimeSlotID == nil && req.Date == nil && req.PartySize == nil && req.SpecialRequests == nil {
		return fmt.Errorf("%w: at least one field must be provided", ErrInvalidInput)
	}

	if req.TimeSlotID != nil && *req.TimeSlotID <= 0 {
		return fmt.Errorf("%w: timeSlotID must be positive", ErrInvalidInput)
	}

	if req.PartySize != nil && (*req.PartySize < domain.MinPartySize || *req.PartySize > domain.MaxPartySize) {
		return fmt.Errorf("%w: party size must be between %d and %d",
			ErrInvalidInput, domain.MinPartySize, domain.MaxPartySize)
	}

	if req.SpecialRequests != nil && len(*req.SpecialRequests) > domain.MaxSpecialRequestsLength {
		return fmt.Errorf("%w: special requests must not exceed %d characters",
			ErrInvalidInput, domain.MaxSpecialRequestsLength)
	}

	return nil
}

// validateTargetDate проверяет, что целевая дата не в прошлом
func validateTargetDate(date, now time.Time) error {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if dateOnly.Before(nowOnly) {
		return ErrInvalidDate
	}
	return nil
}
