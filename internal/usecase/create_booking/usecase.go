package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/rpires71/PK-BookingService/internal/domain"
	bookingRepo "github.com/rpires71/PK-BookingService/internal/infra/storage/booking"
	slotRepo "github.com/rpires71/PK-BookingService/internal/infra/storage/timeslot"
	"github.com/rpires71/PK-BookingService/pkg/refgen"
	"github.com/rpires71/PK-BookingService/pkg/txmanager"
)

// maxReferenceAttempts ограничивает число попыток при коллизии номера брони.
// При 36^8 комбинаций повторная коллизия на второй попытке уже аномалия.
const maxReferenceAttempts = 5

// UseCase use case для создания бронирования
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

// Execute выполняет use case создания бронирования.
// Проверка вместимости и вставка идут в одной сериализуемой транзакции,
// чтобы два конкурентных запроса не заняли последние места дважды.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: slot=%d, date=%s, party=%d",
		req.TimeSlotID, req.Date.Format(domain.DateFormat), req.PartySize)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Дата не в прошлом
	now := uc.timeProvider.Now()
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("CreateBooking: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, err
	}

	var (
		result *domain.Booking
		slot   *domain.TimeSlot
	)

	// 3. Проверка вместимости и вставка в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Получаем слот
		s, err := uc.slotRepo.GetByID(txCtx, req.TimeSlotID)
		if err != nil {
			if errors.Is(err, slotRepo.ErrSlotNotFound) {
				uc.logger.Warn("CreateBooking: time slot id=%d not found", req.TimeSlotID)
				return ErrSlotNotFound
			}
			uc.logger.Error("CreateBooking: failed to get time slot id=%d: %v", req.TimeSlotID, err)
			return fmt.Errorf("%w: failed to get time slot: %v", ErrInternal, err)
		}
		if !s.IsActive {
			uc.logger.Warn("CreateBooking: time slot id=%d is not active", req.TimeSlotID)
			return ErrSlotInactive
		}
		slot = s

		// 3.2. Считаем занятые места в слоте на эту дату (с блокировкой строк)
		taken, err := uc.bookingRepo.SumActivePartySize(txCtx, req.TimeSlotID, req.Date, nil)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to sum party sizes: %v", err)
			return fmt.Errorf("%w: failed to sum party sizes: %v", ErrInternal, err)
		}

		remaining := slot.EffectiveCapacity() - taken
		if req.PartySize > remaining {
			uc.logger.Warn("CreateBooking: insufficient capacity for slot=%d on %s: requested=%d, remaining=%d",
				req.TimeSlotID, req.Date.Format(domain.DateFormat), req.PartySize, remaining)
			return domain.NewCapacityError(remaining)
		}

		uc.logger.Info("CreateBooking: slot=%d has %d of %d seats taken",
			req.TimeSlotID, taken, slot.EffectiveCapacity())

		// 3.3. Вставляем бронь, перегенерируя номер при коллизии
		booking := &domain.Booking{
			UserID:          req.UserID,
			GuestName:       req.GuestName,
			GuestEmail:      req.GuestEmail,
			GuestPhone:      req.GuestPhone,
			TimeSlotID:      req.TimeSlotID,
			BookingDate:     req.Date,
			PartySize:       req.PartySize,
			Status:          domain.StatusPending,
			SpecialRequests: req.SpecialRequests,
		}

		for attempt := 1; attempt <= maxReferenceAttempts; attempt++ {
			reference, err := refgen.Generate()
			if err != nil {
				uc.logger.Error("CreateBooking: failed to generate reference: %v", err)
				return fmt.Errorf("%w: failed to generate reference: %v", ErrInternal, err)
			}
			booking.Reference = reference

			created, err := uc.bookingRepo.Create(txCtx, booking)
			if err == nil {
				result = created
				return nil
			}
			if errors.Is(err, bookingRepo.ErrDuplicateUserBooking) {
				uc.logger.Warn("CreateBooking: user=%d already booked slot=%d on %s",
					*req.UserID, req.TimeSlotID, req.Date.Format(domain.DateFormat))
				return ErrDuplicateBooking
			}
			if errors.Is(err, bookingRepo.ErrDuplicateReference) {
				uc.logger.Warn("CreateBooking: reference collision on attempt %d", attempt)
				continue
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		return fmt.Errorf("%w: reference collision persisted after %d attempts", ErrInternal, maxReferenceAttempts)
	})

	if err != nil {
		if errors.Is(err, txmanager.ErrSerializationFailure) {
			uc.logger.Warn("CreateBooking: serialization conflict: %v", err)
			return nil, ErrTransient
		}
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d reference=%s", result.ID, result.Reference)

	// 4. Уведомление после коммита: сбой почты не откатывает бронь
	uc.notifier.BookingCreated(result, slot)

	return toResponse(result, slot), nil
}

func toResponse(b *domain.Booking, slot *domain.TimeSlot) *Response {
	return &Response{
		ID:              b.ID,
		Reference:       b.Reference,
		UserID:          b.UserID,
		GuestName:       b.GuestName,
		TimeSlotID:      b.TimeSlotID,
		SlotTime:        slot.Time.String(),
		BookingDate:     b.BookingDate,
		PartySize:       b.PartySize,
		Status:          string(b.Status),
		SpecialRequests: b.SpecialRequests,
		CreatedAt:       b.CreatedAt,
	}
}
