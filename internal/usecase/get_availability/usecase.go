package get_availability

import (
	"context"
	"fmt"
	"time"

	"github.com/rpires71/PK-BookingService/internal/domain"
)

// UseCase use case для получения доступности слотов на дату
type UseCase struct {
	bookingRepo  BookingRepository
	slotRepo     TimeSlotRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	slotRepo TimeSlotRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		slotRepo:     slotRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения доступности.
// Чтение без транзакции: ответ - моментальный снимок, финальную проверку
// вместимости делает создание брони.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: date=%s", req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Активные слоты, отсортированные по времени
	slots, err := uc.slotRepo.GetAll(ctx, true)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get time slots: %v", err)
		return nil, fmt.Errorf("%w: failed to get time slots: %v", ErrInternal, err)
	}

	// 3. Все активные брони на эту дату одним запросом
	filter := domain.BookingsFilter{
		StartDate:       &req.Date,
		EndDate:         &req.Date,
		IncludeInactive: false,
	}
	bookings, err := uc.bookingRepo.GetWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 4. Суммируем гостей по слотам
	bookedBySlot := make(map[int64]int, len(slots))
	for _, b := range bookings {
		if b.IsActive() {
			bookedBySlot[b.TimeSlotID] += b.PartySize
		}
	}

	// 5. Собираем ответ
	resp := &Response{
		Date:  req.Date,
		Slots: make([]Slot, 0, len(slots)),
	}
	for _, s := range slots {
		if req.TimeSlotID != nil && s.ID != *req.TimeSlotID {
			continue
		}
		capacity := s.EffectiveCapacity()
		booked := bookedBySlot[s.ID]
		// Remaining не обрезается снизу: отрицательное значение показывает
		// персоналу перебронированный слот после снижения лимита
		remaining := capacity - booked

		available := remaining > 0
		if req.PartySize != nil {
			available = remaining >= *req.PartySize
		}

		resp.Slots = append(resp.Slots, Slot{
			TimeSlotID: s.ID,
			Time:       s.Time.String(),
			Capacity:   capacity,
			Booked:     booked,
			Remaining:  remaining,
			Available:  available,
		})
	}

	uc.logger.Info("GetAvailability: %d slots for %s", len(resp.Slots), req.Date.Format(domain.DateFormat))
	return resp, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request, now time.Time) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	dateOnly := time.Date(req.Date.Year(), req.Date.Month(), req.Date.Day(), 0, 0, 0, 0, req.Date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if dateOnly.Before(nowOnly) {
		return ErrInvalidDate
	}

	if req.TimeSlotID != nil && *req.TimeSlotID <= 0 {
		return fmt.Errorf("%w: timeSlotID must be positive", ErrInvalidInput)
	}

	if req.PartySize != nil && (*req.PartySize < domain.MinPartySize || *req.PartySize > domain.MaxPartySize) {
		return fmt.Errorf("%w: party size must be between %d and %d",
			ErrInvalidInput, domain.MinPartySize, domain.MaxPartySize)
	}

	return nil
}
