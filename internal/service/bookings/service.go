package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rpires71/PK-BookingService/internal/domain"
	bookingRepo "github.com/rpires71/PK-BookingService/internal/infra/storage/booking"
	"github.com/rpires71/PK-BookingService/internal/service/bookings/models"
)

// staffTransitions статусы, которые персонал выставляет напрямую.
// Отмена идёт отдельным флоу (cancel usecase), чтобы гарантировать cancelled_at.
var staffTransitions = map[domain.BookingStatus]bool{
	domain.StatusConfirmed: true,
	domain.StatusSeated:    true,
	domain.StatusCompleted: true,
	domain.StatusNoShow:    true,
}

// Service сервис для чтения бронирований и staff-переходов статусов
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetByReference получает бронирование по клиентскому номеру.
// Номер брони — публичный идентификатор подтверждения, дополнительных
// проверок доступа здесь нет.
func (s *Service) GetByReference(ctx context.Context, reference string) (*models.BookingResponse, error) {
	booking, err := s.bookingRepo.GetByReference(ctx, reference)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByReference: booking %s not found", reference)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByReference: repository error for booking %s: %v", reference, err)
		return nil, fmt.Errorf("%w: GetByReference - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// GetUserBookings получает историю бронирований пользователя,
// разделённую на предстоящие и прошедшие. Предстоящие не включают отменённые
// и отсортированы от ближайшей даты, прошедшие — от недавней.
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.UserBookingsResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%d", req.UserID)

	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, ok := domain.ParseBookingStatus(*req.Status)
		if !ok {
			s.logger.Warn("GetUserBookings: invalid status=%s for user=%d", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	all, err := s.bookingRepo.GetByUserID(ctx, req.UserID, domainStatus)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	resp := &models.UserBookingsResponse{
		Upcoming: make([]models.BookingResponse, 0),
		Past:     make([]models.BookingResponse, 0),
	}

	now := time.Now()
	for _, booking := range all {
		dto := models.FromDomainBooking(booking)
		if booking.IsPast(now) {
			resp.Past = append(resp.Past, *dto)
			continue
		}
		if !booking.IsCancelled() {
			resp.Upcoming = append(resp.Upcoming, *dto)
		}
	}

	// GetByUserID отдаёт новые даты первыми; предстоящие показываем от ближайшей
	for i, j := 0, len(resp.Upcoming)-1; i < j; i, j = i+1, j-1 {
		resp.Upcoming[i], resp.Upcoming[j] = resp.Upcoming[j], resp.Upcoming[i]
	}

	s.logger.Info("GetUserBookings: user=%d has %d upcoming and %d past bookings",
		req.UserID, len(resp.Upcoming), len(resp.Past))
	return resp, nil
}

// UpdateStatus переводит бронирование в новый статус.
// Доступно только персоналу; проверка владельца не выполняется, но переход
// обязан быть допустимым по state machine (CanTransitionTo).
func (s *Service) UpdateStatus(ctx context.Context, reference string, req *models.UpdateStatusRequest) (*models.BookingResponse, error) {
	s.logger.Info("UpdateStatus: booking %s to status=%s", reference, req.Status)

	if !req.Requester.IsStaff {
		s.logger.Warn("UpdateStatus: non-staff requester for booking %s", reference)
		return nil, ErrAccessDenied
	}

	newStatus, ok := domain.ParseBookingStatus(req.Status)
	if !ok || !staffTransitions[newStatus] {
		s.logger.Warn("UpdateStatus: invalid target status=%s for booking %s", req.Status, reference)
		return nil, ErrInvalidStatus
	}

	booking, err := s.bookingRepo.GetByReference(ctx, reference)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking %s not found", reference)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking %s: %v", reference, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	if !booking.CanTransitionTo(newStatus) {
		s.logger.Warn("UpdateStatus: illegal transition %s -> %s for booking %s",
			booking.Status, newStatus, reference)
		return nil, fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, booking.Status, newStatus)
	}

	if err := s.bookingRepo.UpdateStatus(ctx, booking.ID, newStatus); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking %s: %v", reference, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	booking.Status = newStatus

	s.logger.Info("UpdateStatus: booking %s moved to status=%s", reference, newStatus)
	return models.FromDomainBooking(booking), nil
}
