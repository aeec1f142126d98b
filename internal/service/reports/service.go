package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/rpires71/PK-BookingService/internal/domain"
	bookingmodels "github.com/rpires71/PK-BookingService/internal/service/bookings/models"
	"github.com/rpires71/PK-BookingService/internal/service/reports/models"
)

// Service сервис отчётов для персонала ресторана
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса отчётов
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetBookings получает список бронирований ресторана по фильтру.
// Пустой результат - это нормальный ответ, а не ошибка.
func (s *Service) GetBookings(ctx context.Context, req *models.BookingsReportRequest) (*models.BookingsReportResponse, error) {
	s.logger.Info("GetBookings: fetching restaurant bookings")

	if !req.Requester.IsStaff {
		s.logger.Warn("GetBookings: non-staff requester")
		return nil, ErrAccessDenied
	}
	if err := validateDateRange(req.StartDate, req.EndDate); err != nil {
		s.logger.Warn("GetBookings: %v", err)
		return nil, err
	}

	filter := domain.BookingsFilter{
		TimeSlotID:      req.TimeSlotID,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		Search:          req.Search,
		IncludeInactive: req.IncludeInactive,
	}
	if req.Status != nil {
		status, ok := domain.ParseBookingStatus(*req.Status)
		if !ok {
			s.logger.Warn("GetBookings: invalid status=%s", *req.Status)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		filter.Status = &status
		// Явный фильтр по статусу имеет приоритет над скрытием неактивных
		filter.IncludeInactive = true
	}

	bookings, err := s.bookingRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetBookings: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetBookings - repository error: %v", ErrInternal, err)
	}

	list := bookingmodels.FromDomainBookingList(bookings)

	s.logger.Info("GetBookings: found %d bookings", len(list.Bookings))
	return &models.BookingsReportResponse{
		Bookings: list.Bookings,
		Total:    len(list.Bookings),
	}, nil
}

// GetStats получает сводную статистику бронирований за период:
// разбивку по статусам, нагрузку на слоты и счётчики по дням.
func (s *Service) GetStats(ctx context.Context, req *models.StatsRequest) (*models.StatsResponse, error) {
	s.logger.Info("GetStats: building booking stats")

	if !req.Requester.IsStaff {
		s.logger.Warn("GetStats: non-staff requester")
		return nil, ErrAccessDenied
	}
	if err := validateDateRange(req.StartDate, req.EndDate); err != nil {
		s.logger.Warn("GetStats: %v", err)
		return nil, err
	}

	byStatus, err := s.bookingRepo.CountByStatus(ctx, req.StartDate, req.EndDate)
	if err != nil {
		s.logger.Error("GetStats: repository error counting by status: %v", err)
		return nil, fmt.Errorf("%w: GetStats - repository error: %v", ErrInternal, err)
	}

	bySlot, err := s.bookingRepo.CountBySlot(ctx, req.StartDate, req.EndDate)
	if err != nil {
		s.logger.Error("GetStats: repository error counting by slot: %v", err)
		return nil, fmt.Errorf("%w: GetStats - repository error: %v", ErrInternal, err)
	}

	perDay, err := s.bookingRepo.CountPerDay(ctx, req.StartDate, req.EndDate)
	if err != nil {
		s.logger.Error("GetStats: repository error counting per day: %v", err)
		return nil, fmt.Errorf("%w: GetStats - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetStats: collected stats for %d statuses, %d slots, %d days",
		len(byStatus), len(bySlot), len(perDay))
	return &models.StatsResponse{
		ByStatus: models.FromDomainStatusCounts(byStatus),
		BySlot:   models.FromDomainSlotPopularity(bySlot),
		PerDay:   models.FromDomainDayCounts(perDay),
	}, nil
}

func validateDateRange(start, end *time.Time) error {
	if start != nil && end != nil && end.Before(*start) {
		return fmt.Errorf("%w: end date before start date", ErrInvalidInput)
	}
	return nil
}
