package timeslots

import (
	"context"
	"errors"
	"fmt"

	"github.com/rpires71/PK-BookingService/internal/domain"
	slotRepo "github.com/rpires71/PK-BookingService/internal/infra/storage/timeslot"
	"github.com/rpires71/PK-BookingService/internal/service/timeslots/models"
	"github.com/rpires71/PK-BookingService/pkg/types"
)

// Service сервис для управления слотами времени (только персонал)
type Service struct {
	slotRepo TimeSlotRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса слотов
func NewService(slotRepo TimeSlotRepository, logger Logger) *Service {
	return &Service{
		slotRepo: slotRepo,
		logger:   logger,
	}
}

// Create создает новый слот времени
func (s *Service) Create(ctx context.Context, req *models.CreateTimeSlotRequest) (*models.TimeSlotResponse, error) {
	s.logger.Info("Create: creating time slot time=%s", req.Time)

	if !req.Requester.IsStaff {
		s.logger.Warn("Create: non-staff requester for time slot time=%s", req.Time)
		return nil, ErrAccessDenied
	}

	slotTime, err := types.NewTimeStringFromString(req.Time)
	if err != nil {
		s.logger.Warn("Create: invalid time=%s: %v", req.Time, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := validateCapacity(req.MaxCapacity); err != nil {
		s.logger.Warn("Create: validation failed for time slot time=%s: %v", req.Time, err)
		return nil, err
	}

	slot := &domain.TimeSlot{
		Time:        slotTime,
		MaxCapacity: req.MaxCapacity,
		IsActive:    true,
	}
	if req.IsActive != nil {
		slot.IsActive = *req.IsActive
	}

	created, err := s.slotRepo.Create(ctx, slot)
	if err != nil {
		if errors.Is(err, slotRepo.ErrDuplicateTime) {
			s.logger.Warn("Create: time slot time=%s already exists", req.Time)
			return nil, ErrDuplicateTime
		}
		s.logger.Error("Create: repository error for time slot time=%s: %v", req.Time, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created time slot id=%d time=%s", created.ID, created.Time)
	return models.FromDomainTimeSlot(created), nil
}

// GetByID получает слот по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.TimeSlotResponse, error) {
	slot, err := s.slotRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			s.logger.Warn("GetByID: time slot id=%d not found", id)
			return nil, ErrSlotNotFound
		}
		s.logger.Error("GetByID: repository error for time slot id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainTimeSlot(slot), nil
}

// List получает список слотов, отсортированный по времени.
// onlyActive=true скрывает отключённые слоты.
func (s *Service) List(ctx context.Context, onlyActive bool) (*models.TimeSlotListResponse, error) {
	slots, err := s.slotRepo.GetAll(ctx, onlyActive)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainTimeSlotList(slots), nil
}

// Update обновляет слот. Обновляются только переданные поля.
// Смена MaxCapacity не трогает существующие брони, даже если сумма гостей
// уже превышает новый лимит - лимит проверяется только на новых бронях.
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateTimeSlotRequest) (*models.TimeSlotResponse, error) {
	s.logger.Info("Update: updating time slot id=%d", id)

	if !req.Requester.IsStaff {
		s.logger.Warn("Update: non-staff requester for time slot id=%d", id)
		return nil, ErrAccessDenied
	}

	slot, err := s.slotRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			s.logger.Warn("Update: time slot id=%d not found", id)
			return nil, ErrSlotNotFound
		}
		s.logger.Error("Update: repository error for time slot id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	if req.Time != nil {
		slotTime, err := types.NewTimeStringFromString(*req.Time)
		if err != nil {
			s.logger.Warn("Update: invalid time=%s for time slot id=%d: %v", *req.Time, id, err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		slot.Time = slotTime
	}
	if req.MaxCapacity != nil {
		if err := validateCapacity(req.MaxCapacity); err != nil {
			s.logger.Warn("Update: validation failed for time slot id=%d: %v", id, err)
			return nil, err
		}
		slot.MaxCapacity = req.MaxCapacity
	}
	if req.IsActive != nil {
		slot.IsActive = *req.IsActive
	}

	if err := s.slotRepo.Update(ctx, slot); err != nil {
		if errors.Is(err, slotRepo.ErrDuplicateTime) {
			s.logger.Warn("Update: time slot time=%s already exists", slot.Time)
			return nil, ErrDuplicateTime
		}
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			return nil, ErrSlotNotFound
		}
		s.logger.Error("Update: repository error for time slot id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated time slot id=%d", id)
	return models.FromDomainTimeSlot(slot), nil
}

// Delete удаляет слот. Слот с бронями удалить нельзя - вместо этого
// его следует деактивировать через Update.
func (s *Service) Delete(ctx context.Context, requester domain.Requester, id int64) error {
	s.logger.Info("Delete: deleting time slot id=%d", id)

	if !requester.IsStaff {
		s.logger.Warn("Delete: non-staff requester for time slot id=%d", id)
		return ErrAccessDenied
	}

	if err := s.slotRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			s.logger.Warn("Delete: time slot id=%d not found", id)
			return ErrSlotNotFound
		}
		if errors.Is(err, slotRepo.ErrSlotInUse) {
			s.logger.Warn("Delete: time slot id=%d has bookings", id)
			return ErrSlotInUse
		}
		s.logger.Error("Delete: repository error for time slot id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted time slot id=%d", id)
	return nil
}

func validateCapacity(capacity *int) error {
	if capacity != nil && *capacity < 1 {
		return fmt.Errorf("%w: max capacity must be at least 1", ErrInvalidInput)
	}
	return nil
}
