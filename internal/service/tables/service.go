package tables

import (
	"context"
	"errors"
	"fmt"

	"github.com/rpires71/PK-BookingService/internal/domain"
	tableRepo "github.com/rpires71/PK-BookingService/internal/infra/storage/table"
	"github.com/rpires71/PK-BookingService/internal/service/tables/models"
)

// Service сервис для управления столиками ресторана (только персонал)
type Service struct {
	tableRepo TableRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса столиков
func NewService(tableRepo TableRepository, logger Logger) *Service {
	return &Service{
		tableRepo: tableRepo,
		logger:    logger,
	}
}

// Create создает новый столик
func (s *Service) Create(ctx context.Context, req *models.CreateTableRequest) (*models.TableResponse, error) {
	s.logger.Info("Create: creating table number=%d", req.TableNumber)

	if !req.Requester.IsStaff {
		s.logger.Warn("Create: non-staff requester for table number=%d", req.TableNumber)
		return nil, ErrAccessDenied
	}
	if err := validateTableFields(req.TableNumber, req.Capacity, domain.TableLocation(req.Location)); err != nil {
		s.logger.Warn("Create: validation failed for table number=%d: %v", req.TableNumber, err)
		return nil, err
	}

	table := &domain.Table{
		TableNumber: req.TableNumber,
		Capacity:    req.Capacity,
		Location:    domain.TableLocation(req.Location),
		IsAvailable: true,
		Description: req.Description,
	}
	if req.IsAvailable != nil {
		table.IsAvailable = *req.IsAvailable
	}

	created, err := s.tableRepo.Create(ctx, table)
	if err != nil {
		if errors.Is(err, tableRepo.ErrDuplicateNumber) {
			s.logger.Warn("Create: table number=%d already exists", req.TableNumber)
			return nil, ErrDuplicateNumber
		}
		s.logger.Error("Create: repository error for table number=%d: %v", req.TableNumber, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created table id=%d number=%d", created.ID, created.TableNumber)
	return models.FromDomainTable(created), nil
}

// GetByID получает столик по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.TableResponse, error) {
	table, err := s.tableRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, tableRepo.ErrTableNotFound) {
			s.logger.Warn("GetByID: table id=%d not found", id)
			return nil, ErrTableNotFound
		}
		s.logger.Error("GetByID: repository error for table id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainTable(table), nil
}

// List получает список столиков.
// onlyAvailable=true скрывает выведенные из оборота столики.
func (s *Service) List(ctx context.Context, onlyAvailable bool) (*models.TableListResponse, error) {
	tables, err := s.tableRepo.GetAll(ctx, onlyAvailable)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainTableList(tables), nil
}

// Update обновляет столик. Обновляются только переданные поля.
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateTableRequest) (*models.TableResponse, error) {
	s.logger.Info("Update: updating table id=%d", id)

	if !req.Requester.IsStaff {
		s.logger.Warn("Update: non-staff requester for table id=%d", id)
		return nil, ErrAccessDenied
	}

	table, err := s.tableRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, tableRepo.ErrTableNotFound) {
			s.logger.Warn("Update: table id=%d not found", id)
			return nil, ErrTableNotFound
		}
		s.logger.Error("Update: repository error for table id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	if req.TableNumber != nil {
		table.TableNumber = *req.TableNumber
	}
	if req.Capacity != nil {
		table.Capacity = *req.Capacity
	}
	if req.Location != nil {
		table.Location = domain.TableLocation(*req.Location)
	}
	if req.IsAvailable != nil {
		table.IsAvailable = *req.IsAvailable
	}
	if req.Description != nil {
		table.Description = req.Description
	}

	if err := validateTableFields(table.TableNumber, table.Capacity, table.Location); err != nil {
		s.logger.Warn("Update: validation failed for table id=%d: %v", id, err)
		return nil, err
	}

	if err := s.tableRepo.Update(ctx, table); err != nil {
		if errors.Is(err, tableRepo.ErrDuplicateNumber) {
			s.logger.Warn("Update: table number=%d already exists", table.TableNumber)
			return nil, ErrDuplicateNumber
		}
		if errors.Is(err, tableRepo.ErrTableNotFound) {
			return nil, ErrTableNotFound
		}
		s.logger.Error("Update: repository error for table id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated table id=%d", id)
	return models.FromDomainTable(table), nil
}

// Delete удаляет столик. Брони, ссылавшиеся на него, сохраняются
// (внешний ключ обнуляется на стороне БД).
func (s *Service) Delete(ctx context.Context, requester domain.Requester, id int64) error {
	s.logger.Info("Delete: deleting table id=%d", id)

	if !requester.IsStaff {
		s.logger.Warn("Delete: non-staff requester for table id=%d", id)
		return ErrAccessDenied
	}

	if err := s.tableRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, tableRepo.ErrTableNotFound) {
			s.logger.Warn("Delete: table id=%d not found", id)
			return ErrTableNotFound
		}
		s.logger.Error("Delete: repository error for table id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted table id=%d", id)
	return nil
}

func validateTableFields(number, capacity int, location domain.TableLocation) error {
	if number < 1 {
		return fmt.Errorf("%w: table number must be positive", ErrInvalidInput)
	}
	if capacity < 1 {
		return fmt.Errorf("%w: capacity must be at least 1", ErrInvalidInput)
	}
	if !location.IsValid() {
		return fmt.Errorf("%w: unknown location %q", ErrInvalidInput, location)
	}
	return nil
}
