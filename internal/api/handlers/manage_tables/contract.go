package manage_tables

import (
	"context"

	"github.com/rpires71/PK-BookingService/internal/domain"
	"github.com/rpires71/PK-BookingService/internal/service/tables/models"
)

type TableService interface {
	Create(ctx context.Context, req *models.CreateTableRequest) (*models.TableResponse, error)
	GetByID(ctx context.Context, id int64) (*models.TableResponse, error)
	List(ctx context.Context, onlyAvailable bool) (*models.TableListResponse, error)
	Update(ctx context.Context, id int64, req *models.UpdateTableRequest) (*models.TableResponse, error)
	Delete(ctx context.Context, requester domain.Requester, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
