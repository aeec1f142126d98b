package tables

import (
	"context"

	"github.com/rpires71/PK-BookingService/internal/domain"
)

// TableRepository интерфейс репозитория столиков
type TableRepository interface {
	Create(ctx context.Context, table *domain.Table) (*domain.Table, error)
	GetByID(ctx context.Context, id int64) (*domain.Table, error)
	GetAll(ctx context.Context, onlyAvailable bool) ([]*domain.Table, error)
	Update(ctx context.Context, table *domain.Table) error
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}
