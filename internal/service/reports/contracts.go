package reports

import (
	"context"
	"time"

	"github.com/rpires71/PK-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований для отчётов
type BookingRepository interface {
	GetWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	CountByStatus(ctx context.Context, startDate, endDate *time.Time) ([]domain.StatusCount, error)
	CountBySlot(ctx context.Context, startDate, endDate *time.Time) ([]domain.SlotPopularity, error)
	CountPerDay(ctx context.Context, startDate, endDate *time.Time) ([]domain.DayCount, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}
