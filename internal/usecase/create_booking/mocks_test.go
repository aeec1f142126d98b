package create_booking

import (
	"context"
	"time"

	"github.com/rpires71/PK-BookingService/internal/domain"
)

type fakeBookingRepo struct {
	CreateFunc             func(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	SumActivePartySizeFunc func(ctx context.Context, timeSlotID int64, date time.Time, excludeBookingID *int64) (int, error)
}

func (f *fakeBookingRepo) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	return f.CreateFunc(ctx, booking)
}

func (f *fakeBookingRepo) SumActivePartySize(ctx context.Context, timeSlotID int64, date time.Time, excludeBookingID *int64) (int, error) {
	return f.SumActivePartySizeFunc(ctx, timeSlotID, date, excludeBookingID)
}

type fakeSlotRepo struct {
	GetByIDFunc func(ctx context.Context, id int64) (*domain.TimeSlot, error)
}

func (f *fakeSlotRepo) GetByID(ctx context.Context, id int64) (*domain.TimeSlot, error) {
	return f.GetByIDFunc(ctx, id)
}

type fakeNotifier struct {
	created []*domain.Booking
}

func (f *fakeNotifier) BookingCreated(booking *domain.Booking, slot *domain.TimeSlot) {
	f.created = append(f.created, booking)
}

// fakeTxManager вызывает fn напрямую, без транзакции.
// Если err задан, возвращает его вместо выполнения fn.
type fakeTxManager struct {
	err error
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	if f.err != nil {
		return f.err
	}
	return fn(ctx)
}

type fixedTimeProvider struct {
	now time.Time
}

func (f *fixedTimeProvider) Now() time.Time {
	return f.now
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}
