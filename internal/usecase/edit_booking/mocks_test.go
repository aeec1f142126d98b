package edit_booking

import (
	"context"
	"time"

	"github.com/rpires71/PK-BookingService/internal/domain"
)

type fakeBookingRepo struct {
	GetByReferenceFunc     func(ctx context.Context, reference string) (*domain.Booking, error)
	UpdateFunc             func(ctx context.Context, booking *domain.Booking) error
	SumActivePartySizeFunc func(ctx context.Context, timeSlotID int64, date time.Time, excludeBookingID *int64) (int, error)
}

func (f *fakeBookingRepo) GetByReference(ctx context.Context, reference string) (*domain.Booking, error) {
	return f.GetByReferenceFunc(ctx, reference)
}

func (f *fakeBookingRepo) Update(ctx context.Context, booking *domain.Booking) error {
	return f.UpdateFunc(ctx, booking)
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
	updated []*domain.Booking
}

func (f *fakeNotifier) BookingUpdated(booking *domain.Booking, slot *domain.TimeSlot) {
	f.updated = append(f.updated, booking)
}

// fakeTxManager вызывает fn напрямую, без транзакции
type fakeTxManager struct{}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
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
