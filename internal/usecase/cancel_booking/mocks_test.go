package cancel_booking

import (
	"context"
	"time"

	"github.com/rpires71/PK-BookingService/internal/domain"
)

type fakeBookingRepo struct {
	GetByReferenceFunc func(ctx context.Context, reference string) (*domain.Booking, error)
	CancelFunc         func(ctx context.Context, id int64) error
}

func (f *fakeBookingRepo) GetByReference(ctx context.Context, reference string) (*domain.Booking, error) {
	return f.GetByReferenceFunc(ctx, reference)
}

func (f *fakeBookingRepo) Cancel(ctx context.Context, id int64) error {
	return f.CancelFunc(ctx, id)
}

type fakeSlotRepo struct {
	GetByIDFunc func(ctx context.Context, id int64) (*domain.TimeSlot, error)
}

func (f *fakeSlotRepo) GetByID(ctx context.Context, id int64) (*domain.TimeSlot, error) {
	return f.GetByIDFunc(ctx, id)
}

type fakeNotifier struct {
	cancelled []*domain.Booking
	slots     []*domain.TimeSlot
}

func (f *fakeNotifier) BookingCancelled(booking *domain.Booking, slot *domain.TimeSlot) {
	f.cancelled = append(f.cancelled, booking)
	f.slots = append(f.slots, slot)
}

// fakeTxManager вызывает fn напрямую, без транзакции
type fakeTxManager struct{}

func (f *fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
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
