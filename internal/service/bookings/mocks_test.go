package bookings

import (
	"context"

	"github.com/rpires71/PK-BookingService/internal/domain"
)

type fakeBookingRepo struct {
	GetByReferenceFunc func(ctx context.Context, reference string) (*domain.Booking, error)
	GetByUserIDFunc    func(ctx context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error)
	UpdateStatusFunc   func(ctx context.Context, id int64, status domain.BookingStatus) error
}

func (f *fakeBookingRepo) GetByReference(ctx context.Context, reference string) (*domain.Booking, error) {
	return f.GetByReferenceFunc(ctx, reference)
}

func (f *fakeBookingRepo) GetByUserID(ctx context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	return f.GetByUserIDFunc(ctx, userID, status)
}

func (f *fakeBookingRepo) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	return f.UpdateStatusFunc(ctx, id, status)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}
