package reports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpires71/PK-BookingService/internal/domain"
	"github.com/rpires71/PK-BookingService/internal/service/reports/models"
)

type fakeBookingRepo struct {
	GetWithFilterFunc func(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	CountByStatusFunc func(ctx context.Context, startDate, endDate *time.Time) ([]domain.StatusCount, error)
	CountBySlotFunc   func(ctx context.Context, startDate, endDate *time.Time) ([]domain.SlotPopularity, error)
	CountPerDayFunc   func(ctx context.Context, startDate, endDate *time.Time) ([]domain.DayCount, error)
}

func (f *fakeBookingRepo) GetWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	return f.GetWithFilterFunc(ctx, filter)
}

func (f *fakeBookingRepo) CountByStatus(ctx context.Context, startDate, endDate *time.Time) ([]domain.StatusCount, error) {
	return f.CountByStatusFunc(ctx, startDate, endDate)
}

func (f *fakeBookingRepo) CountBySlot(ctx context.Context, startDate, endDate *time.Time) ([]domain.SlotPopularity, error) {
	return f.CountBySlotFunc(ctx, startDate, endDate)
}

func (f *fakeBookingRepo) CountPerDay(ctx context.Context, startDate, endDate *time.Time) ([]domain.DayCount, error) {
	return f.CountPerDayFunc(ctx, startDate, endDate)
}

type nopLogger struct{}

func (nopLogger) Info(format string, args ...interface{})  {}
func (nopLogger) Warn(format string, args ...interface{})  {}
func (nopLogger) Error(format string, args ...interface{}) {}

func staff() domain.Requester {
	return domain.Requester{IsStaff: true}
}

func TestGetBookingsStatusFilterIncludesInactive(t *testing.T) {
	var gotFilter domain.BookingsFilter
	repo := &fakeBookingRepo{
		GetWithFilterFunc: func(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
			gotFilter = filter
			return nil, nil
		},
	}
	svc := NewService(repo, nopLogger{})

	status := "Cancelled"
	resp, err := svc.GetBookings(context.Background(), &models.BookingsReportRequest{
		Requester: staff(),
		Status:    &status,
	})

	require.NoError(t, err)
	// Фильтр по Cancelled не должен гаситься скрытием неактивных
	require.NotNil(t, gotFilter.Status)
	assert.Equal(t, domain.StatusCancelled, *gotFilter.Status)
	assert.True(t, gotFilter.IncludeInactive)

	// Пустой результат - нормальный ответ
	assert.Equal(t, 0, resp.Total)
	assert.Empty(t, resp.Bookings)
}

func TestGetBookingsGuards(t *testing.T) {
	start := time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	badStatus := "Teleported"

	tests := []struct {
		name    string
		req     *models.BookingsReportRequest
		wantErr error
	}{
		{
			name:    "nonStaffDenied",
			req:     &models.BookingsReportRequest{},
			wantErr: ErrAccessDenied,
		},
		{
			name:    "endBeforeStart",
			req:     &models.BookingsReportRequest{Requester: staff(), StartDate: &start, EndDate: &end},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "unknownStatus",
			req:     &models.BookingsReportRequest{Requester: staff(), Status: &badStatus},
			wantErr: ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(&fakeBookingRepo{}, nopLogger{})

			_, err := svc.GetBookings(context.Background(), tt.req)

			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGetStats(t *testing.T) {
	repo := &fakeBookingRepo{
		CountByStatusFunc: func(ctx context.Context, startDate, endDate *time.Time) ([]domain.StatusCount, error) {
			return []domain.StatusCount{{Status: domain.StatusConfirmed, Count: 12}}, nil
		},
		CountBySlotFunc: func(ctx context.Context, startDate, endDate *time.Time) ([]domain.SlotPopularity, error) {
			return []domain.SlotPopularity{{TimeSlotID: 3, Time: "19:30", Bookings: 8, Guests: 26}}, nil
		},
		CountPerDayFunc: func(ctx context.Context, startDate, endDate *time.Time) ([]domain.DayCount, error) {
			return []domain.DayCount{{Date: time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), Bookings: 5, Guests: 17}}, nil
		},
	}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.GetStats(context.Background(), &models.StatsRequest{Requester: staff()})

	require.NoError(t, err)
	require.Len(t, resp.ByStatus, 1)
	assert.Equal(t, "Confirmed", resp.ByStatus[0].Status)
	assert.Equal(t, 12, resp.ByStatus[0].Count)

	require.Len(t, resp.BySlot, 1)
	assert.Equal(t, "19:30", resp.BySlot[0].Time)
	assert.Equal(t, 26, resp.BySlot[0].Guests)

	require.Len(t, resp.PerDay, 1)
	assert.Equal(t, "2026-03-15", resp.PerDay[0].Date)
}

func TestGetStatsNonStaff(t *testing.T) {
	svc := NewService(&fakeBookingRepo{}, nopLogger{})

	_, err := svc.GetStats(context.Background(), &models.StatsRequest{})

	require.ErrorIs(t, err, ErrAccessDenied)
}
