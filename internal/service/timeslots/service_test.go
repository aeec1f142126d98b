package timeslots

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpires71/PK-BookingService/internal/domain"
	slotRepo "github.com/rpires71/PK-BookingService/internal/infra/storage/timeslot"
	"github.com/rpires71/PK-BookingService/internal/service/timeslots/models"
)

type fakeSlotRepo struct {
	CreateFunc  func(ctx context.Context, slot *domain.TimeSlot) (*domain.TimeSlot, error)
	GetByIDFunc func(ctx context.Context, id int64) (*domain.TimeSlot, error)
	GetAllFunc  func(ctx context.Context, onlyActive bool) ([]*domain.TimeSlot, error)
	UpdateFunc  func(ctx context.Context, slot *domain.TimeSlot) error
	DeleteFunc  func(ctx context.Context, id int64) error
}

func (f *fakeSlotRepo) Create(ctx context.Context, slot *domain.TimeSlot) (*domain.TimeSlot, error) {
	return f.CreateFunc(ctx, slot)
}

func (f *fakeSlotRepo) GetByID(ctx context.Context, id int64) (*domain.TimeSlot, error) {
	return f.GetByIDFunc(ctx, id)
}

func (f *fakeSlotRepo) GetAll(ctx context.Context, onlyActive bool) ([]*domain.TimeSlot, error) {
	return f.GetAllFunc(ctx, onlyActive)
}

func (f *fakeSlotRepo) Update(ctx context.Context, slot *domain.TimeSlot) error {
	return f.UpdateFunc(ctx, slot)
}

func (f *fakeSlotRepo) Delete(ctx context.Context, id int64) error {
	return f.DeleteFunc(ctx, id)
}

type nopLogger struct{}

func (nopLogger) Info(format string, args ...interface{})  {}
func (nopLogger) Warn(format string, args ...interface{})  {}
func (nopLogger) Error(format string, args ...interface{}) {}

func staff() domain.Requester {
	return domain.Requester{IsStaff: true}
}

func TestCreateTimeSlot(t *testing.T) {
	var created *domain.TimeSlot
	repo := &fakeSlotRepo{
		CreateFunc: func(ctx context.Context, slot *domain.TimeSlot) (*domain.TimeSlot, error) {
			created = slot
			result := *slot
			result.ID = 3
			return &result, nil
		},
	}
	svc := NewService(repo, nopLogger{})

	capacity := 25
	resp, err := svc.Create(context.Background(), &models.CreateTimeSlotRequest{
		Requester:   staff(),
		Time:        "19:30",
		MaxCapacity: &capacity,
	})

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.True(t, created.IsActive, "new slots are active by default")
	assert.Equal(t, int64(3), resp.ID)
	assert.Equal(t, "19:30", resp.Time)
	assert.Equal(t, 25, resp.EffectiveCapacity)
}

func TestCreateTimeSlotValidation(t *testing.T) {
	zeroCapacity := 0

	tests := []struct {
		name    string
		req     *models.CreateTimeSlotRequest
		wantErr error
	}{
		{
			name:    "nonStaffDenied",
			req:     &models.CreateTimeSlotRequest{Time: "19:30"},
			wantErr: ErrAccessDenied,
		},
		{
			name:    "badTimeFormat",
			req:     &models.CreateTimeSlotRequest{Requester: staff(), Time: "dinner"},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "zeroCapacity",
			req:     &models.CreateTimeSlotRequest{Requester: staff(), Time: "19:30", MaxCapacity: &zeroCapacity},
			wantErr: ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(&fakeSlotRepo{}, nopLogger{})

			_, err := svc.Create(context.Background(), tt.req)

			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCreateTimeSlotDuplicateTime(t *testing.T) {
	repo := &fakeSlotRepo{
		CreateFunc: func(ctx context.Context, slot *domain.TimeSlot) (*domain.TimeSlot, error) {
			return nil, slotRepo.ErrDuplicateTime
		},
	}
	svc := NewService(repo, nopLogger{})

	_, err := svc.Create(context.Background(), &models.CreateTimeSlotRequest{Requester: staff(), Time: "19:30"})

	require.ErrorIs(t, err, ErrDuplicateTime)
}

func TestUpdateTimeSlotPartialFields(t *testing.T) {
	capacity := 30
	existing := &domain.TimeSlot{ID: 3, Time: "19:30", MaxCapacity: &capacity, IsActive: true}
	var updated *domain.TimeSlot
	repo := &fakeSlotRepo{
		GetByIDFunc: func(ctx context.Context, id int64) (*domain.TimeSlot, error) {
			return existing, nil
		},
		UpdateFunc: func(ctx context.Context, slot *domain.TimeSlot) error {
			updated = slot
			return nil
		},
	}
	svc := NewService(repo, nopLogger{})

	inactive := false
	resp, err := svc.Update(context.Background(), 3, &models.UpdateTimeSlotRequest{
		Requester: staff(),
		IsActive:  &inactive,
	})

	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.False(t, updated.IsActive)
	assert.Equal(t, "19:30", updated.Time.String(), "time stays untouched")
	assert.Equal(t, 30, resp.EffectiveCapacity)
}

func TestDeleteTimeSlotInUse(t *testing.T) {
	repo := &fakeSlotRepo{
		DeleteFunc: func(ctx context.Context, id int64) error {
			return slotRepo.ErrSlotInUse
		},
	}
	svc := NewService(repo, nopLogger{})

	err := svc.Delete(context.Background(), staff(), 3)

	require.ErrorIs(t, err, ErrSlotInUse)
}

func TestDeleteTimeSlotNonStaff(t *testing.T) {
	svc := NewService(&fakeSlotRepo{}, nopLogger{})

	err := svc.Delete(context.Background(), domain.Requester{}, 3)

	require.ErrorIs(t, err, ErrAccessDenied)
}
