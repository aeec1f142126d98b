package create_booking

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpires71/PK-BookingService/internal/domain"
	bookingRepo "github.com/rpires71/PK-BookingService/internal/infra/storage/booking"
	slotRepo "github.com/rpires71/PK-BookingService/internal/infra/storage/timeslot"
	"github.com/rpires71/PK-BookingService/pkg/ptr"
	"github.com/rpires71/PK-BookingService/pkg/txmanager"
)

var (
	testNow  = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	testDate = time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
)

func newTestUseCase(bookings *fakeBookingRepo, slots *fakeSlotRepo, notifier *fakeNotifier, tx *fakeTxManager) *UseCase {
	return &UseCase{
		bookingRepo:  bookings,
		slotRepo:     slots,
		notifier:     notifier,
		txManager:    tx,
		timeProvider: &fixedTimeProvider{now: testNow},
		logger:       nopLogger{},
	}
}

func activeSlot(capacity *int) *fakeSlotRepo {
	return &fakeSlotRepo{
		GetByIDFunc: func(ctx context.Context, id int64) (*domain.TimeSlot, error) {
			return &domain.TimeSlot{ID: id, Time: "19:30", MaxCapacity: capacity, IsActive: true}, nil
		},
	}
}

func userRequest(partySize int) *Request {
	userID := int64(7)
	return &Request{
		UserID:     &userID,
		TimeSlotID: 3,
		Date:       testDate,
		PartySize:  partySize,
	}
}

func TestCreateBookingSuccess(t *testing.T) {
	var created *domain.Booking
	bookings := &fakeBookingRepo{
		SumActivePartySizeFunc: func(ctx context.Context, timeSlotID int64, date time.Time, excludeBookingID *int64) (int, error) {
			assert.Nil(t, excludeBookingID)
			return 0, nil
		},
		CreateFunc: func(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
			created = booking
			result := *booking
			result.ID = 101
			result.CreatedAt = testNow
			return &result, nil
		},
	}
	notifier := &fakeNotifier{}
	uc := newTestUseCase(bookings, activeSlot(nil), notifier, &fakeTxManager{})

	resp, err := uc.Execute(context.Background(), userRequest(8))

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, domain.StatusPending, created.Status)
	assert.Len(t, created.Reference, 8)

	assert.Equal(t, int64(101), resp.ID)
	assert.Equal(t, created.Reference, resp.Reference)
	assert.Equal(t, "19:30", resp.SlotTime)
	assert.Equal(t, string(domain.StatusPending), resp.Status)

	require.Len(t, notifier.created, 1)
	assert.Equal(t, int64(101), notifier.created[0].ID)
}

func TestCreateBookingCapacity(t *testing.T) {
	capacity := 20

	tests := []struct {
		name          string
		taken         int
		partySize     int
		wantAvailable int
		wantErr       bool
	}{
		{name: "exactFit", taken: 15, partySize: 5},
		{name: "oneSeatOver", taken: 15, partySize: 6, wantAvailable: 5, wantErr: true},
		{name: "fullSlot", taken: 20, partySize: 1, wantAvailable: 0, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bookings := &fakeBookingRepo{
				SumActivePartySizeFunc: func(ctx context.Context, timeSlotID int64, date time.Time, excludeBookingID *int64) (int, error) {
					return tt.taken, nil
				},
				CreateFunc: func(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
					return booking, nil
				},
			}
			uc := newTestUseCase(bookings, activeSlot(&capacity), &fakeNotifier{}, &fakeTxManager{})

			_, err := uc.Execute(context.Background(), userRequest(tt.partySize))

			if !tt.wantErr {
				require.NoError(t, err)
				return
			}
			var capacityErr *domain.CapacityError
			require.ErrorAs(t, err, &capacityErr)
			assert.Equal(t, tt.wantAvailable, capacityErr.Available)
		})
	}
}

func TestCreateBookingValidation(t *testing.T) {
	userID := int64(7)
	name := "Maria Santos"
	email := "maria@example.com"
	phone := "+351912345678"

	tests := []struct {
		name    string
		req     *Request
		wantErr error
	}{
		{
			name:    "partySizeTooSmall",
			req:     userRequest(0),
			wantErr: ErrInvalidInput,
		},
		{
			name:    "partySizeTooLarge",
			req:     userRequest(9),
			wantErr: ErrInvalidInput,
		},
		{
			name:    "missingSlot",
			req:     &Request{UserID: &userID, Date: testDate, PartySize: 2},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "guestWithoutContacts",
			req:     &Request{GuestName: &name, TimeSlotID: 3, Date: testDate, PartySize: 2},
			wantErr: ErrGuestContactRequired,
		},
		{
			name: "guestWithBlankEmail",
			req: &Request{
				GuestName:  &name,
				GuestEmail: ptr.Ptr("   "),
				GuestPhone: &phone,
				TimeSlotID: 3,
				Date:       testDate,
				PartySize:  2,
			},
			wantErr: ErrGuestContactRequired,
		},
		{
			name: "registeredUserWithGuestContacts",
			req: &Request{
				UserID:     &userID,
				GuestName:  &name,
				GuestEmail: &email,
				GuestPhone: &phone,
				TimeSlotID: 3,
				Date:       testDate,
				PartySize:  2,
			},
			wantErr: ErrInvalidInput,
		},
		{
			name: "pastDate",
			req: &Request{
				UserID:     &userID,
				TimeSlotID: 3,
				Date:       time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC),
				PartySize:  2,
			},
			wantErr: ErrInvalidDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(&fakeBookingRepo{}, activeSlot(nil), &fakeNotifier{}, &fakeTxManager{})

			_, err := uc.Execute(context.Background(), tt.req)

			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCreateBookingTodayAllowed(t *testing.T) {
	// Бронь на сегодня не считается прошедшей, даже если время позднее
	today := time.Date(testNow.Year(), testNow.Month(), testNow.Day(), 0, 0, 0, 0, time.UTC)
	bookings := &fakeBookingRepo{
		SumActivePartySizeFunc: func(ctx context.Context, timeSlotID int64, date time.Time, excludeBookingID *int64) (int, error) {
			return 0, nil
		},
		CreateFunc: func(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
			return booking, nil
		},
	}
	uc := newTestUseCase(bookings, activeSlot(nil), &fakeNotifier{}, &fakeTxManager{})

	req := userRequest(2)
	req.Date = today
	_, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
}

func TestCreateBookingSlotErrors(t *testing.T) {
	tests := []struct {
		name    string
		slots   *fakeSlotRepo
		wantErr error
	}{
		{
			name: "slotNotFound",
			slots: &fakeSlotRepo{
				GetByIDFunc: func(ctx context.Context, id int64) (*domain.TimeSlot, error) {
					return nil, slotRepo.ErrSlotNotFound
				},
			},
			wantErr: ErrSlotNotFound,
		},
		{
			name: "slotInactive",
			slots: &fakeSlotRepo{
				GetByIDFunc: func(ctx context.Context, id int64) (*domain.TimeSlot, error) {
					return &domain.TimeSlot{ID: id, Time: "19:30", IsActive: false}, nil
				},
			},
			wantErr: ErrSlotInactive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(&fakeBookingRepo{}, tt.slots, &fakeNotifier{}, &fakeTxManager{})

			_, err := uc.Execute(context.Background(), userRequest(2))

			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCreateBookingDuplicateUserBooking(t *testing.T) {
	bookings := &fakeBookingRepo{
		SumActivePartySizeFunc: func(ctx context.Context, timeSlotID int64, date time.Time, excludeBookingID *int64) (int, error) {
			return 0, nil
		},
		CreateFunc: func(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
			return nil, bookingRepo.ErrDuplicateUserBooking
		},
	}
	uc := newTestUseCase(bookings, activeSlot(nil), &fakeNotifier{}, &fakeTxManager{})

	_, err := uc.Execute(context.Background(), userRequest(2))

	require.ErrorIs(t, err, ErrDuplicateBooking)
}

func TestCreateBookingReferenceCollisionRetry(t *testing.T) {
	var references []string
	bookings := &fakeBookingRepo{
		SumActivePartySizeFunc: func(ctx context.Context, timeSlotID int64, date time.Time, excludeBookingID *int64) (int, error) {
			return 0, nil
		},
		CreateFunc: func(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
			references = append(references, booking.Reference)
			if len(references) == 1 {
				return nil, bookingRepo.ErrDuplicateReference
			}
			return booking, nil
		},
	}
	uc := newTestUseCase(bookings, activeSlot(nil), &fakeNotifier{}, &fakeTxManager{})

	resp, err := uc.Execute(context.Background(), userRequest(2))

	require.NoError(t, err)
	require.Len(t, references, 2)
	assert.NotEqual(t, references[0], references[1])
	assert.Equal(t, references[1], resp.Reference)
}

func TestCreateBookingSerializationConflict(t *testing.T) {
	tx := &fakeTxManager{err: fmt.Errorf("%w: could not serialize access", txmanager.ErrSerializationFailure)}
	uc := newTestUseCase(&fakeBookingRepo{}, activeSlot(nil), &fakeNotifier{}, tx)

	_, err := uc.Execute(context.Background(), userRequest(2))

	require.ErrorIs(t, err, ErrTransient)
}

