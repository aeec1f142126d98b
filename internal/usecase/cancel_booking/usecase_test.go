package cancel_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpires71/PK-BookingService/internal/domain"
)

var (
	testNow  = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	testDate = time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
)

func newTestUseCase(bookings *fakeBookingRepo, slots *fakeSlotRepo, notifier *fakeNotifier) *UseCase {
	return &UseCase{
		bookingRepo:  bookings,
		slotRepo:     slots,
		notifier:     notifier,
		txManager:    &fakeTxManager{},
		timeProvider: &fixedTimeProvider{now: testNow},
		logger:       nopLogger{},
	}
}

func ownedBooking(status domain.BookingStatus) *domain.Booking {
	userID := int64(7)
	return &domain.Booking{
		ID:          55,
		Reference:   "AB12CD34",
		UserID:      &userID,
		TimeSlotID:  3,
		BookingDate: testDate,
		PartySize:   4,
		Status:      status,
	}
}

func repoWith(booking *domain.Booking) *fakeBookingRepo {
	return &fakeBookingRepo{
		GetByReferenceFunc: func(ctx context.Context, reference string) (*domain.Booking, error) {
			return booking, nil
		},
		CancelFunc: func(ctx context.Context, id int64) error {
			return nil
		},
	}
}

func slotRepoOK() *fakeSlotRepo {
	return &fakeSlotRepo{
		GetByIDFunc: func(ctx context.Context, id int64) (*domain.TimeSlot, error) {
			return &domain.TimeSlot{ID: id, Time: "19:30", IsActive: true}, nil
		},
	}
}

func ownerRequester() domain.Requester {
	userID := int64(7)
	return domain.Requester{UserID: &userID}
}

func TestCancelBookingSuccess(t *testing.T) {
	booking := ownedBooking(domain.StatusConfirmed)
	var cancelledID int64
	bookings := repoWith(booking)
	bookings.CancelFunc = func(ctx context.Context, id int64) error {
		cancelledID = id
		return nil
	}
	notifier := &fakeNotifier{}
	uc := newTestUseCase(bookings, slotRepoOK(), notifier)

	resp, err := uc.Execute(context.Background(), &Request{
		Reference: booking.Reference,
		Requester: ownerRequester(),
	})

	require.NoError(t, err)
	assert.Equal(t, booking.ID, cancelledID)
	assert.Equal(t, string(domain.StatusCancelled), resp.Status)
	assert.Equal(t, testNow, resp.CancelledAt)
	require.Len(t, notifier.cancelled, 1)
}

func TestCancelBookingIdempotent(t *testing.T) {
	booking := ownedBooking(domain.StatusCancelled)
	cancelledAt := testNow.Add(-24 * time.Hour)
	booking.CancelledAt = &cancelledAt
	notifier := &fakeNotifier{}
	uc := newTestUseCase(repoWith(booking), slotRepoOK(), notifier)

	resp, err := uc.Execute(context.Background(), &Request{
		Reference: booking.Reference,
		Requester: ownerRequester(),
	})

	// Повторная отмена возвращает бронь вместе с ErrAlreadyCancelled
	require.ErrorIs(t, err, ErrAlreadyCancelled)
	require.NotNil(t, resp)
	assert.Equal(t, string(domain.StatusCancelled), resp.Status)
	assert.Equal(t, cancelledAt, resp.CancelledAt)
	assert.Empty(t, notifier.cancelled, "repeated cancellation must not notify again")
}

func TestCancelBookingGuards(t *testing.T) {
	strangerID := int64(99)

	tests := []struct {
		name      string
		booking   *domain.Booking
		requester domain.Requester
		wantErr   error
	}{
		{
			name:      "strangerDenied",
			booking:   ownedBooking(domain.StatusConfirmed),
			requester: domain.Requester{UserID: &strangerID},
			wantErr:   ErrAccessDenied,
		},
		{
			name:      "completedNotCancellable",
			booking:   ownedBooking(domain.StatusCompleted),
			requester: ownerRequester(),
			wantErr:   ErrNotCancellable,
		},
		{
			name:      "noShowNotCancellable",
			booking:   ownedBooking(domain.StatusNoShow),
			requester: ownerRequester(),
			wantErr:   ErrNotCancellable,
		},
		{
			name: "pastBooking",
			booking: func() *domain.Booking {
				b := ownedBooking(domain.StatusConfirmed)
				b.BookingDate = time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
				return b
			}(),
			requester: ownerRequester(),
			wantErr:   ErrPastBooking,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(repoWith(tt.booking), slotRepoOK(), &fakeNotifier{})

			resp, err := uc.Execute(context.Background(), &Request{
				Reference: tt.booking.Reference,
				Requester: tt.requester,
			})

			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, resp)
		})
	}
}

func TestCancelBookingGuestByReference(t *testing.T) {
	name := "Maria Santos"
	booking := ownedBooking(domain.StatusPending)
	booking.UserID = nil
	booking.GuestName = &name
	uc := newTestUseCase(repoWith(booking), slotRepoOK(), &fakeNotifier{})

	// Гость отменяет по одному только знанию номера брони
	_, err := uc.Execute(context.Background(), &Request{
		Reference: booking.Reference,
		Requester: domain.Requester{},
	})

	require.NoError(t, err)
}

func TestCancelBookingSlotLookupFailureIsNotFatal(t *testing.T) {
	booking := ownedBooking(domain.StatusConfirmed)
	slots := &fakeSlotRepo{
		GetByIDFunc: func(ctx context.Context, id int64) (*domain.TimeSlot, error) {
			return nil, errors.New("slot gone")
		},
	}
	notifier := &fakeNotifier{}
	uc := newTestUseCase(repoWith(booking), slots, notifier)

	_, err := uc.Execute(context.Background(), &Request{
		Reference: booking.Reference,
		Requester: ownerRequester(),
	})

	require.NoError(t, err)
	require.Len(t, notifier.slots, 1)
	assert.Nil(t, notifier.slots[0])
}
