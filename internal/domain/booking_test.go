package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpires71/PK-BookingService/pkg/ptr"
)

func TestBookingCanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from BookingStatus
		to   BookingStatus
		want bool
	}{
		{name: "pendingToConfirmed", from: StatusPending, to: StatusConfirmed, want: true},
		{name: "pendingToSeated", from: StatusPending, to: StatusSeated, want: true},
		{name: "pendingToCancelled", from: StatusPending, to: StatusCancelled, want: true},
		{name: "pendingToNoShow", from: StatusPending, to: StatusNoShow, want: true},
		{name: "pendingToCompleted", from: StatusPending, to: StatusCompleted, want: false},
		{name: "confirmedToSeated", from: StatusConfirmed, to: StatusSeated, want: true},
		{name: "confirmedToCompleted", from: StatusConfirmed, to: StatusCompleted, want: false},
		{name: "confirmedToPending", from: StatusConfirmed, to: StatusPending, want: false},
		{name: "seatedToCompleted", from: StatusSeated, to: StatusCompleted, want: true},
		{name: "seatedToConfirmed", from: StatusSeated, to: StatusConfirmed, want: false},
		{name: "completedIsTerminal", from: StatusCompleted, to: StatusCancelled, want: false},
		{name: "cancelledIsTerminal", from: StatusCancelled, to: StatusConfirmed, want: false},
		{name: "noShowIsTerminal", from: StatusNoShow, to: StatusSeated, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &Booking{Status: tt.from}
			assert.Equal(t, tt.want, b.CanTransitionTo(tt.to))
		})
	}
}

func TestBookingIsActive(t *testing.T) {
	active := []BookingStatus{StatusPending, StatusConfirmed, StatusSeated}
	inactive := []BookingStatus{StatusCompleted, StatusCancelled, StatusNoShow}

	for _, status := range active {
		b := &Booking{Status: status}
		assert.True(t, b.IsActive(), "status %s should count against capacity", status)
	}
	for _, status := range inactive {
		b := &Booking{Status: status}
		assert.False(t, b.IsActive(), "status %s should not count against capacity", status)
	}
}

func TestBookingCanBeEdited(t *testing.T) {
	editable := []BookingStatus{StatusPending, StatusConfirmed, StatusSeated}
	frozen := []BookingStatus{StatusCompleted, StatusCancelled, StatusNoShow}

	for _, status := range editable {
		assert.True(t, (&Booking{Status: status}).CanBeEdited(), "status %s", status)
	}
	for _, status := range frozen {
		assert.False(t, (&Booking{Status: status}).CanBeEdited(), "status %s", status)
	}
}

func TestBookingIsPast(t *testing.T) {
	now := time.Date(2026, 2, 14, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		date time.Time
		want bool
	}{
		{name: "yesterday", date: time.Date(2026, 2, 13, 0, 0, 0, 0, time.UTC), want: true},
		{name: "todayIsNotPast", date: time.Date(2026, 2, 14, 0, 0, 0, 0, time.UTC), want: false},
		{name: "tomorrow", date: time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &Booking{BookingDate: tt.date}
			assert.Equal(t, tt.want, b.IsPast(now))
		})
	}
}

func TestRequesterCanMutate(t *testing.T) {
	owner := int64(42)
	stranger := int64(99)
	userBooking := &Booking{UserID: &owner}
	guestBooking := &Booking{GuestName: ptr.Ptr("Maria")}

	tests := []struct {
		name      string
		requester Requester
		booking   *Booking
		want      bool
	}{
		{name: "staffMutatesAnything", requester: Requester{IsStaff: true}, booking: userBooking, want: true},
		{name: "ownerMutatesOwn", requester: Requester{UserID: &owner}, booking: userBooking, want: true},
		{name: "strangerDenied", requester: Requester{UserID: &stranger}, booking: userBooking, want: false},
		{name: "anonymousDeniedOnUserBooking", requester: Requester{}, booking: userBooking, want: false},
		// Номер брони — единственный credential гостя
		{name: "anyoneWithReferenceMutatesGuestBooking", requester: Requester{}, booking: guestBooking, want: true},
		{name: "registeredUserMutatesGuestBooking", requester: Requester{UserID: &stranger}, booking: guestBooking, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.requester.CanMutate(tt.booking))
		})
	}
}

func TestTimeSlotEffectiveCapacity(t *testing.T) {
	custom := 25

	slot := &TimeSlot{MaxCapacity: &custom}
	assert.Equal(t, 25, slot.EffectiveCapacity())

	slot = &TimeSlot{}
	assert.Equal(t, DefaultSlotCapacity, slot.EffectiveCapacity())
}

func TestParseBookingStatus(t *testing.T) {
	status, ok := ParseBookingStatus("Confirmed")
	require.True(t, ok)
	assert.Equal(t, StatusConfirmed, status)

	status, ok = ParseBookingStatus("No-Show")
	require.True(t, ok)
	assert.Equal(t, StatusNoShow, status)

	_, ok = ParseBookingStatus("confirmed")
	assert.False(t, ok, "status parsing is case sensitive")

	_, ok = ParseBookingStatus("Teleported")
	assert.False(t, ok)
}

func TestCapacityError(t *testing.T) {
	err := NewCapacityError(5)

	var capacityErr *CapacityError
	require.ErrorAs(t, err, &capacityErr)
	assert.Equal(t, 5, capacityErr.Available)
	assert.Contains(t, err.Error(), "5")
}

