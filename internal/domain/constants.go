package domain

// Default configuration values
const (
	// DefaultSlotCapacity действует для слотов без явного max_capacity
	DefaultSlotCapacity = 40
)

// Business validation constants
const (
	MinPartySize             = 1
	MaxPartySize             = 8
	MinTableCapacity         = 1
	MaxSpecialRequestsLength = 500
	ReferenceLength          = 8
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses список статусов, учитываемых при подсчёте занятости слота
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusSeated,
}

// InactiveStatuses список статусов, не влияющих на вместимость
var InactiveStatuses = []BookingStatus{
	StatusCompleted,
	StatusCancelled,
	StatusNoShow,
}

// AllStatuses список всех статусов бронирования
var AllStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusSeated,
	StatusCompleted,
	StatusCancelled,
	StatusNoShow,
}

// ParseBookingStatus валидирует строку статуса
func ParseBookingStatus(s string) (BookingStatus, bool) {
	status := BookingStatus(s)
	for _, valid := range AllStatuses {
		if status == valid {
			return status, true
		}
	}
	return "", false
}
