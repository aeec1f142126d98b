package domain

import (
	"time"

	"github.com/rpires71/PK-BookingService/pkg/types"
)

// StatusCount количество бронирований в разрезе статуса
type StatusCount struct {
	Status BookingStatus
	Count  int
}

// SlotPopularity популярность временного слота за период
type SlotPopularity struct {
	TimeSlotID int64
	Time       types.TimeString
	Bookings   int // Число бронирований
	Guests     int // Суммарное число гостей
}

// DayCount сводка бронирований за один день
type DayCount struct {
	Date     time.Time
	Bookings int
	Guests   int
}
