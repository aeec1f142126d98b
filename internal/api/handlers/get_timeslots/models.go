package get_timeslots

import (
	"github.com/rpires71/PK-BookingService/internal/domain"
	getAvailability "github.com/rpires71/PK-BookingService/internal/usecase/get_availability"
)

// TimeSlotForDateResponse слот с остатком мест на конкретную дату.
// RemainingCapacity не обрезается снизу: <= 0 означает, что мест нет.
type TimeSlotForDateResponse struct {
	ID                int64  `json:"id"`
	Time              string `json:"time"`
	RemainingCapacity int    `json:"remainingCapacity"`
}

// TimeSlotsForDateResponse список слотов на дату
type TimeSlotsForDateResponse struct {
	Date      string                    `json:"date"`
	TimeSlots []TimeSlotForDateResponse `json:"timeSlots"`
}

// FromAvailabilityResponse конвертирует ответ use case в HTTP response
func FromAvailabilityResponse(resp *getAvailability.Response) *TimeSlotsForDateResponse {
	out := &TimeSlotsForDateResponse{
		Date:      resp.Date.Format(domain.DateFormat),
		TimeSlots: make([]TimeSlotForDateResponse, 0, len(resp.Slots)),
	}
	for _, s := range resp.Slots {
		out.TimeSlots = append(out.TimeSlots, TimeSlotForDateResponse{
			ID:                s.TimeSlotID,
			Time:              s.Time,
			RemainingCapacity: s.Remaining,
		})
	}
	return out
}
