package get_availability

import (
	"github.com/rpires71/PK-BookingService/internal/domain"
	getAvailability "github.com/rpires71/PK-BookingService/internal/usecase/get_availability"
)

// SlotAvailability доступность одного слота на дату
type SlotAvailability struct {
	TimeSlotID int64  `json:"timeSlotId"`
	Time       string `json:"time"`
	Capacity   int    `json:"capacity"`
	Booked     int    `json:"booked"`
	Remaining  int    `json:"remaining"`
	Available  bool   `json:"available"`
}

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Date  string             `json:"date"`
	Slots []SlotAvailability `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	out := &AvailabilityResponse{
		Date:  resp.Date.Format(domain.DateFormat),
		Slots: make([]SlotAvailability, 0, len(resp.Slots)),
	}
	for _, s := range resp.Slots {
		out.Slots = append(out.Slots, SlotAvailability{
			TimeSlotID: s.TimeSlotID,
			Time:       s.Time,
			Capacity:   s.Capacity,
			Booked:     s.Booked,
			Remaining:  s.Remaining,
			Available:  s.Available,
		})
	}
	return out
}
