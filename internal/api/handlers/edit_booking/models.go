package edit_booking

import (
	"time"

	"github.com/rpires71/PK-BookingService/internal/domain"
	editBooking "github.com/rpires71/PK-BookingService/internal/usecase/edit_booking"
)

// EditBookingRequest HTTP request model. Поля опциональны: передаются
// только изменяемые.
type EditBookingRequest struct {
	TimeSlotID      *int64  `json:"timeSlotId,omitempty"`
	BookingDate     *string `json:"bookingDate,omitempty"` // "2026-09-12"
	PartySize       *int    `json:"partySize,omitempty"`
	SpecialRequests *string `json:"specialRequests,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              int64   `json:"id"`
	Reference       string  `json:"reference"`
	TimeSlotID      int64   `json:"timeSlotId"`
	SlotTime        string  `json:"slotTime"`
	BookingDate     string  `json:"bookingDate"`
	PartySize       int     `json:"partySize"`
	Status          string  `json:"status"`
	SpecialRequests *string `json:"specialRequests,omitempty"`
	UpdatedAt       string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *EditBookingRequest) ToUseCaseRequest(reference string, requester domain.Requester) (*editBooking.Request, error) {
	req := &editBooking.Request{
		Reference:       reference,
		Requester:       requester,
		TimeSlotID:      r.TimeSlotID,
		PartySize:       r.PartySize,
		SpecialRequests: r.SpecialRequests,
	}

	if r.BookingDate != nil {
		date, err := time.Parse(domain.DateFormat, *r.BookingDate)
		if err != nil {
			return nil, err
		}
		req.Date = &date
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *editBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID,
		Reference:       resp.Reference,
		TimeSlotID:      resp.TimeSlotID,
		SlotTime:        resp.SlotTime,
		BookingDate:     resp.BookingDate.Format(domain.DateFormat),
		PartySize:       resp.PartySize,
		Status:          resp.Status,
		SpecialRequests: resp.SpecialRequests,
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
