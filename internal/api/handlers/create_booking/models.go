package create_booking

import (
	"time"

	"github.com/rpires71/PK-BookingService/internal/domain"
	createBooking "github.com/rpires71/PK-BookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model.
// Для гостевой брони заполняются guestName/guestEmail/guestPhone,
// для зарегистрированного пользователя владельца определяет заголовок X-User-ID.
type CreateBookingRequest struct {
	GuestName       *string `json:"guestName,omitempty"`
	GuestEmail      *string `json:"guestEmail,omitempty"`
	GuestPhone      *string `json:"guestPhone,omitempty"`
	TimeSlotID      int64   `json:"timeSlotId"`
	BookingDate     string  `json:"bookingDate"` // "2026-09-12"
	PartySize       int     `json:"partySize"`
	SpecialRequests *string `json:"specialRequests,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              int64   `json:"id"`
	Reference       string  `json:"reference"`
	UserID          *int64  `json:"userId,omitempty"`
	GuestName       *string `json:"guestName,omitempty"`
	TimeSlotID      int64   `json:"timeSlotId"`
	SlotTime        string  `json:"slotTime"`
	BookingDate     string  `json:"bookingDate"`
	PartySize       int     `json:"partySize"`
	Status          string  `json:"status"`
	SpecialRequests *string `json:"specialRequests,omitempty"`
	CreatedAt       string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID *int64) (*createBooking.Request, error) {
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		UserID:          userID,
		GuestName:       r.GuestName,
		GuestEmail:      r.GuestEmail,
		GuestPhone:      r.GuestPhone,
		TimeSlotID:      r.TimeSlotID,
		Date:            bookingDate,
		PartySize:       r.PartySize,
		SpecialRequests: r.SpecialRequests,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID,
		Reference:       resp.Reference,
		UserID:          resp.UserID,
		GuestName:       resp.GuestName,
		TimeSlotID:      resp.TimeSlotID,
		SlotTime:        resp.SlotTime,
		BookingDate:     resp.BookingDate.Format(domain.DateFormat),
		PartySize:       resp.PartySize,
		Status:          resp.Status,
		SpecialRequests: resp.SpecialRequests,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
	}
}
