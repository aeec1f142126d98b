package models

import (
	"time"

	"github.com/rpires71/PK-BookingService/internal/domain"
)

// Request модели

// GetUserBookingsRequest запрос на получение бронирований пользователя
type GetUserBookingsRequest struct {
	UserID int64
	Status *string
}

// UpdateStatusRequest запрос на смену статуса бронирования персоналом
type UpdateStatusRequest struct {
	Requester domain.Requester
	Status    string
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID              int64   `json:"id"`
	UserID          *int64  `json:"userId,omitempty"`
	GuestName       *string `json:"guestName,omitempty"`
	GuestEmail      *string `json:"guestEmail,omitempty"`
	GuestPhone      *string `json:"guestPhone,omitempty"`
	TableID         *int64  `json:"tableId,omitempty"`
	TimeSlotID      int64   `json:"timeslotId"`
	BookingDate     string  `json:"bookingDate"` // "2026-02-14"
	PartySize       int     `json:"partySize"`
	Status          string  `json:"status"`
	Reference       string  `json:"reference"`
	SpecialRequests *string `json:"specialRequests,omitempty"`
	CancelledAt     *string `json:"cancelledAt,omitempty"` // ISO 8601

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// UserBookingsResponse история бронирований пользователя,
// разделённая на предстоящие и прошедшие
type UserBookingsResponse struct {
	Upcoming []BookingResponse `json:"upcoming"`
	Past     []BookingResponse `json:"past"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:              b.ID,
		UserID:          b.UserID,
		GuestName:       b.GuestName,
		GuestEmail:      b.GuestEmail,
		GuestPhone:      b.GuestPhone,
		TableID:         b.TableID,
		TimeSlotID:      b.TimeSlotID,
		BookingDate:     b.BookingDate.Format(domain.DateFormat),
		PartySize:       b.PartySize,
		Status:          string(b.Status),
		Reference:       b.Reference,
		SpecialRequests: b.SpecialRequests,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}

	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}
