package create_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/rpires71/PK-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.TimeSlotID <= 0 {
		return fmt.Errorf("%w: timeSlotID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.PartySize < domain.MinPartySize || req.PartySize > domain.MaxPartySize {
		return fmt.Errorf("%w: party size must be between %d and %d",
			ErrInvalidInput, domain.MinPartySize, domain.MaxPartySize)
	}

	if req.SpecialRequests != nil && len(*req.SpecialRequests) > domain.MaxSpecialRequestsLength {
		return fmt.Errorf("%w: special requests must not exceed %d characters",
			ErrInvalidInput, domain.MaxSpecialRequestsLength)
	}

	if req.UserID != nil {
		if *req.UserID <= 0 {
			return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
		}
		// Владелец ровно один: контакты гостя несовместимы с user ID.
		// Без этой проверки вставка упала бы на bookings_owner_check.
		if req.GuestName != nil || req.GuestEmail != nil || req.GuestPhone != nil {
			return fmt.Errorf("%w: guest contact must not be set for a registered user", ErrInvalidInput)
		}
		return nil
	}

	// Гостевая бронь: все три контакта обязательны
	if isBlank(req.GuestName) || isBlank(req.GuestEmail) || isBlank(req.GuestPhone) {
		return ErrGuestContactRequired
	}

	return nil
}

// validateDate проверяет, что дата не в прошлом (сегодня допустимо)
func validateDate(bookingDate, now time.Time) error {
	dateOnly := time.Date(bookingDate.Year(), bookingDate.Month(), bookingDate.Day(), 0, 0, 0, 0, bookingDate.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if dateOnly.Before(nowOnly) {
		return ErrInvalidDate
	}
	return nil
}

func isBlank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}
