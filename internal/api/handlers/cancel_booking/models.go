package cancel_booking

import (
	"time"

	cancelBooking "github.com/rpires71/PK-BookingService/internal/usecase/cancel_booking"
)

// CancelBookingResponse HTTP response model.
// Warning заполняется при повторной отмене: операция идемпотентна.
type CancelBookingResponse struct {
	ID          int64  `json:"id"`
	Reference   string `json:"reference"`
	Status      string `json:"status"`
	CancelledAt string `json:"cancelledAt,omitempty"`
	Warning     string `json:"warning,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *cancelBooking.Response, warning string) *CancelBookingResponse {
	out := &CancelBookingResponse{
		ID:        resp.ID,
		Reference: resp.Reference,
		Status:    resp.Status,
		Warning:   warning,
	}
	if !resp.CancelledAt.IsZero() {
		out.CancelledAt = resp.CancelledAt.Format(time.RFC3339)
	}
	return out
}
