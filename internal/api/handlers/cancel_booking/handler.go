package cancel_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/rpires71/PK-BookingService/internal/api/handlers"
	"github.com/rpires71/PK-BookingService/internal/api/middleware"
	cancelBooking "github.com/rpires71/PK-BookingService/internal/usecase/cancel_booking"
)

const (
	msgNotFound         = "бронирование не найдено"
	msgForbidden        = "доступ запрещен"
	msgAlreadyCancelled = "бронирование уже отменено"
	msgNotCancellable   = "бронирование не может быть отменено"
	msgPastBooking      = "дата бронирования уже прошла"
)

type Handler struct {
	useCase CancelBookingUseCase
	logger  Logger
}

func NewHandler(useCase CancelBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{reference}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reference := mux.Vars(r)["reference"]

	requester, _ := middleware.GetRequester(r.Context())

	result, err := h.useCase.Execute(r.Context(), &cancelBooking.Request{
		Reference: reference,
		Requester: requester,
	})
	if err != nil {
		switch {
		// Повторная отмена идемпотентна: 200 с предупреждением
		case errors.Is(err, cancelBooking.ErrAlreadyCancelled) && result != nil:
			h.logger.Info("PATCH /bookings/{reference}/cancel - Already cancelled: reference=%s", reference)
			handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result, msgAlreadyCancelled))

		case errors.Is(err, cancelBooking.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{reference}/cancel - Booking not found: reference=%s", reference)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, cancelBooking.ErrAccessDenied):
			h.logger.Warn("PATCH /bookings/{reference}/cancel - Access denied: reference=%s", reference)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, cancelBooking.ErrPastBooking):
			h.logger.Warn("PATCH /bookings/{reference}/cancel - Past booking: reference=%s", reference)
			handlers.RespondConflict(w, msgPastBooking)

		case errors.Is(err, cancelBooking.ErrNotCancellable):
			h.logger.Warn("PATCH /bookings/{reference}/cancel - Not cancellable: reference=%s", reference)
			handlers.RespondConflict(w, msgNotCancellable)

		case errors.Is(err, cancelBooking.ErrInvalidInput):
			h.logger.Warn("PATCH /bookings/{reference}/cancel - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgNotFound)

		default:
			h.logger.Error("PATCH /bookings/{reference}/cancel - Failed to cancel booking: reference=%s, error=%v",
				reference, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{reference}/cancel - Booking cancelled successfully: reference=%s", reference)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result, ""))
}
