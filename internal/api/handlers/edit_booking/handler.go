package edit_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/rpires71/PK-BookingService/internal/api/handlers"
	"github.com/rpires71/PK-BookingService/internal/api/middleware"
	"github.com/rpires71/PK-BookingService/internal/domain"
	editBooking "github.com/rpires71/PK-BookingService/internal/usecase/edit_booking"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidDate          = "некорректный формат даты бронирования, ожидается YYYY-MM-DD"
	msgNotFound             = "бронирование не найдено"
	msgForbidden            = "доступ запрещен"
	msgNotEditable          = "бронирование уже нельзя изменить"
	msgPastBooking          = "дата бронирования уже прошла"
	msgSlotNotFound         = "слот времени не найден"
	msgSlotInactive         = "слот времени недоступен для бронирования"
	msgDuplicateBooking     = "у вас уже есть бронь на этот слот в выбранную дату"
	msgInsufficientCapacity = "недостаточно мест в выбранном слоте"
	msgTransient            = "не удалось обработать запрос из-за наплыва бронирований, повторите попытку"
)

type Handler struct {
	useCase EditBookingUseCase
	logger  Logger
}

func NewHandler(useCase EditBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{reference}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reference := mux.Vars(r)["reference"]

	var req EditBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/{reference} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	requester, _ := middleware.GetRequester(r.Context())

	useCaseReq, err := req.ToUseCaseRequest(reference, requester)
	if err != nil {
		h.logger.Warn("PATCH /bookings/{reference} - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var capacityErr *domain.CapacityError
		switch {
		case errors.As(err, &capacityErr):
			h.logger.Warn("PATCH /bookings/{reference} - Insufficient capacity: reference=%s, available=%d",
				reference, capacityErr.Available)
			handlers.RespondCapacityError(w, msgInsufficientCapacity, capacityErr.Available)

		case errors.Is(err, editBooking.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{reference} - Booking not found: reference=%s", reference)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, editBooking.ErrAccessDenied):
			h.logger.Warn("PATCH /bookings/{reference} - Access denied: reference=%s", reference)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, editBooking.ErrNotEditable):
			h.logger.Warn("PATCH /bookings/{reference} - Not editable: reference=%s", reference)
			handlers.RespondConflict(w, msgNotEditable)

		case errors.Is(err, editBooking.ErrPastBooking):
			h.logger.Warn("PATCH /bookings/{reference} - Past booking: reference=%s", reference)
			handlers.RespondConflict(w, msgPastBooking)

		case errors.Is(err, editBooking.ErrSlotNotFound):
			h.logger.Warn("PATCH /bookings/{reference} - Slot not found: reference=%s", reference)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, editBooking.ErrSlotInactive):
			h.logger.Warn("PATCH /bookings/{reference} - Slot inactive: reference=%s", reference)
			handlers.RespondConflict(w, msgSlotInactive)

		case errors.Is(err, editBooking.ErrInvalidDate):
			h.logger.Warn("PATCH /bookings/{reference} - Invalid target date: reference=%s", reference)
			handlers.RespondBadRequest(w, msgPastBooking)

		case errors.Is(err, editBooking.ErrDuplicateBooking):
			h.logger.Warn("PATCH /bookings/{reference} - Duplicate booking: reference=%s", reference)
			handlers.RespondConflict(w, msgDuplicateBooking)

		case errors.Is(err, editBooking.ErrTransient):
			h.logger.Warn("PATCH /bookings/{reference} - Transient conflict: reference=%s", reference)
			handlers.RespondServiceUnavailable(w, msgTransient)

		case errors.Is(err, editBooking.ErrInvalidInput):
			h.logger.Warn("PATCH /bookings/{reference} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("PATCH /bookings/{reference} - Failed to edit booking: reference=%s, error=%v",
				reference, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{reference} - Booking updated successfully: reference=%s", reference)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
