package create_booking

import (
	"errors"
	"net/http"

	"github.com/rpires71/PK-BookingService/internal/api/handlers"
	"github.com/rpires71/PK-BookingService/internal/api/middleware"
	"github.com/rpires71/PK-BookingService/internal/domain"
	createBooking "github.com/rpires71/PK-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidDate          = "некорректный формат даты бронирования, ожидается YYYY-MM-DD"
	msgSlotNotFound         = "слот времени не найден"
	msgSlotInactive         = "слот времени недоступен для бронирования"
	msgInvalidBookingDate   = "дата бронирования уже прошла"
	msgGuestContactRequired = "для гостевой брони нужны имя, email и телефон"
	msgDuplicateBooking     = "у вас уже есть бронь на этот слот в выбранную дату"
	msgInsufficientCapacity = "недостаточно мест в выбранном слоте"
	msgTransient            = "не удалось обработать запрос из-за наплыва бронирований, повторите попытку"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Владелец определяется заголовками; их отсутствие означает гостевую бронь
	var userID *int64
	if id, ok := middleware.GetUserID(r.Context()); ok {
		userID = &id
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var capacityErr *domain.CapacityError
		switch {
		case errors.As(err, &capacityErr):
			h.logger.Warn("POST /bookings - Insufficient capacity: slot_id=%d, available=%d",
				req.TimeSlotID, capacityErr.Available)
			handlers.RespondCapacityError(w, msgInsufficientCapacity, capacityErr.Available)

		case errors.Is(err, createBooking.ErrSlotNotFound):
			h.logger.Warn("POST /bookings - Slot not found: slot_id=%d", req.TimeSlotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, createBooking.ErrSlotInactive):
			h.logger.Warn("POST /bookings - Slot inactive: slot_id=%d", req.TimeSlotID)
			handlers.RespondConflict(w, msgSlotInactive)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Invalid booking date: date=%s", req.BookingDate)
			handlers.RespondBadRequest(w, msgInvalidBookingDate)

		case errors.Is(err, createBooking.ErrGuestContactRequired):
			h.logger.Warn("POST /bookings - Incomplete guest contact")
			handlers.RespondBadRequest(w, msgGuestContactRequired)

		case errors.Is(err, createBooking.ErrDuplicateBooking):
			h.logger.Warn("POST /bookings - Duplicate booking: slot_id=%d, date=%s",
				req.TimeSlotID, req.BookingDate)
			handlers.RespondConflict(w, msgDuplicateBooking)

		case errors.Is(err, createBooking.ErrTransient):
			h.logger.Warn("POST /bookings - Transient conflict: slot_id=%d, date=%s",
				req.TimeSlotID, req.BookingDate)
			handlers.RespondServiceUnavailable(w, msgTransient)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: slot_id=%d, error=%v",
				req.TimeSlotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, reference=%s",
		result.ID, result.Reference)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
