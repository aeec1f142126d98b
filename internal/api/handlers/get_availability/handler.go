package get_availability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/rpires71/PK-BookingService/internal/api/handlers"
	"github.com/rpires71/PK-BookingService/internal/domain"
	getAvailability "github.com/rpires71/PK-BookingService/internal/usecase/get_availability"
)

const (
	msgMissingDate      = "не указана дата, ожидается параметр date=YYYY-MM-DD"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgPastDate         = "дата уже прошла"
	msgInvalidPartySize = "некорректное число гостей"
	msgInvalidTimeSlot  = "некорректный ID слота времени"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability?date=YYYY-MM-DD&timeslotId=N&partySize=N
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	dateStr := query.Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /availability - Missing date parameter")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /availability - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	req := &getAvailability.Request{Date: date}

	if raw := query.Get("timeslotId"); raw != "" {
		timeSlotID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.logger.Warn("GET /availability - Invalid timeslot id: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)
			return
		}
		req.TimeSlotID = &timeSlotID
	}

	if raw := query.Get("partySize"); raw != "" {
		partySize, err := strconv.Atoi(raw)
		if err != nil {
			h.logger.Warn("GET /availability - Invalid party size: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPartySize)
			return
		}
		req.PartySize = &partySize
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrInvalidDate):
			h.logger.Warn("GET /availability - Past date: date=%s", dateStr)
			handlers.RespondBadRequest(w, msgPastDate)

		case errors.Is(err, getAvailability.ErrInvalidInput):
			h.logger.Warn("GET /availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPartySize)

		default:
			h.logger.Error("GET /availability - Failed to get availability: date=%s, error=%v", dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability - Availability retrieved: date=%s, slots=%d", dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
