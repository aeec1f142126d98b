package get_timeslots

import (
	"errors"
	"net/http"
	"time"

	"github.com/rpires71/PK-BookingService/internal/api/handlers"
	"github.com/rpires71/PK-BookingService/internal/api/middleware"
	"github.com/rpires71/PK-BookingService/internal/domain"
	getAvailability "github.com/rpires71/PK-BookingService/internal/usecase/get_availability"
)

const (
	msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgPastDate    = "дата уже прошла"
)

type Handler struct {
	service      TimeSlotService
	availability AvailabilityUseCase
	logger       Logger
}

func NewHandler(service TimeSlotService, availability AvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		service:      service,
		availability: availability,
		logger:       logger,
	}
}

// Handle GET /api/v1/timeslots
// Без параметров - справочник слотов. С ?date=YYYY-MM-DD - слоты с остатком
// мест на дату. Гости видят только активные слоты; персонал
// с includeInactive=true - все.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if rawDate := r.URL.Query().Get("date"); rawDate != "" {
		h.handleForDate(w, r, rawDate)
		return
	}

	onlyActive := true
	if r.URL.Query().Get("includeInactive") == "true" {
		if requester, ok := middleware.GetRequester(r.Context()); ok && requester.IsStaff {
			onlyActive = false
		}
	}

	result, err := h.service.List(r.Context(), onlyActive)
	if err != nil {
		h.logger.Error("GET /timeslots - Failed to list time slots: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /timeslots - Retrieved %d time slots", len(result.TimeSlots))
	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) handleForDate(w http.ResponseWriter, r *http.Request, rawDate string) {
	date, err := time.Parse(domain.DateFormat, rawDate)
	if err != nil {
		h.logger.Warn("GET /timeslots - Invalid date: %s", rawDate)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.availability.Execute(r.Context(), &getAvailability.Request{Date: date})
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrInvalidDate):
			h.logger.Warn("GET /timeslots - Past date: %s", rawDate)
			handlers.RespondBadRequest(w, msgPastDate)

		case errors.Is(err, getAvailability.ErrInvalidInput):
			h.logger.Warn("GET /timeslots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /timeslots - Failed to get availability for %s: %v", rawDate, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /timeslots - Retrieved %d time slots for %s", len(result.Slots), rawDate)
	handlers.RespondJSON(w, http.StatusOK, FromAvailabilityResponse(result))
}
