package get_restaurant_bookings

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/rpires71/PK-BookingService/internal/api/handlers"
	"github.com/rpires71/PK-BookingService/internal/api/middleware"
	"github.com/rpires71/PK-BookingService/internal/domain"
	"github.com/rpires71/PK-BookingService/internal/service/reports"
	"github.com/rpires71/PK-BookingService/internal/service/reports/models"
)

const (
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidSlotID = "некорректный ID слота"
	msgInvalidFilter = "некорректные параметры фильтра"
	msgForbidden     = "доступ запрещен"
)

type Handler struct {
	service ReportService
	logger  Logger
}

func NewHandler(service ReportService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/restaurant/bookings
// Фильтры: date, startDate, endDate, timeslotId, status, search, includeInactive
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	requester, _ := middleware.GetRequester(r.Context())
	query := r.URL.Query()

	req := &models.BookingsReportRequest{
		Requester:       requester,
		IncludeInactive: query.Get("includeInactive") == "true",
	}

	// date - сокращение для startDate=endDate
	if raw := query.Get("date"); raw != "" {
		date, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /restaurant/bookings - Invalid date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.StartDate = &date
		req.EndDate = &date
	} else {
		if raw := query.Get("startDate"); raw != "" {
			date, err := time.Parse(domain.DateFormat, raw)
			if err != nil {
				h.logger.Warn("GET /restaurant/bookings - Invalid start date: %v", err)
				handlers.RespondBadRequest(w, msgInvalidDate)
				return
			}
			req.StartDate = &date
		}
		if raw := query.Get("endDate"); raw != "" {
			date, err := time.Parse(domain.DateFormat, raw)
			if err != nil {
				h.logger.Warn("GET /restaurant/bookings - Invalid end date: %v", err)
				handlers.RespondBadRequest(w, msgInvalidDate)
				return
			}
			req.EndDate = &date
		}
	}

	if raw := query.Get("timeslotId"); raw != "" {
		slotID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.logger.Warn("GET /restaurant/bookings - Invalid timeslot ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidSlotID)
			return
		}
		req.TimeSlotID = &slotID
	}

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}
	if search := query.Get("search"); search != "" {
		req.Search = &search
	}

	result, err := h.service.GetBookings(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, reports.ErrAccessDenied):
			h.logger.Warn("GET /restaurant/bookings - Access denied")
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, reports.ErrInvalidInput):
			h.logger.Warn("GET /restaurant/bookings - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /restaurant/bookings - Failed to get bookings: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /restaurant/bookings - Retrieved %d bookings", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
