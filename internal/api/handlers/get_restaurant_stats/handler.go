package get_restaurant_stats

import (
	"errors"
	"net/http"
	"time"

	"github.com/rpires71/PK-BookingService/internal/api/handlers"
	"github.com/rpires71/PK-BookingService/internal/api/middleware"
	"github.com/rpires71/PK-BookingService/internal/domain"
	"github.com/rpires71/PK-BookingService/internal/service/reports"
	"github.com/rpires71/PK-BookingService/internal/service/reports/models"
)

const (
	msgInvalidDate  = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidRange = "некорректный период отчёта"
	msgForbidden    = "доступ запрещен"
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

// Handle GET /api/v1/restaurant/stats?startDate=YYYY-MM-DD&endDate=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	requester, _ := middleware.GetRequester(r.Context())
	query := r.URL.Query()

	req := &models.StatsRequest{Requester: requester}

	if raw := query.Get("startDate"); raw != "" {
		date, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /restaurant/stats - Invalid start date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.StartDate = &date
	}
	if raw := query.Get("endDate"); raw != "" {
		date, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /restaurant/stats - Invalid end date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.EndDate = &date
	}

	result, err := h.service.GetStats(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, reports.ErrAccessDenied):
			h.logger.Warn("GET /restaurant/stats - Access denied")
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, reports.ErrInvalidInput):
			h.logger.Warn("GET /restaurant/stats - Invalid range: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRange)

		default:
			h.logger.Error("GET /restaurant/stats - Failed to get stats: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /restaurant/stats - Stats retrieved")
	handlers.RespondJSON(w, http.StatusOK, result)
}
