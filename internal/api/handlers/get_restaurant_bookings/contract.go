package get_restaurant_bookings

import (
	"context"

	"github.com/rpires71/PK-BookingService/internal/service/reports/models"
)

type ReportService interface {
	GetBookings(ctx context.Context, req *models.BookingsReportRequest) (*models.BookingsReportResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
