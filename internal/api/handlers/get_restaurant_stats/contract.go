package get_restaurant_stats

import (
	"context"

	"github.com/rpires71/PK-BookingService/internal/service/reports/models"
)

type ReportService interface {
	GetStats(ctx context.Context, req *models.StatsRequest) (*models.StatsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
