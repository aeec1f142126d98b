package get_timeslots

import (
	"context"

	"github.com/rpires71/PK-BookingService/internal/service/timeslots/models"
	getAvailability "github.com/rpires71/PK-BookingService/internal/usecase/get_availability"
)

type TimeSlotService interface {
	List(ctx context.Context, onlyActive bool) (*models.TimeSlotListResponse, error)
}

type AvailabilityUseCase interface {
	Execute(ctx context.Context, req *getAvailability.Request) (*getAvailability.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
