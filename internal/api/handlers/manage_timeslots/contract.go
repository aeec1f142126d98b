package manage_timeslots

import (
	"context"

	"github.com/rpires71/PK-BookingService/internal/domain"
	"github.com/rpires71/PK-BookingService/internal/service/timeslots/models"
)

type TimeSlotService interface {
	Create(ctx context.Context, req *models.CreateTimeSlotRequest) (*models.TimeSlotResponse, error)
	GetByID(ctx context.Context, id int64) (*models.TimeSlotResponse, error)
	Update(ctx context.Context, id int64, req *models.UpdateTimeSlotRequest) (*models.TimeSlotResponse, error)
	Delete(ctx context.Context, requester domain.Requester, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
