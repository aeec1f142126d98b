package domain

import (
	"time"

	"github.com/rpires71/PK-BookingService/pkg/types"
)

// TimeSlot represents a recurring daily booking window.
// Слот задаёт только время дня и переиспользуется на всех датах.
type TimeSlot struct {
	ID   int64
	Time types.TimeString

	// MaxCapacity лимит гостей для слота. nil означает дефолт DefaultSlotCapacity.
	MaxCapacity *int

	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// EffectiveCapacity возвращает действующий лимит гостей слота.
// Единственное место, где применяется дефолт DefaultSlotCapacity.
func (s *TimeSlot) EffectiveCapacity() int {
	if s.MaxCapacity != nil {
		return *s.MaxCapacity
	}
	return DefaultSlotCapacity
}
