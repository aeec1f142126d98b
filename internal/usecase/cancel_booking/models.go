package cancel_booking

import (
	"time"

	"github.com/rpires71/PK-BookingService/internal/domain"
)

// Request модель запроса на отмену бронирования
type Request struct {
	Reference string           // Клиентский номер брони
	Requester domain.Requester // Кто отменяет бронь
}

// Response модель ответа с отменённым бронированием
type Response struct {
	ID          int64     // ID бронирования
	Reference   string    // Клиентский номер
	Status      string    // Всегда Cancelled
	CancelledAt time.Time // Время отмены
}
