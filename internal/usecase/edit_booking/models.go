package edit_booking

import (
	"time"

	"github.com/rpires71/PK-BookingService/internal/domain"
)

// Request модель запроса на изменение бронирования.
// Поля-указатели: nil означает "не менять".
type Request struct {
	Reference string           // Клиентский номер брони
	Requester domain.Requester // Кто меняет бронь

	TimeSlotID      *int64     // Новый слот времени
	Date            *time.Time // Новая дата
	PartySize       *int       // Новое число гостей
	SpecialRequests *string    // Новые пожелания
}

// Response модель ответа с обновлённым бронированием
type Response struct {
	ID          int64     // ID бронирования
	Reference   string    // Клиентский номер (не меняется)
	TimeSlotID  int64     // ID слота
	SlotTime    string    // Время слота, "HH:MM"
	BookingDate time.Time // Дата бронирования
	PartySize   int       // Число гостей
	Status      string    // Статус бронирования

	SpecialRequests *string // Пожелания

	UpdatedAt time.Time // Время обновления
}
