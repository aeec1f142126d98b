package create_booking

import (
	"time"
)

// Request модель запроса на создание бронирования.
// Владелец - либо зарегистрированный пользователь (UserID), либо гость
// с полными контактами. Ровно одно из двух.
type Request struct {
	UserID     *int64  // ID пользователя (nil для гостевой брони)
	GuestName  *string // Имя гостя
	GuestEmail *string // Email гостя
	GuestPhone *string // Телефон гостя

	TimeSlotID      int64     // ID слота времени
	Date            time.Time // Дата бронирования (без времени)
	PartySize       int       // Число гостей, 1-8
	SpecialRequests *string   // Пожелания (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID          int64     // ID созданного бронирования
	Reference   string    // Клиентский номер бронирования
	UserID      *int64    // ID пользователя (nil для гостя)
	GuestName   *string   // Имя гостя
	TimeSlotID  int64     // ID слота
	SlotTime    string    // Время слота, "HH:MM"
	BookingDate time.Time // Дата бронирования
	PartySize   int       // Число гостей
	Status      string    // Статус бронирования

	SpecialRequests *string // Пожелания

	CreatedAt time.Time // Время создания
}
