package get_availability

import "time"

// Request модель запроса доступности слотов на дату
type Request struct {
	Date       time.Time // Дата (без времени)
	TimeSlotID *int64    // Ограничить ответ одним слотом (опционально)
	PartySize  *int      // Группа, под которую проверяется доступность (опционально)
}

// Slot доступность одного слота времени на дату
type Slot struct {
	TimeSlotID int64  // ID слота
	Time       string // Время слота, "HH:MM"
	Capacity   int    // Действующий лимит гостей
	Booked     int    // Суммарно гостей в активных бронях
	Remaining  int    // Свободные места; может быть <= 0 при снижении лимита
	Available  bool   // Поместится ли запрошенная группа
}

// Response модель ответа с доступностью всех активных слотов
type Response struct {
	Date  time.Time // Запрошенная дата
	Slots []Slot    // Слоты, отсортированные по времени
}
