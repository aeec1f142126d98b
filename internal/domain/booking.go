package domain

import (
	"time"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "Pending"
	StatusConfirmed BookingStatus = "Confirmed"
	StatusSeated    BookingStatus = "Seated"
	StatusCompleted BookingStatus = "Completed"
	StatusCancelled BookingStatus = "Cancelled"
	StatusNoShow    BookingStatus = "No-Show"
)

// Booking represents a table reservation in the system
type Booking struct {
	ID int64

	// Владелец: либо зарегистрированный пользователь, либо гость с контактами.
	// Ровно одно из двух должно быть заполнено.
	UserID     *int64
	GuestName  *string
	GuestEmail *string
	GuestPhone *string

	TableID     *int64 // столик назначается персоналом после создания
	TimeSlotID  int64
	BookingDate time.Time
	PartySize   int
	Status      BookingStatus

	// Reference клиентский номер бронирования, 8 символов A-Z0-9.
	// Генерируется один раз при создании и не меняется.
	Reference string

	SpecialRequests *string

	CancelledAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// transitions задаёт допустимые переходы статусов.
// Completed, Cancelled и No-Show — терминальные состояния.
var transitions = map[BookingStatus][]BookingStatus{
	StatusPending:   {StatusConfirmed, StatusSeated, StatusCancelled, StatusNoShow},
	StatusConfirmed: {StatusSeated, StatusCancelled, StatusNoShow},
	StatusSeated:    {StatusCompleted, StatusCancelled, StatusNoShow},
	StatusCompleted: {},
	StatusCancelled: {},
	StatusNoShow:    {},
}

// CanTransitionTo returns true if the booking may legally move to the target status
func (b *Booking) CanTransitionTo(target BookingStatus) bool {
	for _, allowed := range transitions[b.Status] {
		if allowed == target {
			return true
		}
	}
	return false
}

// IsActive returns true if the booking still counts against slot capacity
func (b *Booking) IsActive() bool {
	return b.Status == StatusPending ||
		b.Status == StatusConfirmed ||
		b.Status == StatusSeated
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// IsTerminal returns true if no further transitions are possible
func (b *Booking) IsTerminal() bool {
	return len(transitions[b.Status]) == 0
}

// CanBeCancelled returns true if the booking can still be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.IsActive()
}

// CanBeEdited returns true if the booking can still be modified.
// Любая активная бронь редактируема; правки заново проходят проверку
// вместимости.
func (b *Booking) CanBeEdited() bool {
	return b.IsActive()
}

// IsGuestBooking returns true if the booking belongs to an unregistered guest
func (b *Booking) IsGuestBooking() bool {
	return b.UserID == nil
}

// IsOwnedBy returns true if the booking belongs to the given registered user
func (b *Booking) IsOwnedBy(userID int64) bool {
	return b.UserID != nil && *b.UserID == userID
}

// IsPast returns true if the booking date has already elapsed relative to now
func (b *Booking) IsPast(now time.Time) bool {
	bookingDay := time.Date(b.BookingDate.Year(), b.BookingDate.Month(), b.BookingDate.Day(), 0, 0, 0, 0, b.BookingDate.Location())
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return bookingDay.Before(today)
}

// BookingsFilter фильтр для выборки бронирований ресторана
type BookingsFilter struct {
	TimeSlotID      *int64         // Фильтр по слоту (опционально)
	StartDate       *time.Time     // Начало периода (опционально)
	EndDate         *time.Time     // Конец периода (опционально)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	Search          *string        // Поиск по имени гостя или номеру брони (подстрока, без учёта регистра)
	IncludeInactive bool           // Включать ли неактивные бронирования (отменённые, no-show, завершённые)
}
