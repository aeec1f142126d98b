package create_booking

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слот времени не найден
	ErrSlotNotFound = errors.New("create_booking: time slot not found")

	// ErrSlotInactive возвращается, когда слот отключён персоналом
	ErrSlotInactive = errors.New("create_booking: time slot is not active")

	// ErrInvalidDate возвращается при попытке бронирования на прошедшую дату
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrGuestContactRequired возвращается, когда гостевая бронь без полных контактов
	ErrGuestContactRequired = errors.New("create_booking: guest name, email and phone are required")

	// ErrDuplicateBooking возвращается, когда у пользователя уже есть бронь
	// на этот слот и дату
	ErrDuplicateBooking = errors.New("create_booking: user already has a booking for this slot")

	// ErrTransient возвращается, когда транзакция не прошла из-за конкуренции
	// и запрос стоит повторить
	ErrTransient = errors.New("create_booking: temporary conflict, please retry")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
