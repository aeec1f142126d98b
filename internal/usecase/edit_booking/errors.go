package edit_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("edit_booking: booking not found")

	// ErrAccessDenied возвращается, когда заявитель не вправе менять бронь
	ErrAccessDenied = errors.New("edit_booking: access denied")

	// ErrNotEditable возвращается, когда бронь уже нельзя менять
	// (отменена, завершена или несостоявшаяся)
	ErrNotEditable = errors.New("edit_booking: booking can no longer be edited")

	// ErrPastBooking возвращается при попытке изменить прошедшую бронь
	ErrPastBooking = errors.New("edit_booking: booking date has passed")

	// ErrSlotNotFound возвращается, когда новый слот времени не найден
	ErrSlotNotFound = errors.New("edit_booking: time slot not found")

	// ErrSlotInactive возвращается, когда новый слот отключён персоналом
	ErrSlotInactive = errors.New("edit_booking: time slot is not active")

	// ErrInvalidDate возвращается при переносе брони на прошедшую дату
	ErrInvalidDate = errors.New("edit_booking: invalid booking date")

	// ErrDuplicateBooking возвращается, когда у пользователя уже есть бронь
	// на целевой слот и дату
	ErrDuplicateBooking = errors.New("edit_booking: user already has a booking for this slot")

	// ErrTransient возвращается, когда транзакция не прошла из-за конкуренции
	// и запрос стоит повторить
	ErrTransient = errors.New("edit_booking: temporary conflict, please retry")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("edit_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("edit_booking: internal error")
)
