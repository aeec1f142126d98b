package cancel_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("cancel_booking: booking not found")

	// ErrAccessDenied возвращается, когда заявитель не вправе отменить бронь
	ErrAccessDenied = errors.New("cancel_booking: access denied")

	// ErrAlreadyCancelled возвращается при повторной отмене.
	// Это не сбой: отмена идемпотентна, вызывающий слой отдаёт предупреждение.
	ErrAlreadyCancelled = errors.New("cancel_booking: booking is already cancelled")

	// ErrNotCancellable возвращается, когда бронь в терминальном статусе
	// (завершена или несостоявшаяся) и отменять уже нечего
	ErrNotCancellable = errors.New("cancel_booking: booking can no longer be cancelled")

	// ErrPastBooking возвращается при попытке отменить прошедшую бронь
	ErrPastBooking = errors.New("cancel_booking: booking date has passed")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("cancel_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("cancel_booking: internal error")
)
