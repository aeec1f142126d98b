package timeslots

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слот времени не найден
	ErrSlotNotFound = errors.New("time slot not found")

	// ErrDuplicateTime возвращается, когда слот на это время уже существует
	ErrDuplicateTime = errors.New("time slot already exists")

	// ErrSlotInUse возвращается при попытке удалить слот, на который есть брони
	ErrSlotInUse = errors.New("time slot has bookings")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input")

	// ErrAccessDenied возвращается, когда операция доступна только персоналу
	ErrAccessDenied = errors.New("access denied")

	// ErrInternal внутренняя ошибка сервиса
	ErrInternal = errors.New("internal service error")
)
