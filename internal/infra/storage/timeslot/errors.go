package timeslot

import "errors"

var (
	// ErrSlotNotFound возвращается, когда временной слот не найден
	ErrSlotNotFound = errors.New("timeslot.repository: time slot not found")

	// ErrSlotInUse возвращается при попытке удалить слот, на который
	// ссылаются бронирования (FK с ON DELETE RESTRICT)
	ErrSlotInUse = errors.New("timeslot.repository: time slot is referenced by bookings")

	// ErrDuplicateTime возвращается при попытке создать второй слот на то же время
	ErrDuplicateTime = errors.New("timeslot.repository: time slot with this time already exists")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("timeslot.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("timeslot.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("timeslot.repository: failed to scan row")
)
