package booking

import (
	"errors"

	"github.com/lib/pq"
)

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrDuplicateReference возвращается при коллизии номера бронирования.
	// Вызывающий код должен сгенерировать новый номер и повторить вставку.
	ErrDuplicateReference = errors.New("booking.repository: reference already exists")

	// ErrDuplicateUserBooking возвращается, когда пользователь уже имеет
	// бронирование на этот слот и дату
	ErrDuplicateUserBooking = errors.New("booking.repository: user already booked this slot on this date")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)

// Имена constraint'ов из migrations/001_init.sql
const (
	constraintReference       = "bookings_reference_key"
	constraintUserSlotPerDate = "bookings_user_slot_date_uniq"
)

const pgUniqueViolation = "23505"

// mapConstraintError переводит нарушение unique constraint в sentinel ошибку репозитория.
// Для остальных ошибок возвращает nil (вызывающий код оборачивает их обычным способом).
func mapConstraintError(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) || string(pqErr.Code) != pgUniqueViolation {
		return nil
	}

	switch pqErr.Constraint {
	case constraintReference:
		return ErrDuplicateReference
	case constraintUserSlotPerDate:
		return ErrDuplicateUserBooking
	default:
		return nil
	}
}
