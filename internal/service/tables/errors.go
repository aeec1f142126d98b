package tables

import "errors"

var (
	// ErrTableNotFound возвращается, когда столик не найден
	ErrTableNotFound = errors.New("table not found")

	// ErrDuplicateNumber возвращается, когда номер столика уже занят
	ErrDuplicateNumber = errors.New("table number already exists")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input")

	// ErrAccessDenied возвращается, когда операция доступна только персоналу
	ErrAccessDenied = errors.New("access denied")

	// ErrInternal внутренняя ошибка сервиса
	ErrInternal = errors.New("internal service error")
)
