package reports

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных параметрах отчёта
	ErrInvalidInput = errors.New("invalid input")

	// ErrAccessDenied возвращается, когда отчёт запрошен не персоналом
	ErrAccessDenied = errors.New("access denied")

	// ErrInternal внутренняя ошибка сервиса
	ErrInternal = errors.New("internal service error")
)
