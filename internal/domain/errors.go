package domain

import "fmt"

// CapacityError возвращается, когда запрошенное число гостей не помещается
// в оставшуюся вместимость слота. Available — сколько мест ещё свободно
// (может быть отрицательным при ручном овербукинге персоналом; вызывающий
// код трактует значения <= 0 как "мест нет").
type CapacityError struct {
	Available int
}

// Error implements the error interface
func (e *CapacityError) Error() string {
	return fmt.Sprintf("insufficient capacity: %d seats remaining", e.Available)
}

// NewCapacityError создает CapacityError с указанием свободных мест
func NewCapacityError(available int) *CapacityError {
	return &CapacityError{Available: available}
}
