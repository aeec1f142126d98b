package domain

// Requester идентичность инициатора операции, полученная от identity provider.
// UserID == nil означает неаутентифицированного гостя.
type Requester struct {
	UserID  *int64
	IsStaff bool
}

// IsRegistered returns true if the requester is an authenticated user
func (r Requester) IsRegistered() bool {
	return r.UserID != nil
}

// CanMutate проверяет право инициатора изменять бронирование.
// Персонал может изменять любое бронирование. Зарегистрированное бронирование
// изменяет только его владелец. Гостевое бронирование изменяется по знанию
// номера брони: номер и есть credential гостя.
func (r Requester) CanMutate(b *Booking) bool {
	if r.IsStaff {
		return true
	}
	if b.IsGuestBooking() {
		// Номер брони — единственный credential гостя
		return true
	}
	return r.IsRegistered() && b.IsOwnedBy(*r.UserID)
}
