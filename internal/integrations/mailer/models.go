package mailer

// EventKind тип события бронирования для письма
type EventKind string

const (
	EventConfirmed EventKind = "confirmed"
	EventUpdated   EventKind = "updated"
	EventCancelled EventKind = "cancelled"
)

// BookingEvent payload уведомления о событии бронирования
type BookingEvent struct {
	Kind          EventKind
	Reference     string
	Recipient     string // email получателя
	RecipientName string
	BookingDate   string // YYYY-MM-DD
	SlotTime      string // HH:MM
	PartySize     int
}
