package mailer

import (
	"fmt"

	gomail "gopkg.in/gomail.v2"
)

// Client SMTP клиент для отправки писем о событиях бронирования.
// Отправка синхронная; асинхронность и обработка сбоев — забота
// сервиса уведомлений (notifier).
type Client struct {
	dialer *gomail.Dialer
	from   string
}

// NewClient создает новый SMTP клиент
func NewClient(host string, port int, username, password, from string) *Client {
	return &Client{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
	}
}

// Send отправляет письмо по событию бронирования
func (c *Client) Send(event BookingEvent) error {
	if event.Recipient == "" {
		return ErrNoRecipient
	}

	m := gomail.NewMessage()
	m.SetHeader("From", c.from)
	m.SetHeader("To", event.Recipient)
	m.SetHeader("Subject", subject(event))
	m.SetBody("text/plain", body(event))

	if err := c.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}

	return nil
}

func subject(event BookingEvent) string {
	switch event.Kind {
	case EventUpdated:
		return fmt.Sprintf("Booking Updated - %s - Portuguese Kitchen", event.Reference)
	case EventCancelled:
		return fmt.Sprintf("Booking Cancelled - %s - Portuguese Kitchen", event.Reference)
	default:
		return fmt.Sprintf("Booking Confirmation - %s - Portuguese Kitchen", event.Reference)
	}
}

func body(event BookingEvent) string {
	name := event.RecipientName
	if name == "" {
		name = "Guest"
	}

	switch event.Kind {
	case EventCancelled:
		return fmt.Sprintf(
			"Dear %s,\n\nYour booking %s for %s at %s has been cancelled.\n\nPortuguese Kitchen",
			name, event.Reference, event.BookingDate, event.SlotTime)
	case EventUpdated:
		return fmt.Sprintf(
			"Dear %s,\n\nYour booking %s has been updated: %s at %s, party of %d.\n\nPortuguese Kitchen",
			name, event.Reference, event.BookingDate, event.SlotTime, event.PartySize)
	default:
		return fmt.Sprintf(
			"Dear %s,\n\nThank you for your reservation. Your booking reference is %s: %s at %s, party of %d.\n\nPortuguese Kitchen",
			name, event.Reference, event.BookingDate, event.SlotTime, event.PartySize)
	}
}
