package mailer

import "errors"

var (
	// ErrNoRecipient возвращается, когда у события нет email получателя
	ErrNoRecipient = errors.New("mailer: event has no recipient address")

	// ErrSendFailed возвращается при ошибке отправки через SMTP шлюз
	ErrSendFailed = errors.New("mailer: failed to send message")
)
