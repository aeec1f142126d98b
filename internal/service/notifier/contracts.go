package notifier

import (
	"context"

	"github.com/rpires71/PK-BookingService/internal/integrations/mailer"
	"github.com/rpires71/PK-BookingService/internal/integrations/userservice"
)

// MailClient интерфейс SMTP клиента
type MailClient interface {
	Send(event mailer.BookingEvent) error
}

// UserServiceClient интерфейс клиента сервиса аккаунтов
type UserServiceClient interface {
	GetUserWithGracefulDegradation(ctx context.Context, userID int64) (*userservice.User, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
