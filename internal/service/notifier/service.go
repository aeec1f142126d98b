package notifier

import (
	"context"
	"time"

	"github.com/rpires71/PK-BookingService/internal/domain"
	"github.com/rpires71/PK-BookingService/internal/integrations/mailer"
)

// resolveTimeout лимит на запрос email получателя к сервису аккаунтов
const resolveTimeout = 5 * time.Second

// Service отправляет уведомления о событиях бронирования.
//
// Отправка — fire-and-forget: выполняется в отдельной goroutine после
// успешной фиксации мутации и ни при каких условиях не влияет на её результат.
// Сбой логируется, автоматических повторов нет (at-most-once).
type Service struct {
	mail   MailClient // nil, если SMTP выключен в конфигурации
	users  UserServiceClient
	logger Logger
}

// NewService создает новый сервис уведомлений.
// mail может быть nil — тогда события только логируются.
func NewService(mail MailClient, users UserServiceClient, logger Logger) *Service {
	return &Service{
		mail:   mail,
		users:  users,
		logger: logger,
	}
}

// BookingCreated отправляет подтверждение нового бронирования
func (s *Service) BookingCreated(booking *domain.Booking, slot *domain.TimeSlot) {
	s.dispatch(mailer.EventConfirmed, booking, slot)
}

// BookingUpdated отправляет уведомление об изменении бронирования
func (s *Service) BookingUpdated(booking *domain.Booking, slot *domain.TimeSlot) {
	s.dispatch(mailer.EventUpdated, booking, slot)
}

// BookingCancelled отправляет уведомление об отмене бронирования
func (s *Service) BookingCancelled(booking *domain.Booking, slot *domain.TimeSlot) {
	s.dispatch(mailer.EventCancelled, booking, slot)
}

func (s *Service) dispatch(kind mailer.EventKind, booking *domain.Booking, slot *domain.TimeSlot) {
	// Снимок данных до ухода в goroutine: booking может быть изменён вызывающим кодом
	event := mailer.BookingEvent{
		Kind:        kind,
		Reference:   booking.Reference,
		BookingDate: booking.BookingDate.Format(domain.DateFormat),
		PartySize:   booking.PartySize,
	}
	// slot может отсутствовать (например, при отмене брони на удалённый слот)
	if slot != nil {
		event.SlotTime = slot.Time.String()
	}

	if booking.GuestEmail != nil {
		event.Recipient = *booking.GuestEmail
	}
	if booking.GuestName != nil {
		event.RecipientName = *booking.GuestName
	}

	var userID *int64
	if booking.UserID != nil {
		id := *booking.UserID
		userID = &id
	}

	go s.send(event, userID)
}

func (s *Service) send(event mailer.BookingEvent, userID *int64) {
	// Для зарегистрированных пользователей email берём у identity provider
	if userID != nil {
		ctx, cancel := context.WithTimeout(context.Background(), resolveTimeout)
		defer cancel()

		user, err := s.users.GetUserWithGracefulDegradation(ctx, *userID)
		if err != nil {
			s.logger.Warn("notifier: skipping %s email for booking %s, failed to resolve user_id=%d: %v",
				event.Kind, event.Reference, *userID, err)
			return
		}
		event.Recipient = user.Email
		if event.RecipientName == "" {
			event.RecipientName = user.Name
		}
	}

	if s.mail == nil {
		s.logger.Info("notifier: SMTP disabled, %s event for booking %s not sent (recipient=%s)",
			event.Kind, event.Reference, event.Recipient)
		return
	}

	if err := s.mail.Send(event); err != nil {
		s.logger.Error("notifier: failed to send %s email for booking %s: %v",
			event.Kind, event.Reference, err)
		return
	}

	s.logger.Info("notifier: %s email sent for booking %s", event.Kind, event.Reference)
}
