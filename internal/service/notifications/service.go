package notifications

import (
	"context"

	"github.com/chaxxbarbers/booking-service/internal/domain"
	"github.com/chaxxbarbers/booking-service/internal/integrations/mailjet"
)

// Service отправляет уведомления о бронированиях.
// Диспетчер fire-and-forget: любой исход (включая недоступность почты)
// превращается в Result и никогда не влияет на судьбу бронирования.
type Service struct {
	mailer     MailSender
	fromEmail  string
	fromName   string
	adminEmail string
	logger     Logger
}

// NewService создает новый сервис уведомлений
func NewService(mailer MailSender, fromEmail, fromName, adminEmail string, logger Logger) *Service {
	return &Service{
		mailer:     mailer,
		fromEmail:  fromEmail,
		fromName:   fromName,
		adminEmail: adminEmail,
		logger:     logger,
	}
}

// Notify отправляет клиенту письмо с подтверждением бронирования.
// Вызывается только после того, как бронирование записано в БД.
func (s *Service) Notify(ctx context.Context, booking *domain.Booking) Result {
	if !booking.HasEmail() {
		s.logger.Info("Notify: booking id=%d has no email, skipping", booking.ID)
		return skipped(ReasonNoEmail)
	}

	if s.mailer == nil || !s.mailer.IsConfigured() {
		s.logger.Warn("Notify: mailer not configured, skipping booking id=%d", booking.ID)
		return skipped(ReasonNotConfigured)
	}

	html, err := renderConfirmation(booking)
	if err != nil {
		s.logger.Error("Notify: failed to render confirmation for booking id=%d: %v", booking.ID, err)
		return failed(*booking.Email, err)
	}

	err = s.mailer.Send(ctx, mailjet.Message{
		FromEmail: s.fromEmail,
		FromName:  s.fromName,
		ToEmail:   *booking.Email,
		ToName:    booking.CustomerName,
		Subject:   "Booking Confirmation - Chaxx Barbershop",
		HTMLPart:  html,
	})
	if err != nil {
		s.logger.Error("Notify: failed to send confirmation for booking id=%d: %v", booking.ID, err)
		return failed(*booking.Email, err)
	}

	s.logger.Info("Notify: confirmation sent for booking id=%d to %s", booking.ID, *booking.Email)
	return sent(*booking.Email)
}

// NotifyAdmin отправляет администратору одно сводное письмо
// по всем бронированиям, созданным в рамках одного вызова.
func (s *Service) NotifyAdmin(ctx context.Context, bookings []*domain.Booking) Result {
	if len(bookings) == 0 {
		return skipped("nothing to report")
	}

	if s.mailer == nil || !s.mailer.IsConfigured() {
		s.logger.Warn("NotifyAdmin: mailer not configured, skipping summary for %d booking(s)", len(bookings))
		return skipped(ReasonNotConfigured)
	}

	subject, html, err := renderAdminSummary(bookings)
	if err != nil {
		s.logger.Error("NotifyAdmin: failed to render summary: %v", err)
		return failed(s.adminEmail, err)
	}

	err = s.mailer.Send(ctx, mailjet.Message{
		FromEmail: s.fromEmail,
		FromName:  s.fromName,
		ToEmail:   s.adminEmail,
		ToName:    "Admin",
		Subject:   subject,
		HTMLPart:  html,
	})
	if err != nil {
		s.logger.Error("NotifyAdmin: failed to send summary for %d booking(s): %v", len(bookings), err)
		return failed(s.adminEmail, err)
	}

	s.logger.Info("NotifyAdmin: summary for %d booking(s) sent to %s", len(bookings), s.adminEmail)
	return sent(s.adminEmail)
}
