package notifications

import (
	"context"

	"github.com/chaxxbarbers/booking-service/internal/integrations/mailjet"
)

// MailSender интерфейс почтового клиента
type MailSender interface {
	IsConfigured() bool
	Send(ctx context.Context, msg mailjet.Message) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
