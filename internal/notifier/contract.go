package notifier

import (
	"context"

	"github.com/m04kA/HSP-BookingService/internal/integrations/notifyservice"
)

// NotifySender интерфейс клиента шины уведомлений
type NotifySender interface {
	Send(ctx context.Context, n *notifyservice.Notification) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
