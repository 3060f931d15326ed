package transition_booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/HSP-BookingService/internal/domain"
	"github.com/m04kA/HSP-BookingService/internal/integrations/notifyservice"
	"github.com/m04kA/HSP-BookingService/internal/integrations/userservice"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error)
	ApplyTransition(ctx context.Context, id uuid.UUID, from domain.BookingStatus, upd *domain.StatusUpdate) error
	AddCompletionPhotos(ctx context.Context, bookingID uuid.UUID, photos []domain.CompletionPhoto) error
}

// UserServiceClient интерфейс клиента для UserService
type UserServiceClient interface {
	GetUser(ctx context.Context, userID int64) (*userservice.User, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Notifier интерфейс асинхронной доставки уведомлений.
// Постановка в очередь не блокирует и не возвращает ошибку.
type Notifier interface {
	Enqueue(n *notifyservice.Notification)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
