package transition_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/HSP-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/HSP-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/HSP-BookingService/internal/integrations/notifyservice"
	userClient "github.com/m04kA/HSP-BookingService/internal/integrations/userservice"
	"github.com/m04kA/HSP-BookingService/pkg/ptr"
)

// Policy настройки жизненного цикла
type Policy struct {
	// AllowRejectAfterAccept разрешает исполнителю отказаться от уже
	// принятой заявки (accepted -> rejected). Поведение продуктово спорное,
	// поэтому вынесено в конфигурацию.
	AllowRejectAfterAccept bool
}

// UseCase use case перехода статуса бронирования.
// Единственная точка, которой разрешено менять статус записи.
type UseCase struct {
	bookingRepo  BookingRepository
	userClient   UserServiceClient
	txManager    TransactionManager
	notifier     Notifier
	timeProvider TimeProvider
	policy       Policy
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	userClient UserServiceClient,
	txManager TransactionManager,
	notifier Notifier,
	policy Policy,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		userClient:   userClient,
		txManager:    txManager,
		notifier:     notifier,
		timeProvider: &RealTimeProvider{},
		policy:       policy,
		logger:       logger,
	}
}

// Execute выполняет переход статуса бронирования.
//
// Порядок строгий: все проверки выполняются до первого обращения на запись,
// частично применённых переходов не бывает. Обновление статуса - атомарный
// compare-and-swap в сериализуемой транзакции: из двух конкурентных
// переходов по одной записи выигрывает ровно один, второй получает
// ErrInvalidTransition.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("TransitionBooking: booking=%s, target=%s", req.BookingID, req.Status)

	if req.BookingID == uuid.Nil {
		return nil, fmt.Errorf("%w: bookingID is required", ErrInvalidInput)
	}

	// 1. Нормализуем целевой статус
	target := domain.NormalizeStatus(req.Status)
	if target != domain.StatusAccepted && target != domain.StatusRejected && target != domain.StatusCompleted {
		uc.logger.Warn("TransitionBooking: invalid target status %q for booking=%s", req.Status, req.BookingID)
		return nil, ErrInvalidStatus
	}

	// 2. Разрешаем ID и проверяем допустимость перехода до проверки payload:
	// несуществующая запись - это not found, а не ошибка полей, и переход
	// из терминального статуса отклоняется независимо от содержимого запроса
	booking, err := uc.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("TransitionBooking: booking=%s not found", req.BookingID)
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	if !canTransition(domain.NormalizeStatus(string(booking.Status)), target, uc.policy.AllowRejectAfterAccept) {
		uc.logger.Warn("TransitionBooking: %s -> %s not allowed for booking=%s",
			booking.Status, target, req.BookingID)
		return nil, ErrInvalidTransition
	}

	// 3. Проверяем payload перехода и собираем обновление полей
	upd, photos, reason, err := uc.buildStatusUpdate(ctx, req, target)
	if err != nil {
		uc.logger.Warn("TransitionBooking: payload validation failed for booking=%s: %v", req.BookingID, err)
		return nil, err
	}

	// 4. Применяем переход в сериализуемой транзакции
	var updated *domain.Booking

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		current := domain.NormalizeStatus(string(booking.Status))

		if !canTransition(current, target, uc.policy.AllowRejectAfterAccept) {
			uc.logger.Warn("TransitionBooking: %s -> %s not allowed for booking=%s",
				current, target, req.BookingID)
			return ErrInvalidTransition
		}

		// CAS по статусу, считанному в этой же транзакции
		if err := uc.bookingRepo.ApplyTransition(txCtx, req.BookingID, booking.Status, upd); err != nil {
			if errors.Is(err, bookingRepo.ErrStaleStatus) {
				// Статус изменился конкурентным запросом - проигравший
				// наблюдает недопустимый переход, а не второй успех
				uc.logger.Warn("TransitionBooking: concurrent status change for booking=%s", req.BookingID)
				return ErrInvalidTransition
			}
			return fmt.Errorf("%w: failed to apply transition: %v", ErrInternal, err)
		}

		// Фотографии сохраняются в той же транзакции, что и статус:
		// частичный набор не может пережить откат
		if target == domain.StatusCompleted {
			if err := uc.bookingRepo.AddCompletionPhotos(txCtx, req.BookingID, photos); err != nil {
				return fmt.Errorf("%w: failed to store completion photos: %v", ErrInternal, err)
			}
		}

		// Перечитываем полную запись для ответа
		updated, err = uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			return fmt.Errorf("%w: failed to reload booking: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("TransitionBooking: booking=%s transitioned to %s", updated.ID, updated.Status)

	// 5. Уведомления после фиксации транзакции, best-effort
	uc.enqueueNotifications(updated, reason)

	return FromDomain(updated), nil
}

// buildStatusUpdate проверяет payload целевого статуса и собирает поля
// обновления. Возвращает также нормализованные фотографии (для completed)
// и причину отклонения (для rejected).
func (uc *UseCase) buildStatusUpdate(ctx context.Context, req *Request, target domain.BookingStatus) (*domain.StatusUpdate, []domain.CompletionPhoto, string, error) {
	now := uc.timeProvider.Now()
	upd := &domain.StatusUpdate{Status: target, UpdatedAt: now}

	switch target {
	case domain.StatusAccepted:
		if req.AssignedTo == nil || *req.AssignedTo <= 0 {
			return nil, nil, "", ErrAssigneeRequired
		}

		worker, err := uc.userClient.GetUser(ctx, *req.AssignedTo)
		if err != nil {
			if errors.Is(err, userClient.ErrUserNotFound) {
				return nil, nil, "", ErrWorkerNotFound
			}
			return nil, nil, "", fmt.Errorf("%w: failed to get worker: %v", ErrInternal, err)
		}
		if !worker.IsWorker() {
			return nil, nil, "", ErrWorkerNotFound
		}

		upd.AssignedTo = req.AssignedTo

	case domain.StatusRejected:
		reason := trimmed(req.RejectionReason)
		if reason == "" {
			// Совместимость: старые клиенты присылают cancelReason
			reason = trimmed(req.CancelReason)
		}
		if reason == "" {
			return nil, nil, "", ErrReasonRequired
		}
		if len(reason) > domain.MaxRejectionReasonLength {
			return nil, nil, "", fmt.Errorf("%w: rejection reason is too long", ErrInvalidInput)
		}

		// Причина пишется в оба поля - их читают разные потребители
		upd.RejectionReason = ptr.Ptr(reason)
		upd.CancelReason = ptr.Ptr(reason)
		upd.RejectedAt = ptr.Ptr(now)

		return upd, nil, reason, nil

	case domain.StatusCompleted:
		photos := normalizePhotos(req.CompletionPhotos, now)
		if len(photos) < domain.MinCompletionPhotos {
			return nil, nil, "", fmt.Errorf("%w: got %d valid photos, need at least %d",
				ErrNotEnoughPhotos, len(photos), domain.MinCompletionPhotos)
		}

		upd.CompletedAt = ptr.Ptr(now)
		return upd, photos, "", nil
	}

	return upd, nil, "", nil
}

// enqueueNotifications ставит в очередь уведомления заказчику и исполнителю
func (uc *UseCase) enqueueNotifications(booking *domain.Booking, reason string) {
	message := renderStatusMessage(booking.Status, reason)

	uc.notifier.Enqueue(&notifyservice.Notification{
		UserID:    booking.CustomerID,
		BookingID: booking.ID.String(),
		Status:    string(booking.Status),
		Message:   message,
	})

	if booking.AssignedTo != nil {
		uc.notifier.Enqueue(&notifyservice.Notification{
			UserID:    *booking.AssignedTo,
			BookingID: booking.ID.String(),
			Status:    string(booking.Status),
			Message:   message,
		})
	}
}

func trimmed(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}
