package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/HSP-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/HSP-BookingService/internal/infra/storage/booking"
	catalogClient "github.com/m04kA/HSP-BookingService/internal/integrations/catalogservice"
	userClient "github.com/m04kA/HSP-BookingService/internal/integrations/userservice"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo   BookingRepository
	catalogClient CatalogServiceClient
	userClient    UserServiceClient
	txManager     TransactionManager
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	catalogClient CatalogServiceClient,
	userClient UserServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		catalogClient: catalogClient,
		userClient:    userClient,
		txManager:     txManager,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute выполняет use case создания бронирования.
// Проверка занятости слота и вставка выполняются в одной сериализуемой
// транзакции; частичный уникальный индекс в хранилище закрывает гонку
// двух конкурентных запросов на один и тот же слот окончательно.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: customer=%d, service=%d, date=%s, time=%s",
		req.CustomerID, req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем услугу из каталога
	service, err := uc.catalogClient.GetService(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrServiceNotFound) {
			uc.logger.Warn("CreateBooking: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	if !service.Active {
		uc.logger.Warn("CreateBooking: service id=%d is inactive", req.ServiceID)
		return nil, ErrServiceInactive
	}

	// 3. Проверяем существование заказчика
	if _, err := uc.userClient.GetUser(ctx, req.CustomerID); err != nil {
		if errors.Is(err, userClient.ErrUserNotFound) {
			uc.logger.Warn("CreateBooking: customer id=%d not found", req.CustomerID)
			return nil, ErrCustomerNotFound
		}
		uc.logger.Error("CreateBooking: failed to get customer id=%d: %v", req.CustomerID, err)
		return nil, fmt.Errorf("%w: failed to get customer: %v", ErrInternal, err)
	}

	// Переменная для хранения результата
	var result *domain.Booking

	// 4. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Перечитываем занятые слоты непосредственно перед вставкой
		// (с блокировкой FOR UPDATE). Прочитанный клиентом ранее набор мог
		// устареть между чтением и записью.
		takenTimes, err := uc.bookingRepo.GetTakenTimes(txCtx, req.ServiceID, req.Date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get taken times: %v", err)
			return fmt.Errorf("%w: failed to get taken times: %v", ErrInternal, err)
		}

		for _, taken := range takenTimes {
			if strings.TrimSpace(taken) == req.StartTime.String() {
				uc.logger.Warn("CreateBooking: slot taken: service=%d, date=%s, time=%s",
					req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime)
				return ErrSlotTaken
			}
		}

		// 4.2. Создаем бронирование в статусе pending
		booking := &domain.Booking{
			ServiceID:      req.ServiceID,
			CustomerID:     req.CustomerID,
			Status:         domain.StatusPending,
			BookingDate:    req.Date,
			StartTime:      req.StartTime,
			Address:        strings.TrimSpace(req.Address),
			EstimatedPrice: getServicePrice(service),
			PaymentMethod:  req.PaymentMethod,
			PaymentStatus:  domain.PaymentStatusUnpaid,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				// Конкурентная вставка успела первой - индекс отверг нашу
				uc.logger.Warn("CreateBooking: slot conflict on insert: service=%d, date=%s, time=%s",
					req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime)
				return ErrSlotTaken
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s", result.ID)

	// Конвертируем в response
	return &Response{
		ID:             result.ID,
		ServiceID:      result.ServiceID,
		CustomerID:     result.CustomerID,
		Status:         string(result.Status),
		Date:           result.BookingDate,
		StartTime:      result.StartTime,
		Address:        result.Address,
		ServiceName:    service.Name,
		EstimatedPrice: result.EstimatedPrice,
		PaymentMethod:  result.PaymentMethod,
		PaymentStatus:  result.PaymentStatus,
		CreatedAt:      result.CreatedAt,
		UpdatedAt:      result.UpdatedAt,
	}, nil
}

// getServicePrice извлекает цену из услуги
// Если цена не указана (nil), возвращает 0.0
func getServicePrice(service *catalogClient.Service) float64 {
	if service.BasePrice == nil {
		return 0.0
	}
	return *service.BasePrice
}
