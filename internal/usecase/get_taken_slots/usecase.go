package get_taken_slots

import (
	"context"
	"fmt"

	"github.com/m04kA/HSP-BookingService/internal/domain"
)

// UseCase use case получения занятых слотов на услугу и дату
type UseCase struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Execute выполняет use case получения занятых слотов.
// Результат - проекция по актуальному состоянию бронирований; клиент обязан
// перепроверить слот при создании, набор может устареть между чтением и
// записью.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetTakenSlots: service=%d, date=%s",
		req.ServiceID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetTakenSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Читаем времена активных бронирований
	rawTimes, err := uc.bookingRepo.GetTakenTimes(ctx, req.ServiceID, req.Date)
	if err != nil {
		uc.logger.Error("GetTakenSlots: failed to get taken times: %v", err)
		return nil, fmt.Errorf("%w: failed to get taken times: %v", ErrInternal, err)
	}

	// 3. Нормализуем значения: trim, отбрасывание пустых, дедупликация
	taken := normalizeTakenTimes(rawTimes)

	uc.logger.Info("GetTakenSlots: %d taken slots for service=%d, date=%s",
		len(taken), req.ServiceID, req.Date.Format(domain.DateFormat))

	return &Response{
		ServiceID: req.ServiceID,
		Date:      req.Date,
		Taken:     taken,
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}
