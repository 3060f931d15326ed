package transition_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("transition_booking: booking not found")

	// ErrInvalidStatus возвращается, когда целевой статус не является
	// допустимым статусом жизненного цикла
	ErrInvalidStatus = errors.New("transition_booking: invalid target status")

	// ErrInvalidTransition возвращается, когда переход из текущего статуса
	// в целевой не разрешён (в том числе повторный переход в тот же статус)
	ErrInvalidTransition = errors.New("transition_booking: transition is not allowed from current status")

	// ErrAssigneeRequired возвращается, когда для accepted не указан исполнитель
	ErrAssigneeRequired = errors.New("transition_booking: assignee is required for accept")

	// ErrWorkerNotFound возвращается, когда исполнитель не найден или не
	// является исполнителем
	ErrWorkerNotFound = errors.New("transition_booking: assigned worker not found")

	// ErrReasonRequired возвращается, когда для rejected не указана причина
	ErrReasonRequired = errors.New("transition_booking: rejection reason is required")

	// ErrNotEnoughPhotos возвращается, когда после нормализации осталось
	// меньше минимума валидных фотографий
	ErrNotEnoughPhotos = errors.New("transition_booking: not enough valid completion photos")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("transition_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("transition_booking: internal error")
)
