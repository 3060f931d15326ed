package create_booking

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена в каталоге
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrServiceInactive возвращается, когда услуга выключена в каталоге
	ErrServiceInactive = errors.New("create_booking: service is not active")

	// ErrCustomerNotFound возвращается, когда заказчик не найден
	ErrCustomerNotFound = errors.New("create_booking: customer not found")

	// ErrSlotTaken возвращается, когда слот (услуга, дата, время) уже занят
	ErrSlotTaken = errors.New("create_booking: slot is already taken")

	// ErrInvalidSlot возвращается, когда время не входит в сетку слотов
	ErrInvalidSlot = errors.New("create_booking: time is not a bookable slot")

	// ErrInvalidDate возвращается при некорректной дате бронирования
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
