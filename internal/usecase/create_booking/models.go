package create_booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/HSP-BookingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	CustomerID    int64            // ID заказчика
	ServiceID     int64            // ID услуги
	Date          time.Time        // Дата бронирования (без времени)
	StartTime     types.TimeString // Временной слот (например, "10:00")
	Address       string           // Адрес выполнения работ
	PaymentMethod string           // Способ оплаты
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID         uuid.UUID        // ID созданного бронирования
	ServiceID  int64            // ID услуги
	CustomerID int64            // ID заказчика
	Status     string           // Статус (pending)
	Date       time.Time        // Дата бронирования
	StartTime  types.TimeString // Временной слот
	Address    string           // Адрес

	// Денормализованные данные услуги
	ServiceName    string  // Название услуги
	EstimatedPrice float64 // Оценочная стоимость

	PaymentMethod string // Способ оплаты
	PaymentStatus string // Статус оплаты

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
