package get_taken_slots

import (
	"context"
	"time"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetTakenTimes возвращает значения времени всех активных бронирований
	// на услугу и дату
	GetTakenTimes(ctx context.Context, serviceID int64, date time.Time) ([]string, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
