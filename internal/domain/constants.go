package domain

// Business validation constants
const (
	// MinCompletionPhotos минимальное число фотографий для перевода
	// бронирования в completed
	MinCompletionPhotos = 3

	// DefaultPhotoContentType тип контента фотографии, если не указан явно
	DefaultPhotoContentType = "image/jpeg"

	MaxRejectionReasonLength = 500
	MaxAddressLength         = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Service day window: bookings are taken on the hour within this window
const (
	ServiceDayOpen  = "09:00"
	ServiceDayClose = "18:00"
	SlotStepMinutes = 60
)

// CancellationAliases статусы, освобождающие слот. В старых записях статус
// может храниться как 'cancelled'/'canceled' в произвольном регистре, поэтому
// запросы к хранилищу сравнивают LOWER(status) с этим списком.
var CancellationAliases = []string{
	string(StatusRejected),
	"cancelled",
	"canceled",
}

// Payment status values
const (
	PaymentStatusUnpaid = "unpaid"
	PaymentStatusPaid   = "paid"
)
