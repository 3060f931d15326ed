package transition_booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/HSP-BookingService/internal/domain"
	"github.com/m04kA/HSP-BookingService/pkg/types"
)

// PhotoPayload фотография завершения в том виде, в каком её прислал клиент.
// Data - либо data-URL ("data:image/png;base64,...."), либо чистый base64.
type PhotoPayload struct {
	Data        string  // Закодированное содержимое
	ContentType *string // Тип контента (опционально, может быть задан в data-URL)
	Filename    *string // Имя файла (опционально)
}

// Request модель запроса на переход статуса
type Request struct {
	BookingID uuid.UUID // ID бронирования
	Status    string    // Целевой статус (как прислал клиент, до нормализации)

	// Payload для accepted
	AssignedTo *int64

	// Payload для rejected. RejectionReason основное поле; если оно пустое,
	// берётся CancelReason (совместимость со старыми клиентами).
	RejectionReason *string
	CancelReason    *string

	// Payload для completed
	CompletionPhotos []PhotoPayload
}

// Response модель ответа с обновлённым бронированием.
// Возвращается полная запись после обновления: административные консоли
// логируют запрос и результат для аудита.
type Response struct {
	ID         uuid.UUID
	ServiceID  int64
	CustomerID int64
	AssignedTo *int64
	Status     string

	Date      time.Time
	StartTime types.TimeString
	Address   string

	EstimatedPrice float64
	PaymentMethod  string
	PaymentStatus  string

	RejectionReason *string
	CancelReason    *string
	RejectedAt      *time.Time

	CompletedAt      *time.Time
	CompletionPhotos int // количество сохранённых фотографий

	CreatedAt time.Time
	UpdatedAt time.Time
}

// FromDomain конвертирует domain модель в response
func FromDomain(b *domain.Booking) *Response {
	return &Response{
		ID:               b.ID,
		ServiceID:        b.ServiceID,
		CustomerID:       b.CustomerID,
		AssignedTo:       b.AssignedTo,
		Status:           string(b.Status),
		Date:             b.BookingDate,
		StartTime:        b.StartTime,
		Address:          b.Address,
		EstimatedPrice:   b.EstimatedPrice,
		PaymentMethod:    b.PaymentMethod,
		PaymentStatus:    b.PaymentStatus,
		RejectionReason:  b.RejectionReason,
		CancelReason:     b.CancelReason,
		RejectedAt:       b.RejectedAt,
		CompletedAt:      b.CompletedAt,
		CompletionPhotos: len(b.CompletionPhotos),
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.UpdatedAt,
	}
}
