package transition_booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/HSP-BookingService/internal/domain"
	transitionBooking "github.com/m04kA/HSP-BookingService/internal/usecase/transition_booking"
)

// PhotoPayload фотография завершения в теле запроса.
// Data содержит либо data-URL, либо чистый base64.
type PhotoPayload struct {
	Data        string  `json:"data"`
	ContentType *string `json:"contentType,omitempty"`
	Filename    *string `json:"filename,omitempty"`
}

// TransitionRequest HTTP request model.
// Поля payload зависят от целевого статуса.
type TransitionRequest struct {
	Status           string         `json:"status"`
	AssignedTo       *int64         `json:"assignedTo,omitempty"`
	RejectionReason  *string        `json:"rejectionReason,omitempty"`
	CancelReason     *string        `json:"cancelReason,omitempty"`
	CompletionPhotos []PhotoPayload `json:"completionPhotos,omitempty"`
}

// BookingResponse HTTP response model с полной записью после обновления
type BookingResponse struct {
	ID         uuid.UUID `json:"id"`
	ServiceID  int64     `json:"serviceId"`
	CustomerID int64     `json:"customerId"`
	AssignedTo *int64    `json:"assignedTo,omitempty"`
	Status     string    `json:"status"`

	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	Address   string `json:"address"`

	EstimatedPrice float64 `json:"estimatedPrice"`
	PaymentMethod  string  `json:"paymentMethod"`
	PaymentStatus  string  `json:"paymentStatus"`

	RejectionReason *string `json:"rejectionReason,omitempty"`
	CancelReason    *string `json:"cancelReason,omitempty"`
	RejectedAt      *string `json:"rejectedAt,omitempty"`

	CompletedAt      *string `json:"completedAt,omitempty"`
	CompletionPhotos int     `json:"completionPhotos"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *TransitionRequest) ToUseCaseRequest(bookingID uuid.UUID) *transitionBooking.Request {
	photos := make([]transitionBooking.PhotoPayload, 0, len(r.CompletionPhotos))
	for _, photo := range r.CompletionPhotos {
		photos = append(photos, transitionBooking.PhotoPayload{
			Data:        photo.Data,
			ContentType: photo.ContentType,
			Filename:    photo.Filename,
		})
	}

	return &transitionBooking.Request{
		BookingID:        bookingID,
		Status:           r.Status,
		AssignedTo:       r.AssignedTo,
		RejectionReason:  r.RejectionReason,
		CancelReason:     r.CancelReason,
		CompletionPhotos: photos,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *transitionBooking.Response) *BookingResponse {
	result := &BookingResponse{
		ID:               resp.ID,
		ServiceID:        resp.ServiceID,
		CustomerID:       resp.CustomerID,
		AssignedTo:       resp.AssignedTo,
		Status:           resp.Status,
		Date:             resp.Date.Format(domain.DateFormat),
		StartTime:        resp.StartTime.String(),
		Address:          resp.Address,
		EstimatedPrice:   resp.EstimatedPrice,
		PaymentMethod:    resp.PaymentMethod,
		PaymentStatus:    resp.PaymentStatus,
		RejectionReason:  resp.RejectionReason,
		CancelReason:     resp.CancelReason,
		CompletionPhotos: resp.CompletionPhotos,
		CreatedAt:        resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        resp.UpdatedAt.Format(time.RFC3339),
	}

	if resp.RejectedAt != nil {
		rejectedAt := resp.RejectedAt.Format(time.RFC3339)
		result.RejectedAt = &rejectedAt
	}

	if resp.CompletedAt != nil {
		completedAt := resp.CompletedAt.Format(time.RFC3339)
		result.CompletedAt = &completedAt
	}

	return result
}
