package models

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/HSP-BookingService/internal/domain"
	"github.com/m04kA/HSP-BookingService/pkg/types"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// GetUserBookingsRequest запрос на получение истории бронирований пользователя
type GetUserBookingsRequest struct {
	UserID int64   `json:"userId"`
	Status *string `json:"status,omitempty"`
}

// ListBookingsRequest запрос на получение списка бронирований с фильтрацией
type ListBookingsRequest struct {
	Status     *string `json:"status,omitempty"`     // Фильтр по статусу (опционально)
	AssignedTo *int64  `json:"assignedTo,omitempty"` // Фильтр по исполнителю (опционально)
	ServiceID  *int64  `json:"serviceId,omitempty"`  // Фильтр по услуге (опционально)
	Date       *string `json:"date,omitempty"`       // Фильтр по дате, "2025-10-15" (опционально)
	StartTime  *string `json:"startTime,omitempty"`  // Фильтр по слоту, "10:00" (опционально)
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		AssignedTo: r.AssignedTo,
		ServiceID:  r.ServiceID,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	if r.Date != nil {
		date, err := time.Parse(domain.DateFormat, *r.Date)
		if err != nil {
			return filter, err
		}
		filter.Date = &date
	}

	if r.StartTime != nil {
		startTime, err := types.NewTimeStringFromString(*r.StartTime)
		if err != nil {
			return filter, err
		}
		filter.StartTime = &startTime
	}

	return filter, nil
}

// Response модели

// PhotoResponse метаданные фотографии завершения.
// Содержимое не отдаётся в списках, только метаданные.
type PhotoResponse struct {
	ContentType string  `json:"contentType"`
	Filename    *string `json:"filename,omitempty"`
	Size        int64   `json:"size"`
	UploadedAt  string  `json:"uploadedAt"` // ISO 8601
}

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID         uuid.UUID `json:"id"`
	ServiceID  int64     `json:"serviceId"`
	CustomerID int64     `json:"customerId"`
	AssignedTo *int64    `json:"assignedTo,omitempty"`
	Status     string    `json:"status"`

	Date      string `json:"date"`      // "2025-10-15"
	StartTime string `json:"startTime"` // "10:00"
	Address   string `json:"address"`

	EstimatedPrice float64 `json:"estimatedPrice"`
	PaymentMethod  string  `json:"paymentMethod"`
	PaymentStatus  string  `json:"paymentStatus"`

	RejectionReason *string `json:"rejectionReason,omitempty"`
	CancelReason    *string `json:"cancelReason,omitempty"`
	RejectedAt      *string `json:"rejectedAt,omitempty"` // ISO 8601

	CompletedAt      *string         `json:"completedAt,omitempty"` // ISO 8601
	CompletionPhotos []PhotoResponse `json:"completionPhotos,omitempty"`

	Rating *int    `json:"rating,omitempty"`
	Review *string `json:"review,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:             b.ID,
		ServiceID:      b.ServiceID,
		CustomerID:     b.CustomerID,
		AssignedTo:     b.AssignedTo,
		Status:         string(b.Status),
		Date:           b.BookingDate.Format(domain.DateFormat),
		StartTime:      b.StartTime.String(),
		Address:        b.Address,
		EstimatedPrice: b.EstimatedPrice,
		PaymentMethod:  b.PaymentMethod,
		PaymentStatus:  b.PaymentStatus,

		RejectionReason: b.RejectionReason,
		CancelReason:    b.CancelReason,

		Rating: b.Rating,
		Review: b.Review,

		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}

	if b.RejectedAt != nil {
		rejectedAt := b.RejectedAt.Format(time.RFC3339)
		resp.RejectedAt = &rejectedAt
	}

	if b.CompletedAt != nil {
		completedAt := b.CompletedAt.Format(time.RFC3339)
		resp.CompletedAt = &completedAt
	}

	for _, photo := range b.CompletionPhotos {
		resp.CompletionPhotos = append(resp.CompletionPhotos, PhotoResponse{
			ContentType: photo.ContentType,
			Filename:    photo.Filename,
			Size:        photo.Size,
			UploadedAt:  photo.UploadedAt.Format(time.RFC3339),
		})
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	result := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, b := range bookings {
		if resp := FromDomainBooking(b); resp != nil {
			result.Bookings = append(result.Bookings, *resp)
		}
	}

	return result
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus.
// Алиасы отмены принимаются и приводятся к rejected.
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	normalized := domain.NormalizeStatus(status)
	if normalized == domain.StatusOther {
		return "", ErrInvalidStatus
	}
	return normalized, nil
}
