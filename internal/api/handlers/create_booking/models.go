package create_booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/HSP-BookingService/internal/domain"
	createBooking "github.com/m04kA/HSP-BookingService/internal/usecase/create_booking"
	"github.com/m04kA/HSP-BookingService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ServiceID     int64  `json:"serviceId"`
	Date          string `json:"date"`      // "2025-10-15"
	StartTime     string `json:"startTime"` // "10:00"
	Address       string `json:"address"`
	PaymentMethod string `json:"paymentMethod"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID             uuid.UUID `json:"id"`
	ServiceID      int64     `json:"serviceId"`
	CustomerID     int64     `json:"customerId"`
	Status         string    `json:"status"`
	Date           string    `json:"date"`
	StartTime      string    `json:"startTime"`
	Address        string    `json:"address"`
	ServiceName    string    `json:"serviceName"`
	EstimatedPrice float64   `json:"estimatedPrice"`
	PaymentMethod  string    `json:"paymentMethod"`
	PaymentStatus  string    `json:"paymentStatus"`
	CreatedAt      string    `json:"createdAt"`
	UpdatedAt      string    `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case.
// CustomerID приходит из заголовка аутентификации, не из тела.
func (r *CreateBookingRequest) ToUseCaseRequest(customerID int64) (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		CustomerID:    customerID,
		ServiceID:     r.ServiceID,
		Date:          date,
		StartTime:     startTime,
		Address:       r.Address,
		PaymentMethod: r.PaymentMethod,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:             resp.ID,
		ServiceID:      resp.ServiceID,
		CustomerID:     resp.CustomerID,
		Status:         resp.Status,
		Date:           resp.Date.Format(domain.DateFormat),
		StartTime:      resp.StartTime.String(),
		Address:        resp.Address,
		ServiceName:    resp.ServiceName,
		EstimatedPrice: resp.EstimatedPrice,
		PaymentMethod:  resp.PaymentMethod,
		PaymentStatus:  resp.PaymentStatus,
		CreatedAt:      resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      resp.UpdatedAt.Format(time.RFC3339),
	}
}
