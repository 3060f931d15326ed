package get_taken_slots

import (
	"github.com/m04kA/HSP-BookingService/internal/domain"
	getTakenSlots "github.com/m04kA/HSP-BookingService/internal/usecase/get_taken_slots"
)

// TakenSlotsResponse HTTP response model
type TakenSlotsResponse struct {
	ServiceID int64    `json:"serviceId"`
	Date      string   `json:"date"`  // "2025-10-15"
	Taken     []string `json:"taken"` // занятые слоты по возрастанию
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getTakenSlots.Response) *TakenSlotsResponse {
	taken := resp.Taken
	if taken == nil {
		taken = []string{}
	}

	return &TakenSlotsResponse{
		ServiceID: resp.ServiceID,
		Date:      resp.Date.Format(domain.DateFormat),
		Taken:     taken,
	}
}
