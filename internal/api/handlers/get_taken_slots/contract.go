package get_taken_slots

import (
	"context"

	getTakenSlots "github.com/m04kA/HSP-BookingService/internal/usecase/get_taken_slots"
)

type GetTakenSlotsUseCase interface {
	Execute(ctx context.Context, req *getTakenSlots.Request) (*getTakenSlots.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
