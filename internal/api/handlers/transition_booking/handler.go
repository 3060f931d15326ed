package transition_booking

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/HSP-BookingService/internal/api/handlers"
	transitionBooking "github.com/m04kA/HSP-BookingService/internal/usecase/transition_booking"
)

const (
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgBookingNotFound    = "бронирование не найдено"
	msgInvalidStatus      = "некорректный целевой статус"
	msgInvalidTransition  = "переход в указанный статус из текущего невозможен"
	msgAssigneeRequired   = "для принятия заявки необходимо указать исполнителя"
	msgWorkerNotFound     = "указанный исполнитель не найден"
	msgReasonRequired     = "для отклонения заявки необходимо указать причину"
	msgNotEnoughPhotos    = "для завершения заявки необходимо минимум три фотографии"
	msgInvalidInput       = "некорректные данные запроса"
)

type Handler struct {
	useCase TransitionBookingUseCase
	logger  Logger
}

func NewHandler(useCase TransitionBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	bookingID, err := uuid.Parse(vars["bookingId"])
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id}/status - Invalid booking ID: %s", vars["bookingId"])
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req TransitionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/{id}/status - Invalid request body: booking_id=%s: %v", bookingID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(bookingID))
	if err != nil {
		switch {
		case errors.Is(err, transitionBooking.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id}/status - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, transitionBooking.ErrInvalidStatus):
			h.logger.Warn("PATCH /bookings/{id}/status - Invalid target status %q: booking_id=%s", req.Status, bookingID)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, transitionBooking.ErrInvalidTransition):
			h.logger.Warn("PATCH /bookings/{id}/status - Transition not allowed: booking_id=%s, target=%s",
				bookingID, req.Status)
			handlers.RespondBadRequest(w, msgInvalidTransition)

		case errors.Is(err, transitionBooking.ErrAssigneeRequired):
			h.logger.Warn("PATCH /bookings/{id}/status - Assignee required: booking_id=%s", bookingID)
			handlers.RespondBadRequest(w, msgAssigneeRequired)

		case errors.Is(err, transitionBooking.ErrWorkerNotFound):
			h.logger.Warn("PATCH /bookings/{id}/status - Worker not found: booking_id=%s, assigned_to=%v",
				bookingID, req.AssignedTo)
			handlers.RespondNotFound(w, msgWorkerNotFound)

		case errors.Is(err, transitionBooking.ErrReasonRequired):
			h.logger.Warn("PATCH /bookings/{id}/status - Rejection reason required: booking_id=%s", bookingID)
			handlers.RespondBadRequest(w, msgReasonRequired)

		case errors.Is(err, transitionBooking.ErrNotEnoughPhotos):
			h.logger.Warn("PATCH /bookings/{id}/status - Not enough photos: booking_id=%s: %v", bookingID, err)
			handlers.RespondBadRequest(w, msgNotEnoughPhotos)

		case errors.Is(err, transitionBooking.ErrInvalidInput):
			h.logger.Warn("PATCH /bookings/{id}/status - Invalid input: booking_id=%s: %v", bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PATCH /bookings/{id}/status - Failed to transition booking: booking_id=%s, target=%s, error=%v",
				bookingID, req.Status, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id}/status - Booking transitioned: booking_id=%s, status=%s",
		result.ID, result.Status)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
