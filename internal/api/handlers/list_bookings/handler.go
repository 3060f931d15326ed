package list_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/HSP-BookingService/internal/api/handlers"
	bookingsService "github.com/m04kA/HSP-BookingService/internal/service/bookings"
	"github.com/m04kA/HSP-BookingService/internal/service/bookings/models"
)

const (
	msgInvalidAssignedTo = "некорректный ID исполнителя"
	msgInvalidServiceID  = "некорректный ID услуги"
	msgInvalidInput      = "некорректные параметры фильтрации"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings?status=&assignedTo=&serviceId=&date=&startTime=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.ListBookingsRequest{}
	query := r.URL.Query()

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	if rawAssignedTo := query.Get("assignedTo"); rawAssignedTo != "" {
		assignedTo, err := strconv.ParseInt(rawAssignedTo, 10, 64)
		if err != nil || assignedTo <= 0 {
			h.logger.Warn("GET /bookings - Invalid assignedTo: %s", rawAssignedTo)
			handlers.RespondBadRequest(w, msgInvalidAssignedTo)
			return
		}
		req.AssignedTo = &assignedTo
	}

	if rawServiceID := query.Get("serviceId"); rawServiceID != "" {
		serviceID, err := strconv.ParseInt(rawServiceID, 10, 64)
		if err != nil || serviceID <= 0 {
			h.logger.Warn("GET /bookings - Invalid serviceId: %s", rawServiceID)
			handlers.RespondBadRequest(w, msgInvalidServiceID)
			return
		}
		req.ServiceID = &serviceID
	}

	if date := query.Get("date"); date != "" {
		req.Date = &date
	}

	if startTime := query.Get("startTime"); startTime != "" {
		req.StartTime = &startTime
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookingsService.ErrInvalidInput):
			h.logger.Warn("GET /bookings - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /bookings - Failed to list bookings: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings - Fetched %d bookings", len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
