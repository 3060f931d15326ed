package get_taken_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/HSP-BookingService/internal/api/handlers"
	"github.com/m04kA/HSP-BookingService/internal/domain"
	getTakenSlots "github.com/m04kA/HSP-BookingService/internal/usecase/get_taken_slots"
)

const (
	msgInvalidServiceID = "некорректный ID услуги"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgDateRequired     = "параметр date обязателен"
	msgInvalidInput     = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetTakenSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetTakenSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/services/{serviceId}/taken-slots?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	serviceID, err := strconv.ParseInt(vars["serviceId"], 10, 64)
	if err != nil || serviceID <= 0 {
		h.logger.Warn("GET /taken-slots - Invalid service ID: %s", vars["serviceId"])
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	rawDate := r.URL.Query().Get("date")
	if rawDate == "" {
		h.logger.Warn("GET /taken-slots - Missing date parameter: service_id=%d", serviceID)
		handlers.RespondBadRequest(w, msgDateRequired)
		return
	}

	date, err := time.Parse(domain.DateFormat, rawDate)
	if err != nil {
		h.logger.Warn("GET /taken-slots - Invalid date %q: service_id=%d", rawDate, serviceID)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getTakenSlots.Request{
		ServiceID: serviceID,
		Date:      date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getTakenSlots.ErrInvalidInput):
			h.logger.Warn("GET /taken-slots - Invalid input: service_id=%d: %v", serviceID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /taken-slots - Failed to fetch taken slots: service_id=%d, date=%s, error=%v",
				serviceID, rawDate, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /taken-slots - Fetched %d taken slots: service_id=%d, date=%s",
		len(result.Taken), serviceID, rawDate)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
