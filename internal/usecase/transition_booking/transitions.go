package transition_booking

import "github.com/m04kA/HSP-BookingService/internal/domain"

// canTransition проверяет допустимость перехода между статусами.
//
// pending  -> accepted | rejected
// accepted -> completed | rejected (последнее - за флагом allowRejectAfterAccept)
//
// completed и rejected терминальны. StatusOther не участвует в переходах:
// запись с нераспознанным статусом недоступна для lifecycle-операций.
// Повторный переход в текущий статус не разрешён.
func canTransition(from, to domain.BookingStatus, allowRejectAfterAccept bool) bool {
	if from.IsTerminal() {
		return false
	}

	switch from {
	case domain.StatusPending:
		return to == domain.StatusAccepted || to == domain.StatusRejected
	case domain.StatusAccepted:
		if to == domain.StatusCompleted {
			return true
		}
		return to == domain.StatusRejected && allowRejectAfterAccept
	default:
		return false
	}
}
