package transition_booking

import "github.com/m04kA/HSP-BookingService/internal/domain"

// renderStatusMessage возвращает человекочитаемый текст уведомления
// для целевого статуса
func renderStatusMessage(status domain.BookingStatus, reason string) string {
	switch status {
	case domain.StatusAccepted:
		return "Ваша заявка принята, исполнитель назначен"
	case domain.StatusCompleted:
		return "Работы по вашей заявке завершены"
	case domain.StatusRejected:
		if reason != "" {
			return "Заявка отклонена: " + reason
		}
		return "Заявка отклонена"
	default:
		return "Статус заявки изменён"
	}
}
