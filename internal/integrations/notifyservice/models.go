package notifyservice

// Notification уведомление пользователя об изменении статуса бронирования
type Notification struct {
	UserID    int64  `json:"userId"`
	BookingID string `json:"bookingId"`
	Status    string `json:"status"`
	Message   string `json:"message"`
}
