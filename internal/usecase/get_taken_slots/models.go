package get_taken_slots

import "time"

// Request модель запроса на получение занятых слотов
type Request struct {
	ServiceID int64     // ID услуги
	Date      time.Time // Дата (без времени)
}

// Response модель ответа с занятыми слотами.
// Набор вычисляется по текущему состоянию бронирований на каждый запрос:
// отклонение бронирования немедленно освобождает слот.
type Response struct {
	ServiceID int64     // ID услуги
	Date      time.Time // Дата, на которую запрашивались слоты
	Taken     []string  // Занятые значения времени, отсортированы по возрастанию
}
