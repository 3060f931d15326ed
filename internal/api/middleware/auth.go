package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/m04kA/HSP-BookingService/internal/api/handlers"
)

type contextKey string

const (
	userIDHeader                = "X-User-ID"
	userIDContextKey contextKey = "userID"
)

// Auth проверяет наличие заголовка X-User-ID и кладёт ID пользователя
// в контекст запроса. Заголовок проставляется API gateway, сам сервис
// подлинность не проверяет.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rawUserID := r.Header.Get(userIDHeader)
		if rawUserID == "" {
			handlers.RespondUnauthorized(w, "отсутствует заголовок X-User-ID")
			return
		}

		userID, err := strconv.ParseInt(rawUserID, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, "некорректный заголовок X-User-ID")
			return
		}

		ctx := context.WithValue(r.Context(), userIDContextKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID возвращает ID пользователя из контекста запроса.
// Второе значение false, если запрос не проходил через Auth.
func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDContextKey).(int64)
	return userID, ok
}
