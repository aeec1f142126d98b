package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/rpires71/PK-BookingService/internal/api/handlers"
	"github.com/rpires71/PK-BookingService/internal/domain"
)

type contextKey string

const requesterKey contextKey = "requester"

// RoleStaff значение заголовка X-User-Role, открывающее staff-операции
const RoleStaff = "staff"

const (
	msgMissingUserID = "отсутствует ID пользователя"
	msgInvalidUserID = "некорректный ID пользователя"
	msgStaffOnly     = "операция доступна только персоналу"
)

// Identity извлекает данные заявителя из заголовков X-User-ID и X-User-Role.
// Заголовки проставляет API gateway после проверки сессии; сам сервис токены
// не проверяет. Оба заголовка опциональны: запрос без них считается гостевым.
func Identity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requester := domain.Requester{
			IsStaff: r.Header.Get("X-User-Role") == RoleStaff,
		}

		if raw := r.Header.Get("X-User-ID"); raw != "" {
			userID, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || userID <= 0 {
				handlers.RespondBadRequest(w, msgInvalidUserID)
				return
			}
			requester.UserID = &userID
		}

		ctx := context.WithValue(r.Context(), requesterKey, requester)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Auth пропускает только запросы с идентифицированным пользователем
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requester, ok := GetRequester(r.Context())
		if !ok || !requester.IsRegistered() {
			handlers.RespondUnauthorized(w, msgMissingUserID)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// StaffOnly пропускает только запросы персонала
func StaffOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requester, ok := GetRequester(r.Context())
		if !ok || !requester.IsStaff {
			handlers.RespondForbidden(w, msgStaffOnly)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetRequester возвращает данные заявителя из контекста запроса
func GetRequester(ctx context.Context) (domain.Requester, bool) {
	requester, ok := ctx.Value(requesterKey).(domain.Requester)
	return requester, ok
}

// GetUserID возвращает ID пользователя из контекста запроса
func GetUserID(ctx context.Context) (int64, bool) {
	requester, ok := GetRequester(ctx)
	if !ok || requester.UserID == nil {
		return 0, false
	}
	return *requester.UserID, true
}
