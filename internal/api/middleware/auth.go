package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/kazilop/CarCleanTGApp2/internal/api/handlers"
	"github.com/kazilop/CarCleanTGApp2/internal/service/clients"
)

type contextKey string

// identityKey ключ контекста с платформенной идентичностью
const identityKey contextKey = "identity"

// Заголовки, которыми фронтенд mini-app передаёт данные пользователя
// из Telegram.WebApp.initDataUnsafe
const (
	headerUserID    = "X-Telegram-User-ID"
	headerUsername  = "X-Telegram-Username"
	headerFirstName = "X-Telegram-First-Name"
	headerLastName  = "X-Telegram-Last-Name"
)

// Auth извлекает платформенную идентичность из заголовков запроса
//
// Отсутствующая идентичность (запуск вне Telegram, разработка в браузере)
// не является ошибкой: подставляется демо-пользователь demoUserID, чтобы
// ядро продолжало работать без платформы.
func Auth(demoUserID int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity := clients.Identity{TelegramID: demoUserID, FirstName: "Демо", LastName: "Пользователь"}

			if raw := r.Header.Get(headerUserID); raw != "" {
				id, err := strconv.ParseInt(raw, 10, 64)
				if err != nil {
					handlers.RespondBadRequest(w, "некорректный X-Telegram-User-ID")
					return
				}
				identity = clients.Identity{
					TelegramID: id,
					FirstName:  r.Header.Get(headerFirstName),
					LastName:   r.Header.Get(headerLastName),
				}
				if username := r.Header.Get(headerUsername); username != "" {
					identity.Username = &username
				}
			}

			ctx := context.WithValue(r.Context(), identityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IdentityFromContext возвращает идентичность, положенную Auth middleware
func IdentityFromContext(ctx context.Context) (clients.Identity, bool) {
	identity, ok := ctx.Value(identityKey).(clients.Identity)
	return identity, ok
}
