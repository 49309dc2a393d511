package middleware

import (
	"context"
	"net/http"

	"github.com/kazilop/CarCleanTGApp2/internal/api/handlers"
)

// AdminChecker интерфейс проверки админского доступа
type AdminChecker interface {
	IsAuthorizedAdmin(ctx context.Context, tgID int64) (bool, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// AdminOnly пропускает только авторизованных администраторов
//
// Доступ перепроверяется на каждый запрос: добавление ID в список
// админов в настройках действует со следующего запроса, без перезапуска.
func AdminOnly(checker AdminChecker, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := IdentityFromContext(r.Context())
			if !ok {
				handlers.RespondForbidden(w, "доступ только для администраторов")
				return
			}

			isAdmin, err := checker.IsAuthorizedAdmin(r.Context(), identity.TelegramID)
			if err != nil {
				logger.Error("AdminOnly: failed to check access for tg=%d: %v", identity.TelegramID, err)
				handlers.RespondInternalError(w)
				return
			}
			if !isAdmin {
				logger.Warn("AdminOnly: access denied for tg=%d", identity.TelegramID)
				handlers.RespondForbidden(w, "доступ только для администраторов")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
