package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SiteOpsService/internal/api/handlers"
)

const adminTokenHeader = "X-Admin-Token"

// Auth возвращает middleware, проверяющий админ-токен в заголовке запроса.
// Запросы без заголовка получают 401, с неверным токеном — 403.
func Auth(adminToken string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get(adminTokenHeader)
			if token == "" {
				handlers.RespondUnauthorized(w, "требуется токен администратора")
				return
			}

			if subtle.ConstantTimeCompare([]byte(token), []byte(adminToken)) != 1 {
				handlers.RespondForbidden(w, "неверный токен администратора")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
