package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/chaxxbarbers/booking-service/internal/api/handlers"
)

// adminTokenHeader заголовок с админским токеном
const adminTokenHeader = "X-Admin-Token"

const msgUnauthorized = "Missing or invalid admin token"

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// AdminAuth пропускает запрос только с верным админским токеном в заголовке.
// Сравнение токенов постоянное по времени.
func AdminAuth(token string, log Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			provided := r.Header.Get(adminTokenHeader)
			if provided == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(token)) != 1 {
				log.Warn("%s %s - Rejected: missing or invalid admin token", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
