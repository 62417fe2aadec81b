package auth

import (
	"crypto/subtle"
	"net/http"
	"strings"
)

// RequireAdmin пропускает запрос дальше только с корректным Bearer-токеном
// администратора. Сравнение за константное время.
func RequireAdmin(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token == "" {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			header := r.Header.Get("Authorization")
			value := strings.TrimPrefix(header, "Bearer ")
			if header == "" || value == header {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			if subtle.ConstantTimeCompare([]byte(value), []byte(token)) != 1 {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
