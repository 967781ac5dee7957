package http

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// RequireToken rejects requests that do not carry a valid HS256 bearer
// token signed with secret. The tracker is single-user, so a valid
// signature is the whole authorization decision; claims are not used.
func RequireToken(secret string) func(http.Handler) http.Handler {
	keyFunc := func(t *jwt.Token) (any, error) {
		return []byte(secret), nil
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")

			token, ok := strings.CutPrefix(auth, "Bearer ")
			if !ok {
				http.Error(w, "missing bearer token", http.StatusUnauthorized)
				return
			}

			if _, err := jwt.Parse(token, keyFunc, jwt.WithValidMethods([]string{"HS256"})); err != nil {
				http.Error(w, "invalid token", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
