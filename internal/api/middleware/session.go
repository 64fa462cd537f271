package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/abhishek/learngrow/internal/service"
)

type contextKey string

const sessionEmailKey contextKey = "sessionEmail"

// Session extracts the email claim from a bearer token when one is present.
// Tokens are optional here: a missing or invalid token falls through to the
// handler rather than failing the request, so the body-email flow keeps
// working for clients that never obtained a token.
func Session(accounts *service.AccountService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				next.ServeHTTP(w, r)
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				next.ServeHTTP(w, r)
				return
			}

			email, err := accounts.ValidateToken(parts[1])
			if err != nil {
				slog.Debug("ignoring invalid session token", "error", err)
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), sessionEmailKey, email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionEmail returns the email claim of a validated session token, if the
// request carried one.
func SessionEmail(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(sessionEmailKey).(string)
	return email, ok
}
