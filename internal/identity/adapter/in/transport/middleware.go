package transport

import (
	"context"
	"net/http"
	"strings"

	"ridemate/internal/shared/auth"
	"ridemate/internal/shared/logger"
)

type contextKey string

const (
	// Контекстные ключи для хранения данных аккаунта
	ContextKeyAccountID    contextKey = "account_id"
	ContextKeyAccountEmail contextKey = "account_email"
)

// AccountIDFromContext извлекает account_id, добавленный JWT middleware
func AccountIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(ContextKeyAccountID).(string)
	return id, ok && id != ""
}

// JWTMiddleware создает middleware для валидации Bearer-токенов.
// Запросы без валидного токена получают 401 — JSON-аналог редиректа
// на страницу логина.
func JWTMiddleware(jwtService *auth.JWTService, log *logger.Logger) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				respondUnauthorized(w, "missing authorization header")
				return
			}

			// Формат "Bearer <token>"
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				respondUnauthorized(w, "invalid authorization header format")
				return
			}

			claims, err := jwtService.ValidateToken(parts[1])
			if err != nil {
				log.Error(logger.Entry{
					Action:  "jwt_validation_failed",
					Message: err.Error(),
					Error:   &logger.ErrObj{Msg: err.Error()},
				})
				respondUnauthorized(w, "invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyAccountID, claims.AccountID)
			ctx = context.WithValue(ctx, ContextKeyAccountEmail, claims.Email)

			next.ServeHTTP(w, r.WithContext(ctx))
		}
	}
}

// respondUnauthorized отправляет 401 ответ
func respondUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error":"` + message + `"}`))
}
