package middleware

import (
	"baccarat_backend/internal/logger"
	"baccarat_backend/pkg/token"
	"context"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

type ctxKey struct{}

// SessionAuth пропускает запрос только с валидным токеном сессии.
// Токен берется из Authorization: Bearer, для websocket - из ?token=
func SessionAuth(secretKey []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := bearerToken(r)
			if raw == "" {
				http.Error(w, "missing session token", http.StatusUnauthorized)
				return
			}

			claims, err := token.VerifyToken(raw, secretKey)
			if err != nil {
				logger.Log.Debug("rejected session token", zap.Error(err))
				http.Error(w, "invalid session token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), ctxKey{}, claims.SessionID())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) string {
	if h := r.Header.Get("Authorization"); h != "" {
		scheme, value, ok := strings.Cut(h, " ")
		if ok && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(value)
		}
		return ""
	}
	return r.URL.Query().Get("token")
}

// SessionIDFromContext returns the session id placed by SessionAuth.
func SessionIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(ctxKey{}).(string)
	return id, ok && id != ""
}

// WithSessionID is used by tests and internal callers that bypass the token check.
func WithSessionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}
