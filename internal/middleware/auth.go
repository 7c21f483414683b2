package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/paani/remedial-learning-app/internal/errdefs"
	"github.com/paani/remedial-learning-app/internal/model"
	"github.com/paani/remedial-learning-app/pkg/ctxdata"
	"github.com/paani/remedial-learning-app/pkg/logging"
	"go.uber.org/zap"
)

const sessionQueryParam = "session"

type SessionValidator interface {
	ValidateSession(ctx context.Context, token string) (*model.Session, error)
}

// NewAuthMiddleware resolves the session token into the caller's username
// and role and stores them in the request context.
func NewAuthMiddleware(sessions SessionValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			token := SessionToken(r)
			if token == "" {
				if logger, ok := logging.GetFromContext(ctx); ok {
					logger.Info(ctx, "no session token", zap.String("path", r.URL.Path))
				}
				unauthorized(w)
				return
			}

			session, err := sessions.ValidateSession(ctx, token)
			if err != nil {
				if errors.Is(err, errdefs.ErrAuthentication) {
					if logger, ok := logging.GetFromContext(ctx); ok {
						logger.Info(ctx, "invalid session", zap.String("path", r.URL.Path))
					}
					unauthorized(w)
					return
				}
				if logger, ok := logging.GetFromContext(ctx); ok {
					logger.Error(ctx, "session lookup failed",
						zap.String("path", r.URL.Path),
						zap.String("method", r.Method),
						zap.Error(err),
					)
				}
				w.WriteHeader(http.StatusInternalServerError)
				return
			}

			ctx = ctxdata.WithUsername(ctx, session.Username)
			ctx = ctxdata.WithUserRole(ctx, string(session.Role))
			ctx = ctxdata.WithSessionToken(ctx, token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionToken reads "Authorization: Bearer <token>" or the ?session= query.
func SessionToken(r *http.Request) string {
	if header := r.Header.Get("Authorization"); header != "" {
		scheme, token, ok := strings.Cut(header, " ")
		if ok && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(token)
		}
		return ""
	}
	return r.URL.Query().Get(sessionQueryParam)
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	resp, _ := json.Marshal(map[string]string{"error": "authentication required"})
	w.Write(resp)
}
