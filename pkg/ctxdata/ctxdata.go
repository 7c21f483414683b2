package ctxdata

import (
	"context"
)

type traceIDKey struct{}
type usernameKey struct{}
type userRoleKey struct{}
type sessionTokenKey struct{}

var (
	traceIDKeyInstance      = traceIDKey{}
	usernameKeyInstance     = usernameKey{}
	userRoleKeyInstance     = userRoleKey{}
	sessionTokenKeyInstance = sessionTokenKey{}
)

func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKeyInstance, traceID)
}

func GetTraceID(ctx context.Context) (string, bool) {
	v := ctx.Value(traceIDKeyInstance)
	traceID, ok := v.(string)
	return traceID, ok
}

// WithUsername is set by the session middleware only. Core services never
// read it; handlers turn it into an explicit identity argument.
func WithUsername(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, usernameKeyInstance, username)
}

func GetUsername(ctx context.Context) (string, bool) {
	v := ctx.Value(usernameKeyInstance)
	username, ok := v.(string)
	return username, ok
}

func WithUserRole(ctx context.Context, role string) context.Context {
	return context.WithValue(ctx, userRoleKeyInstance, role)
}

func GetUserRole(ctx context.Context) (string, bool) {
	v := ctx.Value(userRoleKeyInstance)
	role, ok := v.(string)
	return role, ok
}

func WithSessionToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, sessionTokenKeyInstance, token)
}

func GetSessionToken(ctx context.Context) (string, bool) {
	v := ctx.Value(sessionTokenKeyInstance)
	token, ok := v.(string)
	return token, ok
}
