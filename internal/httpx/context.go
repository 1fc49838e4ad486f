package httpx

import (
	"context"
	"net/http"
)

type contextKey string

const (
	callerIDKey  contextKey = "callerID"
	roleKey      contextKey = "role"
	requestIDKey contextKey = "requestID"
)

// CallerIDFrom retrieves the authenticated caller ID from the request context.
func CallerIDFrom(r *http.Request) string {
	if v, ok := r.Context().Value(callerIDKey).(string); ok {
		return v
	}
	return ""
}

// RoleFrom retrieves the caller role from the request context.
func RoleFrom(r *http.Request) string {
	if v, ok := r.Context().Value(roleKey).(string); ok {
		return v
	}
	return ""
}

// ContextWithCaller returns a new context with the caller ID and role.
func ContextWithCaller(ctx context.Context, callerID, role string) context.Context {
	ctx = context.WithValue(ctx, callerIDKey, callerID)
	return context.WithValue(ctx, roleKey, role)
}

// RequestIDFrom retrieves the request ID from the request context.
func RequestIDFrom(r *http.Request) string {
	if v, ok := r.Context().Value(requestIDKey).(string); ok {
		return v
	}
	return ""
}

// ContextWithRequestID returns a new context with the request ID.
func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}
