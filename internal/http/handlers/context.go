package handlers

import (
	"context"
	"net/http"
)

type contextKey string

const userIDKey = contextKey("user_id")

// WithUserID stamps the authenticated user's ID onto the request context.
// The auth middleware calls this after validating the bearer token.
func WithUserID(ctx context.Context, id int) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

// UserID returns the authenticated user's ID, or 0 for anonymous requests.
func UserID(r *http.Request) int {
	if v, ok := r.Context().Value(userIDKey).(int); ok {
		return v
	}
	return 0
}
