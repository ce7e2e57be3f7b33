package ctxutil

import "context"

type ctxKey string

const (
	userKey      ctxKey = "user"
	requestIDKey ctxKey = "request_id"
)

// sessionUser is the authenticated principal stored in the context.
type sessionUser struct {
	id       int64
	username string
}

// WithUser stores the authenticated user's ID and username in the context.
func WithUser(ctx context.Context, id int64, username string) context.Context {
	return context.WithValue(ctx, userKey, sessionUser{id: id, username: username})
}

// UserFromCtx extracts the authenticated user from the context.
// Returns ok=false if the value is missing, has a non-positive ID, or is of the wrong type.
func UserFromCtx(ctx context.Context) (id int64, username string, ok bool) {
	u, ok := ctx.Value(userKey).(sessionUser)
	if !ok || u.id <= 0 {
		return 0, "", false
	}
	return u.id, u.username, true
}

// UserIDFromCtx extracts only the user ID from the context.
func UserIDFromCtx(ctx context.Context) (int64, bool) {
	id, _, ok := UserFromCtx(ctx)
	return id, ok
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
