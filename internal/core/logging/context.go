package logging

import "context"

type contextKey string

const (
	requestIDKey    contextKey = "request_id"
	collectionIDKey contextKey = "collection_id"
)

// WithRequestID adds an API request ID to the context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// WithCollectionID adds the id of the browsed collection to the context.
func WithCollectionID(ctx context.Context, id int64) context.Context {
	return context.WithValue(ctx, collectionIDKey, id)
}

// GetRequestID retrieves the request ID from the context.
// Returns empty string if not present.
func GetRequestID(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}

// GetCollectionID retrieves the collection ID from the context.
func GetCollectionID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(collectionIDKey).(int64)
	return id, ok
}
