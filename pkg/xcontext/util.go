package xcontext

import "context"

type (
	userIDKey   struct{}
	responseKey struct{}
	errorKey    struct{}
)

type errorBox struct {
	err error
}

type responseBox struct {
	resp any
}

// WithError prepares the context for SetError. The router installs this before
// running middlewares and handlers, so closers can observe the handler error.
func WithError(ctx context.Context) context.Context {
	return context.WithValue(ctx, errorKey{}, &errorBox{})
}

func SetError(ctx context.Context, err error) {
	if box, ok := ctx.Value(errorKey{}).(*errorBox); ok {
		box.err = err
	}
}

func Error(ctx context.Context) error {
	if box, ok := ctx.Value(errorKey{}).(*errorBox); ok {
		return box.err
	}

	return nil
}

func WithResponse(ctx context.Context) context.Context {
	return context.WithValue(ctx, responseKey{}, &responseBox{})
}

func SetResponse(ctx context.Context, resp any) {
	if box, ok := ctx.Value(responseKey{}).(*responseBox); ok {
		box.resp = resp
	}
}

func Response(ctx context.Context) any {
	if box, ok := ctx.Value(responseKey{}).(*responseBox); ok {
		return box.resp
	}

	return nil
}

func WithRequestUserID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, userIDKey{}, id)
}

func RequestUserID(ctx context.Context) string {
	if id, ok := ctx.Value(userIDKey{}).(string); ok {
		return id
	}

	return ""
}
