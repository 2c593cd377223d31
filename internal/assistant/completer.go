package assistant

import (
	"context"
	"errors"

	"brandbear/internal/model"
)

// ErrUnavailable is returned by the completer used when the assistant is disabled.
var ErrUnavailable = errors.New("assistant is not configured")

// CompletionRequest is one round trip to a text-completion service.
type CompletionRequest struct {
	SystemInstruction string
	History           []model.Message
	UserText          string
	Temperature       float32
}

// Completer produces the assistant's reply for a request.
// Any text-completion provider satisfying this shape is substitutable.
type Completer interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

// CompleterFunc adapts a function to the Completer interface.
type CompleterFunc func(ctx context.Context, req CompletionRequest) (string, error)

// Complete calls f.
func (f CompleterFunc) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	return f(ctx, req)
}

// Unavailable returns a completer that always fails, so every send yields the
// fallback reply.
func Unavailable() Completer {
	return CompleterFunc(func(context.Context, CompletionRequest) (string, error) {
		return "", ErrUnavailable
	})
}
