// pkg/ai/client.go

package ai

import (
	"context"
	"errors"
)

// ErrGeneration is returned when the model produces no usable content.
// Transport failures and timeouts surface the same way; the caller never
// retries.
var ErrGeneration = errors.New("no content generated")

// Client is the chat-completion model the pipelines depend on.
type Client interface {
	Complete(ctx context.Context, system, user string) (string, error)
}
