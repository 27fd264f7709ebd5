// README: Upstream completion contract and error classes.
package completion

import (
	"context"
	"errors"
)

var (
	// ErrInvalidInput is returned before any network traffic, e.g. for an empty prompt.
	ErrInvalidInput = errors.New("invalid input")
	// ErrUpstreamUnreachable covers transport failures: DNS, refused connections, timeouts.
	ErrUpstreamUnreachable = errors.New("upstream unreachable")
	// ErrUpstreamMalformed covers bodies that cannot be decoded or carry no reply.
	ErrUpstreamMalformed = errors.New("upstream returned malformed response")
)

// Completer produces generated text for a prompt.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
