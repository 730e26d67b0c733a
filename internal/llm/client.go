// Package llm abstracts the text-completion model behind a single-call
// interface so pipeline steps can be tested against fakes.
package llm

import "context"

// Client sends one prompt and returns the model's text reply.
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
