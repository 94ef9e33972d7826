package ai

import "context"

// CompletionClient is the single call the chat relay needs from a
// generative-text provider: one synchronous prompt in, one reply out.
// No streaming, no retries.
type CompletionClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
