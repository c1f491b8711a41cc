package linkapi

import "context"

// IClient turns free text into a parsed calendar event.
// Implementations are safe for concurrent use.
type IClient interface {
	Generate(ctx context.Context, prompt string) (*Result, error)
}
