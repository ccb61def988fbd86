package llm

import (
	"context"
)

// LLMClient is the single operation the categorizer needs from an external
// language model.
type LLMClient interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
