// Package llmclient wraps the LLM providers used as the code-generation
// oracle. Clients only make the API call; prompt construction and response
// interpretation live in the codegen package.
package llmclient

import (
	"context"
	"encoding/json"
	"errors"
)

var ErrInvalidJSON = errors.New("invalid json from LLM")

// LLMClient is the provider-neutral interface. Every provider is asked for
// a single JSON object response.
type LLMClient interface {
	Name() string
	Close() error
	GenerateJSON(ctx context.Context, systemPrompt, userPrompt string) (json.RawMessage, error)
}
