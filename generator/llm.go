package generator

import (
	"context"
	"time"
)

// Completer is the asynchronous generation boundary. The mock completer
// renders a fixed template after a simulated delay; real backends call a
// model and return its text.
type Completer interface {
	Complete(ctx context.Context, prompt Prompt) (string, error)
}

// CompleterFunc adapts a function to Completer.
type CompleterFunc func(ctx context.Context, prompt Prompt) (string, error)

func (f CompleterFunc) Complete(ctx context.Context, prompt Prompt) (string, error) {
	return f(ctx, prompt)
}

// DefaultLLMTimeout bounds a backend call when no timeout is configured.
// Submissions are never cancelled by the caller, so a stalled backend
// would otherwise keep the agent busy.
const DefaultLLMTimeout = 2 * time.Minute

// LLMSettings is the basic configuration handed to a concrete backend.
type LLMSettings struct {
	Provider string
	Model    string
	APIKey   string
	BaseURL  string
	Timeout  time.Duration
}
