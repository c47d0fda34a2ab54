package generator

import (
	"context"
	"time"
)

// DefaultDelay models the latency of a backend call.
const DefaultDelay = 1500 * time.Millisecond

// TemplateCompleter is the local stand-in for a model. It waits Delay and
// then renders the fixed template of the requested task.
type TemplateCompleter struct {
	Delay time.Duration
}

func (m TemplateCompleter) Complete(ctx context.Context, prompt Prompt) (string, error) {
	if m.Delay > 0 {
		timer := time.NewTimer(m.Delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return Generate(prompt.Task, prompt.User), nil
}
