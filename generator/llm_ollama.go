package generator

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/ollama/ollama/api"
)

// OllamaCompleter implements Completer against a local Ollama server using
// its native chat API.
type OllamaCompleter struct {
	client *api.Client
	model  string
}

func NewOllamaCompleter(cfg *LLMSettings) (*OllamaCompleter, error) {
	if cfg == nil {
		return nil, errors.New("llm config is nil")
	}
	if cfg.Model == "" {
		return nil, errors.New("llm model is required")
	}
	base := cfg.BaseURL
	if base == "" {
		base = "http://localhost:11434"
	}
	// the native client wants the bare host, not the OpenAI-compatible /v1 path
	base = strings.TrimSuffix(strings.TrimSuffix(base, "/"), "/v1")
	parsed, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("parse ollama base url %q: %w", base, err)
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultLLMTimeout
	}
	return &OllamaCompleter{
		client: api.NewClient(parsed, &http.Client{Timeout: timeout}),
		model:  cfg.Model,
	}, nil
}

func (o *OllamaCompleter) Complete(ctx context.Context, prompt Prompt) (string, error) {
	stream := false
	req := &api.ChatRequest{
		Model: o.model,
		Messages: []api.Message{
			{Role: "system", Content: prompt.System},
			{Role: "user", Content: prompt.User},
		},
		Stream: &stream,
	}

	var resp api.ChatResponse
	err := o.client.Chat(ctx, req, func(r api.ChatResponse) error {
		resp = r
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("ollama chat: %w", err)
	}
	return resp.Message.Content, nil
}
