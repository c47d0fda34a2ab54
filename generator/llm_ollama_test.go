package generator

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ollamaChatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
	Stream   *bool         `json:"stream"`
}

func TestNewOllamaCompleter_Validation(t *testing.T) {
	_, err := NewOllamaCompleter(nil)
	assert.Error(t, err)
	_, err = NewOllamaCompleter(&LLMSettings{})
	assert.Error(t, err)
	_, err = NewOllamaCompleter(&LLMSettings{Model: "llama3", BaseURL: "://bad"})
	assert.Error(t, err)
}

func TestOllamaCompleter_SendsMessagesAndReturnsContent(t *testing.T) {
	var got ollamaChatRequest
	var path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"model":"llama3","created_at":"2024-01-01T00:00:00Z","message":{"role":"assistant","content":"local answer"},"done":true}` + "\n"))
	}))
	defer srv.Close()

	// the OpenAI-compatible suffix is stripped
	c, err := NewOllamaCompleter(&LLMSettings{Model: "llama3", BaseURL: srv.URL + "/v1"})
	require.NoError(t, err)

	prompt := BuildPrompt(TaskChart, "sales by region")
	out, err := c.Complete(context.Background(), prompt)
	require.NoError(t, err)
	assert.Equal(t, "local answer", out)

	assert.Equal(t, "/api/chat", path)
	assert.Equal(t, "llama3", got.Model)
	require.NotNil(t, got.Stream)
	assert.False(t, *got.Stream)
	assert.Equal(t, []chatMessage{
		{Role: "system", Content: prompt.System},
		{Role: "user", Content: "sales by region"},
	}, got.Messages)
}

func TestOllamaCompleter_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"model \"llama3\" not found"}`))
	}))
	defer srv.Close()

	c, err := NewOllamaCompleter(&LLMSettings{Model: "llama3", BaseURL: srv.URL})
	require.NoError(t, err)

	_, err = c.Complete(context.Background(), BuildPrompt(TaskText, "hi"))
	assert.Error(t, err)
}
