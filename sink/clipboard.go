package sink

import (
	"context"
	"sync"
)

type Clipboard interface {
	Copy(ctx context.Context, text string) error
}

// MemoryClipboard holds the last copied text for the process.
type MemoryClipboard struct {
	mu   sync.Mutex
	text string
	ok   bool
}

func (c *MemoryClipboard) Copy(_ context.Context, text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.text = text
	c.ok = true
	return nil
}

// Text returns the clipboard contents and whether anything was copied yet.
func (c *MemoryClipboard) Text() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.text, c.ok
}
