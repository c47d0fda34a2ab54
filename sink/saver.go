package sink

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"promptpilot/exporter"
)

// Saver persists an export payload and returns where it went.
type Saver interface {
	Save(ctx context.Context, p exporter.Payload) (string, error)
}

// DirSaver writes payloads as files inside Dir.
type DirSaver struct {
	Dir string
}

func (d DirSaver) Save(ctx context.Context, p exporter.Payload) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if d.Dir == "" {
		return "", errors.New("save directory is not configured")
	}
	name := filepath.Base(p.Filename)
	if name == "." || name == string(filepath.Separator) || name == "" {
		return "", fmt.Errorf("invalid file name %q", p.Filename)
	}
	if err := os.MkdirAll(d.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}
	path := filepath.Join(d.Dir, name)
	if err := os.WriteFile(path, p.Data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
