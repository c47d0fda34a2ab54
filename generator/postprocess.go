package generator

import (
	"errors"
	"strings"
)

var ErrEmptyContent = errors.New("completer returned empty content")

// PostProcess trims completer output and rejects empty bodies so stored
// results always carry content.
func PostProcess(raw string) (string, error) {
	content := strings.TrimSpace(raw)
	if content == "" {
		return "", ErrEmptyContent
	}
	return content, nil
}

// Excerpt flattens whitespace and cuts content to at most limit runes, for
// list views.
func Excerpt(content string, limit int) string {
	joined := strings.Join(strings.Fields(content), " ")
	runes := []rune(joined)
	if limit <= 0 || len(runes) <= limit {
		return joined
	}
	return string(runes[:limit])
}
