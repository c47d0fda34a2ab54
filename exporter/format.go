package exporter

import (
	"errors"
	"fmt"
	"strings"
)

// Format is the closed set of bulk export encodings.
type Format string

const (
	FormatJSON     Format = "json"
	FormatCSV      Format = "csv"
	FormatText     Format = "txt"
	FormatMarkdown Format = "md"
)

var ErrUnknownFormat = errors.New("unknown export format")

func Formats() []Format {
	return []Format{FormatJSON, FormatCSV, FormatText, FormatMarkdown}
}

func (f Format) Valid() bool {
	switch f {
	case FormatJSON, FormatCSV, FormatText, FormatMarkdown:
		return true
	}
	return false
}

// ParseFormat accepts a format name; an empty string selects JSON, the
// export dialog's default.
func ParseFormat(s string) (Format, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return FormatJSON, nil
	}
	f := Format(s)
	if !f.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
	return f, nil
}

// ContentType is the MIME type a sink should label the payload with.
func (f Format) ContentType() string {
	switch f {
	case FormatJSON:
		return "application/json"
	case FormatCSV:
		return "text/csv"
	case FormatMarkdown:
		return "text/markdown"
	default:
		return "text/plain"
	}
}
