package exporter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"promptpilot/generator"
)

// TimestampLayout renders instants as ISO-8601 UTC with milliseconds.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

var exportsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "promptpilot_exports_total",
		Help: "Total number of export payloads built, partitioned by format.",
	},
	[]string{"format"},
)

// Payload is what a save sink persists.
type Payload struct {
	Data        []byte
	Filename    string
	ContentType string
}

// Export serializes items in the given format. It never touches disk or
// network. An empty item list still yields a well-formed document.
func Export(format Format, items []generator.Result) (Payload, error) {
	if !format.Valid() {
		return Payload{}, fmt.Errorf("%w: %q", ErrUnknownFormat, string(format))
	}

	var (
		data []byte
		err  error
	)
	switch format {
	case FormatJSON:
		data, err = encodeJSON(items)
	case FormatCSV:
		data = encodeCSV(items)
	case FormatMarkdown:
		data = encodeMarkdown(items)
	default:
		data = encodeText(items)
	}
	if err != nil {
		return Payload{}, err
	}

	exportsTotal.WithLabelValues(string(format)).Inc()
	return Payload{
		Data:        data,
		Filename:    "promptpilot-export." + string(format),
		ContentType: format.ContentType(),
	}, nil
}

// Single is the plain-text download of one result.
func Single(r generator.Result) Payload {
	return Payload{
		Data:        []byte(r.Content),
		Filename:    fmt.Sprintf("%s-%s.txt", r.Type, r.ID),
		ContentType: "text/plain",
	}
}

func encodeJSON(items []generator.Result) ([]byte, error) {
	if items == nil {
		items = []generator.Result{}
	}
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode json export: %w", err)
	}
	return data, nil
}

// every field is quoted; embedded quotes are doubled so the file parses
func encodeCSV(items []generator.Result) []byte {
	var b bytes.Buffer
	b.WriteString("Type,Prompt,Content,Timestamp")
	for _, item := range items {
		b.WriteByte('\n')
		fields := []string{
			string(item.Type),
			item.Prompt,
			item.Content,
			item.Timestamp.UTC().Format(TimestampLayout),
		}
		for i, f := range fields {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteByte('"')
			b.WriteString(strings.ReplaceAll(f, `"`, `""`))
			b.WriteByte('"')
		}
	}
	return b.Bytes()
}

func encodeMarkdown(items []generator.Result) []byte {
	blocks := make([]string, 0, len(items))
	for _, item := range items {
		blocks = append(blocks, fmt.Sprintf("# %s\n\n**Prompt:** %s\n\n**Result:**\n%s\n\n---\n",
			item.Type, item.Prompt, item.Content))
	}
	return []byte(strings.Join(blocks, "\n"))
}

func encodeText(items []generator.Result) []byte {
	blocks := make([]string, 0, len(items))
	for _, item := range items {
		blocks = append(blocks, fmt.Sprintf("%s\nPrompt: %s\nResult: %s\n\n---\n",
			strings.ToUpper(string(item.Type)), item.Prompt, item.Content))
	}
	return []byte(strings.Join(blocks, "\n"))
}

// ParseTimestamp reads a timestamp written by the CSV encoder.
func ParseTimestamp(s string) (time.Time, error) {
	return time.Parse(TimestampLayout, s)
}
