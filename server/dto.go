package server

import (
	"time"

	"promptpilot/generator"
)

// excerptRunes is how much content a history row shows.
const excerptRunes = 100

type createResultRequest struct {
	Prompt string `json:"prompt"`
	Type   string `json:"type,omitempty"`
}

type selectTaskRequest struct {
	Type string `json:"type"`
}

type exportRequest struct {
	Format string   `json:"format"`
	IDs    []string `json:"ids,omitempty"`
	Save   bool     `json:"save,omitempty"`
}

type exportSavedResponse struct {
	Path string `json:"path"`
}

type resultSummary struct {
	ID        string             `json:"id"`
	Type      generator.TaskType `json:"type"`
	Prompt    string             `json:"prompt"`
	Excerpt   string             `json:"excerpt"`
	Timestamp time.Time          `json:"timestamp"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func summarize(results []generator.Result) []resultSummary {
	out := make([]resultSummary, 0, len(results))
	for _, r := range results {
		out = append(out, resultSummary{
			ID:        r.ID,
			Type:      r.Type,
			Prompt:    r.Prompt,
			Excerpt:   generator.Excerpt(r.Content, excerptRunes),
			Timestamp: r.Timestamp,
		})
	}
	return out
}
