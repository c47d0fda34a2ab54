package store

import (
	"errors"
	"strings"

	"promptpilot/generator"
)

var ErrDuplicateID = errors.New("result id already stored")

// ResultStore is the session's ordered result collection, newest first.
type ResultStore interface {
	Prepend(r generator.Result) error
	Remove(id string) bool
	Clear() int
	List() []generator.Result
	Get(id string) (generator.Result, bool)
	Latest() (generator.Result, bool)
	Select(ids []string) []generator.Result
	Len() int
}

// Query narrows a history listing. Zero fields match everything.
type Query struct {
	Search string
	Type   generator.TaskType
}

// Filter returns the results matching q, keeping their order. Search is a
// case-insensitive substring match against prompt or content.
func Filter(results []generator.Result, q Query) []generator.Result {
	needle := strings.ToLower(q.Search)
	out := make([]generator.Result, 0, len(results))
	for _, r := range results {
		if q.Type != "" && r.Type != q.Type {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(r.Prompt), needle) &&
			!strings.Contains(strings.ToLower(r.Content), needle) {
			continue
		}
		out = append(out, r)
	}
	return out
}
