package store

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"promptpilot/generator"
)

func TestFilter(t *testing.T) {
	results := []generator.Result{
		{ID: "1", Type: generator.TaskCode, Prompt: "Make a BUTTON", Content: "// code"},
		{ID: "2", Type: generator.TaskText, Prompt: "email", Content: "Dear Team, the button works"},
		{ID: "3", Type: generator.TaskChart, Prompt: "sales", Content: "Q1 2024"},
	}

	tests := []struct {
		name string
		q    Query
		want []string
	}{
		{"empty query matches all", Query{}, []string{"1", "2", "3"}},
		{"search prompt case-insensitive", Query{Search: "button"}, []string{"1", "2"}},
		{"search content", Query{Search: "q1 2024"}, []string{"3"}},
		{"type filter", Query{Type: generator.TaskText}, []string{"2"}},
		{"search and type", Query{Search: "button", Type: generator.TaskCode}, []string{"1"}},
		{"no match", Query{Search: "nothing here"}, []string{}},
		{"type with no members", Query{Type: generator.TaskSocial}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(results, tt.q)
			ids := make([]string, 0, len(got))
			for _, r := range got {
				ids = append(ids, r.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}
