package generator

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// TaskType is the closed set of content kinds a prompt can request.
type TaskType string

const (
	TaskDesign  TaskType = "design"
	TaskCode    TaskType = "code"
	TaskSummary TaskType = "summary"
	TaskChart   TaskType = "chart"
	TaskSocial  TaskType = "social"
	TaskText    TaskType = "text"
)

var ErrUnknownTaskType = errors.New("unknown task type")

var taskTypes = []TaskType{TaskDesign, TaskCode, TaskSummary, TaskChart, TaskSocial, TaskText}

// TaskTypes returns every known task type in display order.
func TaskTypes() []TaskType {
	out := make([]TaskType, len(taskTypes))
	copy(out, taskTypes)
	return out
}

func (t TaskType) Valid() bool {
	switch t {
	case TaskDesign, TaskCode, TaskSummary, TaskChart, TaskSocial, TaskText:
		return true
	}
	return false
}

func (t TaskType) String() string { return string(t) }

// ParseTaskType accepts the lower-case name of a task type, ignoring
// surrounding whitespace and case.
func ParseTaskType(s string) (TaskType, error) {
	t := TaskType(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownTaskType, s)
	}
	return t, nil
}

// UnmarshalText rejects names outside the enumeration so decoded results
// always carry a known type.
func (t *TaskType) UnmarshalText(b []byte) error {
	parsed, err := ParseTaskType(string(b))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func (t TaskType) MarshalText() ([]byte, error) {
	return []byte(t), nil
}

// Result is one generated artifact. It is never mutated after creation.
type Result struct {
	ID        string    `json:"id"`
	Type      TaskType  `json:"type"`
	Prompt    string    `json:"prompt"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// TaskInfo is the catalog entry shown by task pickers.
type TaskInfo struct {
	Type        TaskType `json:"type"`
	Label       string   `json:"label"`
	Description string   `json:"description"`
	Placeholder string   `json:"placeholder"`
}

var catalog = map[TaskType]TaskInfo{
	TaskDesign: {
		Type:        TaskDesign,
		Label:       "Design",
		Description: "Create designs and mockups",
		Placeholder: "Design a modern landing page for a tech startup...",
	},
	TaskCode: {
		Type:        TaskCode,
		Label:       "Code",
		Description: "Generate code snippets",
		Placeholder: "Create a React component for a user profile card...",
	},
	TaskSummary: {
		Type:        TaskSummary,
		Label:       "Summary",
		Description: "Summarize content",
		Placeholder: "Summarize this article about artificial intelligence...",
	},
	TaskChart: {
		Type:        TaskChart,
		Label:       "Chart",
		Description: "Create data visualizations",
		Placeholder: "Create a bar chart showing quarterly sales data...",
	},
	TaskSocial: {
		Type:        TaskSocial,
		Label:       "Social",
		Description: "Social media posts",
		Placeholder: "Write a LinkedIn post about productivity tips...",
	},
	TaskText: {
		Type:        TaskText,
		Label:       "Text",
		Description: "General text generation",
		Placeholder: "Write a professional email about project updates...",
	},
}

// Catalog lists the task types with their labels, in display order.
func Catalog() []TaskInfo {
	out := make([]TaskInfo, 0, len(taskTypes))
	for _, t := range taskTypes {
		out = append(out, catalog[t])
	}
	return out
}
