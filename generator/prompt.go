package generator

import (
	"fmt"
	"strings"
)

// Prompt is the message set sent to a completer.
type Prompt struct {
	Task   TaskType
	System string
	User   string
}

var taskInstructions = map[TaskType][]string{
	TaskDesign: {
		"Produce a design concept in Markdown.",
		"Cover layout structure, color scheme with hex values, typography and components.",
	},
	TaskCode: {
		"Produce a single self-contained React component written in TypeScript.",
		"Output only code; put explanations in comments.",
	},
	TaskSummary: {
		"Summarize the supplied content in Markdown.",
		"Include key points, main insights, recommendations and a conclusion.",
	},
	TaskChart: {
		"Describe a data visualization in Markdown.",
		"Include chart configuration, sample data, key insights and recommendations.",
	},
	TaskSocial: {
		"Write a LinkedIn post with emoji bullets and hashtags.",
		"Append a short engagement strategy after a horizontal rule.",
	},
	TaskText: {
		"Write a professional email with a subject line, greeting, sections and a sign-off.",
	},
}

// BuildPrompt assembles the system instructions for task and passes the
// user's text through untouched.
func BuildPrompt(task TaskType, text string) Prompt {
	var sb strings.Builder
	sb.WriteString("You are a content assistant. Answer with the finished artifact only, no preamble.\n")
	sb.WriteString("Requirements:\n")
	for _, line := range taskInstructions[task] {
		sb.WriteString(fmt.Sprintf("- %s\n", line))
	}
	sb.WriteString(fmt.Sprintf("- Reference the request %q near the top of the output.\n", text))

	return Prompt{
		Task:   task,
		System: sb.String(),
		User:   text,
	}
}
