package exporter

import (
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"promptpilot/generator"
)

func sampleResults() []generator.Result {
	ts := time.Date(2024, 3, 9, 8, 7, 6, 5_000_000, time.UTC)
	return []generator.Result{
		{
			ID:        "2",
			Type:      generator.TaskCode,
			Prompt:    "make a button",
			Content:   generator.Generate(generator.TaskCode, "make a button"),
			Timestamp: ts.Add(time.Minute),
		},
		{
			ID:        "1",
			Type:      generator.TaskText,
			Prompt:    `say "hi", then leave`,
			Content:   generator.Generate(generator.TaskText, `say "hi", then leave`),
			Timestamp: ts,
		},
	}
}

func TestParseFormat(t *testing.T) {
	for _, f := range Formats() {
		got, err := ParseFormat(strings.ToUpper(string(f)))
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}

	got, err := ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, got)

	_, err = ParseFormat("xlsx")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestExport_UnknownFormat(t *testing.T) {
	_, err := Export(Format("pdf"), nil)
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestExport_JSONRoundTrip(t *testing.T) {
	items := sampleResults()

	p, err := Export(FormatJSON, items)
	require.NoError(t, err)
	assert.Equal(t, "promptpilot-export.json", p.Filename)
	assert.Equal(t, "application/json", p.ContentType)
	assert.Contains(t, string(p.Data), "\n  {\n    \"id\": \"2\"", "expected two-space indentation")

	var back []generator.Result
	require.NoError(t, json.Unmarshal(p.Data, &back))
	assert.Equal(t, items, back)
}

func TestExport_JSONEmpty(t *testing.T) {
	p, err := Export(FormatJSON, nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(p.Data))
}

func TestExport_CSVSingleItemIsTwoLines(t *testing.T) {
	item := generator.Result{
		ID:        "9",
		Type:      generator.TaskChart,
		Prompt:    "q1",
		Content:   "one line body",
		Timestamp: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	p, err := Export(FormatCSV, []generator.Result{item})
	require.NoError(t, err)

	lines := strings.Split(string(p.Data), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Type,Prompt,Content,Timestamp", lines[0])
	assert.Equal(t, `"chart","q1","one line body","2024-01-02T03:04:05.000Z"`, lines[1])
	assert.Equal(t, "text/csv", p.ContentType)
}

func TestExport_CSVParsesBack(t *testing.T) {
	items := sampleResults()

	p, err := Export(FormatCSV, items)
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(p.Data))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, len(items)+1)
	assert.Equal(t, []string{"Type", "Prompt", "Content", "Timestamp"}, records[0])

	for i, item := range items {
		rec := records[i+1]
		assert.Equal(t, string(item.Type), rec[0])
		assert.Equal(t, item.Prompt, rec[1])
		assert.Equal(t, item.Content, rec[2])
		ts, err := ParseTimestamp(rec[3])
		require.NoError(t, err)
		assert.True(t, item.Timestamp.Equal(ts), "timestamp %s != %s", ts, item.Timestamp)
	}
}

func TestExport_CSVEmptyIsHeaderOnly(t *testing.T) {
	p, err := Export(FormatCSV, nil)
	require.NoError(t, err)
	assert.Equal(t, "Type,Prompt,Content,Timestamp", string(p.Data))
}

func TestExport_Markdown(t *testing.T) {
	items := []generator.Result{
		{ID: "1", Type: generator.TaskDesign, Prompt: "p1", Content: "c1"},
		{ID: "2", Type: generator.TaskSocial, Prompt: "p2", Content: "c2"},
	}

	p, err := Export(FormatMarkdown, items)
	require.NoError(t, err)
	want := "# design\n\n**Prompt:** p1\n\n**Result:**\nc1\n\n---\n" +
		"\n" +
		"# social\n\n**Prompt:** p2\n\n**Result:**\nc2\n\n---\n"
	assert.Equal(t, want, string(p.Data))
	assert.Equal(t, "promptpilot-export.md", p.Filename)
	assert.Equal(t, "text/markdown", p.ContentType)
}

func TestExport_Text(t *testing.T) {
	items := []generator.Result{
		{ID: "1", Type: generator.TaskSummary, Prompt: "p1", Content: "c1"},
	}

	p, err := Export(FormatText, items)
	require.NoError(t, err)
	assert.Equal(t, "SUMMARY\nPrompt: p1\nResult: c1\n\n---\n", string(p.Data))
	assert.Equal(t, "promptpilot-export.txt", p.Filename)
	assert.Equal(t, "text/plain", p.ContentType)
}

func TestExport_Deterministic(t *testing.T) {
	items := sampleResults()
	for _, f := range Formats() {
		a, err := Export(f, items)
		require.NoError(t, err)
		b, err := Export(f, items)
		require.NoError(t, err)
		assert.Equal(t, a, b, "format %s", f)
	}
}

func TestExport_EmptyListsAreWellFormed(t *testing.T) {
	for _, f := range Formats() {
		p, err := Export(f, []generator.Result{})
		require.NoError(t, err, "format %s", f)
		assert.NotEmpty(t, p.Filename)
	}
}

func TestSingle(t *testing.T) {
	r := generator.Result{ID: "abc", Type: generator.TaskCode, Content: "body"}
	p := Single(r)
	assert.Equal(t, "code-abc.txt", p.Filename)
	assert.Equal(t, "body", string(p.Data))
	assert.Equal(t, "text/plain", p.ContentType)
}

func TestRenderHTML(t *testing.T) {
	out, err := RenderHTML(generator.Generate(generator.TaskDesign, "landing page"))
	require.NoError(t, err)
	assert.Contains(t, out, "<h1>Design Concept</h1>")
	assert.Contains(t, out, "<h2>Color Scheme</h2>")
	assert.Contains(t, out, "<li>Hero section with compelling headline</li>")
	assert.Contains(t, out, "landing page")
}
