package generator

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultMaxPromptLength matches the character counter of the prompt input.
const DefaultMaxPromptLength = 1000

var (
	ErrEmptyPrompt   = errors.New("prompt is empty")
	ErrPromptTooLong = errors.New("prompt is too long")
	// ErrGeneration wraps every failure of the completer itself.
	ErrGeneration = errors.New("generation failed")
)

// ResultSink receives every result the agent produces.
type ResultSink interface {
	Prepend(result Result) error
}

// Agent turns a task type and prompt into a stored Result.
type Agent struct {
	llm       Completer
	sink      ResultSink
	log       *zap.Logger
	maxPrompt int
	busy      atomic.Bool
	now       func() time.Time
	newID     func() (string, error)
}

type AgentOption func(*Agent)

// WithLogger sets the logger; nil keeps the no-op logger.
func WithLogger(l *zap.Logger) AgentOption {
	return func(a *Agent) {
		if l != nil {
			a.log = l
		}
	}
}

// WithMaxPromptLength caps prompts at n characters; n <= 0 disables the cap.
func WithMaxPromptLength(n int) AgentOption {
	return func(a *Agent) { a.maxPrompt = n }
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) AgentOption {
	return func(a *Agent) { a.now = now }
}

func NewAgent(llm Completer, sink ResultSink, opts ...AgentOption) (*Agent, error) {
	if llm == nil {
		return nil, errors.New("llm client is required")
	}
	if sink == nil {
		return nil, errors.New("result sink is required")
	}
	a := &Agent{
		llm:       llm,
		sink:      sink,
		log:       zap.NewNop(),
		maxPrompt: DefaultMaxPromptLength,
		now:       time.Now,
		newID:     newResultID,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// Busy reports whether a submission is in flight.
func (a *Agent) Busy() bool {
	return a.busy.Load()
}

// Submit validates the prompt, waits for the completer and prepends the
// new result to the sink. A started submission is not cancelled when ctx
// is; it always runs to completion.
func (a *Agent) Submit(ctx context.Context, task TaskType, rawPrompt string) (Result, error) {
	prompt := strings.TrimSpace(rawPrompt)
	if prompt == "" {
		submissionsRejected.WithLabelValues("empty_prompt").Inc()
		return Result{}, ErrEmptyPrompt
	}
	if !task.Valid() {
		submissionsRejected.WithLabelValues("unknown_type").Inc()
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownTaskType, string(task))
	}
	if a.maxPrompt > 0 && utf8.RuneCountInString(prompt) > a.maxPrompt {
		submissionsRejected.WithLabelValues("too_long").Inc()
		return Result{}, fmt.Errorf("%w: %d characters, limit %d", ErrPromptTooLong, utf8.RuneCountInString(prompt), a.maxPrompt)
	}

	a.busy.Store(true)
	defer a.busy.Store(false)

	start := time.Now()
	raw, err := a.llm.Complete(context.WithoutCancel(ctx), BuildPrompt(task, prompt))
	generationDuration.WithLabelValues(string(task)).Observe(time.Since(start).Seconds())
	if err != nil {
		submissionsRejected.WithLabelValues("completer_error").Inc()
		a.log.Error("generation failed", zap.String("type", string(task)), zap.Error(err))
		return Result{}, fmt.Errorf("%w: %s: %w", ErrGeneration, task, err)
	}
	content, err := PostProcess(raw)
	if err != nil {
		submissionsRejected.WithLabelValues("empty_content").Inc()
		return Result{}, fmt.Errorf("%w: %w", ErrGeneration, err)
	}

	id, err := a.newID()
	if err != nil {
		return Result{}, fmt.Errorf("result id: %w", err)
	}
	result := Result{
		ID:        id,
		Type:      task,
		Prompt:    prompt,
		Content:   content,
		Timestamp: a.now().UTC().Truncate(time.Millisecond),
	}
	if err := a.sink.Prepend(result); err != nil {
		return Result{}, fmt.Errorf("store result: %w", err)
	}

	resultsGenerated.WithLabelValues(string(task)).Inc()
	a.log.Info("result generated",
		zap.String("id", result.ID),
		zap.String("type", string(task)),
		zap.Int("prompt_len", len(prompt)),
		zap.Duration("took", time.Since(start)),
	)
	return result, nil
}

// result ids are UUIDv7, so they sort by creation time
func newResultID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}
