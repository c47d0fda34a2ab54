package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"promptpilot/exporter"
	"promptpilot/generator"
	"promptpilot/sink"
	"promptpilot/store"
)

var ErrSinkUnavailable = errors.New("sink not configured")

// Submitter is the request orchestrator as seen by the session.
type Submitter interface {
	Submit(ctx context.Context, task generator.TaskType, prompt string) (generator.Result, error)
	Busy() bool
}

type Deps struct {
	Agent     Submitter
	Store     store.ResultStore
	Saver     sink.Saver
	Clipboard sink.Clipboard
	Sharer    sink.Sharer
	Log       *zap.Logger
}

// Session is the root controller. It owns the application state and
// forwards user intents to the core components.
type Session struct {
	agent     Submitter
	store     store.ResultStore
	saver     sink.Saver
	clipboard sink.Clipboard
	sharer    sink.Sharer
	log       *zap.Logger

	mu       sync.Mutex
	state    State
	inflight atomic.Bool
}

func New(d Deps) (*Session, error) {
	if d.Agent == nil {
		return nil, errors.New("agent is required")
	}
	if d.Store == nil {
		return nil, errors.New("result store is required")
	}
	if d.Log == nil {
		d.Log = zap.NewNop()
	}
	return &Session{
		agent:     d.Agent,
		store:     d.Store,
		saver:     d.Saver,
		clipboard: d.Clipboard,
		sharer:    d.Sharer,
		log:       d.Log,
		state:     InitialState(),
	}, nil
}

// State returns a snapshot of the session state.
func (s *Session) State() State {
	s.mu.Lock()
	st := s.state
	s.mu.Unlock()
	return st.SetBusy(s.inflight.Load() || s.agent.Busy())
}

// Apply runs a pure update against the state and returns the result.
func (s *Session) Apply(update func(State) State) State {
	s.mu.Lock()
	s.state = update(s.state)
	s.mu.Unlock()
	return s.State()
}

func (s *Session) SelectTask(t generator.TaskType) (State, error) {
	if !t.Valid() {
		return State{}, fmt.Errorf("%w: %q", generator.ErrUnknownTaskType, string(t))
	}
	return s.Apply(func(st State) State { return st.SelectTask(t) }), nil
}

// Panel opens, closes or toggles the history or export panel.
func (s *Session) Panel(panel, op string) (State, error) {
	var update func(State) State
	switch panel {
	case "history":
		switch op {
		case "open":
			update = State.OpenHistory
		case "close":
			update = State.CloseHistory
		case "toggle":
			update = State.ToggleHistory
		}
	case "export":
		switch op {
		case "open":
			update = State.OpenExport
		case "close":
			update = State.CloseExport
		case "toggle":
			update = State.ToggleExport
		}
	default:
		return State{}, fmt.Errorf("%w: %q", ErrUnknownPanel, panel)
	}
	if update == nil {
		return State{}, fmt.Errorf("%w: %q", ErrUnknownOp, op)
	}
	return s.Apply(update), nil
}

// Submit generates a result for the currently selected task.
func (s *Session) Submit(ctx context.Context, prompt string) (generator.Result, error) {
	s.mu.Lock()
	task := s.state.SelectedTask
	s.mu.Unlock()
	return s.SubmitAs(ctx, task, prompt)
}

// SubmitAs generates a result for task. Only one submission runs at a
// time; the others get ErrBusy.
func (s *Session) SubmitAs(ctx context.Context, task generator.TaskType, prompt string) (generator.Result, error) {
	if !s.inflight.CompareAndSwap(false, true) {
		return generator.Result{}, ErrBusy
	}
	defer s.inflight.Store(false)

	return s.agent.Submit(ctx, task, prompt)
}

// History lists results matching q, newest first.
func (s *Session) History(q store.Query) []generator.Result {
	return store.Filter(s.store.List(), q)
}

func (s *Session) Result(id string) (generator.Result, error) {
	r, ok := s.store.Get(id)
	if !ok {
		return generator.Result{}, ErrNotFound
	}
	return r, nil
}

// Delete removes one result; unknown ids are ignored.
func (s *Session) Delete(id string) bool {
	removed := s.store.Remove(id)
	if removed {
		s.log.Info("result deleted", zap.String("id", id))
	}
	return removed
}

func (s *Session) Clear() int {
	n := s.store.Clear()
	s.Apply(State.AfterClear)
	s.log.Info("history cleared", zap.Int("removed", n))
	return n
}

func (s *Session) SelectHistoryItem(id string) (State, error) {
	r, err := s.Result(id)
	if err != nil {
		return State{}, err
	}
	return s.Apply(func(st State) State { return st.SelectHistoryItem(r) }), nil
}

// Export serializes the selected results, or all of them when ids is
// empty, and closes the export panel.
func (s *Session) Export(format exporter.Format, ids []string) (exporter.Payload, error) {
	items := s.store.List()
	if len(ids) > 0 {
		items = s.store.Select(ids)
	}
	p, err := exporter.Export(format, items)
	if err != nil {
		return exporter.Payload{}, err
	}
	s.Apply(State.CloseExport)
	return p, nil
}

func (s *Session) SaveExport(ctx context.Context, format exporter.Format, ids []string) (string, error) {
	p, err := s.Export(format, ids)
	if err != nil {
		return "", err
	}
	return s.save(ctx, p)
}

func (s *Session) Download(id string) (exporter.Payload, error) {
	r, err := s.Result(id)
	if err != nil {
		return exporter.Payload{}, err
	}
	return exporter.Single(r), nil
}

func (s *Session) SaveDownload(ctx context.Context, id string) (string, error) {
	p, err := s.Download(id)
	if err != nil {
		return "", err
	}
	return s.save(ctx, p)
}

func (s *Session) Copy(ctx context.Context, id string) error {
	r, err := s.Result(id)
	if err != nil {
		return err
	}
	if s.clipboard == nil {
		return fmt.Errorf("clipboard: %w", ErrSinkUnavailable)
	}
	if err := s.clipboard.Copy(ctx, r.Content); err != nil {
		s.log.Warn("copy failed", zap.String("id", id), zap.Error(err))
		return fmt.Errorf("copy: %w", err)
	}
	return nil
}

func (s *Session) Share(ctx context.Context, id string) (sink.ShareOutcome, error) {
	r, err := s.Result(id)
	if err != nil {
		return sink.ShareOutcome{}, err
	}
	return s.share(ctx, r)
}

// ShareLatest shares the most recent result.
func (s *Session) ShareLatest(ctx context.Context) (sink.ShareOutcome, error) {
	r, ok := s.store.Latest()
	if !ok {
		return sink.ShareOutcome{}, ErrNoResults
	}
	return s.share(ctx, r)
}

func (s *Session) share(ctx context.Context, r generator.Result) (sink.ShareOutcome, error) {
	if s.sharer == nil {
		return sink.ShareOutcome{}, fmt.Errorf("share: %w", ErrSinkUnavailable)
	}
	out, err := s.sharer.Share(ctx, sink.ShareRequest{
		ID:    r.ID,
		Title: fmt.Sprintf("%s Result", r.Type),
		Text:  r.Content,
	})
	if err != nil {
		s.log.Warn("share failed", zap.String("id", r.ID), zap.Error(err))
		return sink.ShareOutcome{}, fmt.Errorf("share: %w", err)
	}
	s.log.Info("result shared", zap.String("id", r.ID), zap.String("method", out.Method))
	return out, nil
}

func (s *Session) save(ctx context.Context, p exporter.Payload) (string, error) {
	if s.saver == nil {
		return "", fmt.Errorf("save: %w", ErrSinkUnavailable)
	}
	path, err := s.saver.Save(ctx, p)
	if err != nil {
		s.log.Warn("save failed", zap.String("file", p.Filename), zap.Error(err))
		return "", fmt.Errorf("save: %w", err)
	}
	s.log.Info("payload saved", zap.String("path", path), zap.Int("bytes", len(p.Data)))
	return path, nil
}
