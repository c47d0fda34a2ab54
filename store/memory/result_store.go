package memory

import (
	"sync"

	"promptpilot/generator"
	"promptpilot/store"
)

// ResultStore keeps results in memory for the lifetime of the process.
// Index 0 is always the most recent result.
type ResultStore struct {
	mu      sync.RWMutex
	results []generator.Result
}

func New() *ResultStore {
	return &ResultStore{}
}

func (s *ResultStore) Prepend(r generator.Result) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(r.ID) >= 0 {
		return store.ErrDuplicateID
	}

	s.results = append(s.results, generator.Result{})
	copy(s.results[1:], s.results)
	s.results[0] = r

	return nil
}

// Remove deletes the result with id. Missing ids are not an error.
func (s *ResultStore) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.results = append(s.results[:i], s.results[i+1:]...)
	return true
}

func (s *ResultStore) Clear() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.results)
	s.results = nil
	return n
}

func (s *ResultStore) List() []generator.Result {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]generator.Result, len(s.results))
	copy(out, s.results)
	return out
}

func (s *ResultStore) Get(id string) (generator.Result, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return generator.Result{}, false
	}
	return s.results[i], true
}

func (s *ResultStore) Latest() (generator.Result, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.results) == 0 {
		return generator.Result{}, false
	}
	return s.results[0], true
}

// Select returns the results whose id is listed, in store order. Unknown
// ids are skipped.
func (s *ResultStore) Select(ids []string) []generator.Result {
	want := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		want[id] = struct{}{}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]generator.Result, 0, len(want))
	for _, r := range s.results {
		if _, ok := want[r.ID]; ok {
			out = append(out, r)
		}
	}
	return out
}

func (s *ResultStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.results)
}

// caller holds mu
func (s *ResultStore) indexOf(id string) int {
	for i, r := range s.results {
		if r.ID == id {
			return i
		}
	}
	return -1
}

var _ store.ResultStore = (*ResultStore)(nil)
