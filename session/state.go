package session

import "promptpilot/generator"

// State is everything the front end renders besides the results
// themselves. Update methods return a new State and never mutate the
// receiver.
type State struct {
	SelectedTask generator.TaskType `json:"selected_task"`
	Busy         bool               `json:"busy"`
	HistoryOpen  bool               `json:"history_open"`
	ExportOpen   bool               `json:"export_open"`
}

func InitialState() State {
	return State{SelectedTask: generator.TaskText}
}

func (s State) SelectTask(t generator.TaskType) State {
	s.SelectedTask = t
	return s
}

func (s State) SetBusy(busy bool) State {
	s.Busy = busy
	return s
}

func (s State) OpenHistory() State {
	s.HistoryOpen = true
	return s
}

func (s State) CloseHistory() State {
	s.HistoryOpen = false
	return s
}

func (s State) ToggleHistory() State {
	s.HistoryOpen = !s.HistoryOpen
	return s
}

func (s State) OpenExport() State {
	s.ExportOpen = true
	return s
}

func (s State) CloseExport() State {
	s.ExportOpen = false
	return s
}

func (s State) ToggleExport() State {
	s.ExportOpen = !s.ExportOpen
	return s
}

// SelectHistoryItem switches to the item's task type and closes history.
func (s State) SelectHistoryItem(r generator.Result) State {
	s.SelectedTask = r.Type
	s.HistoryOpen = false
	return s
}

// AfterClear closes the history panel once every result is gone.
func (s State) AfterClear() State {
	s.HistoryOpen = false
	return s
}
