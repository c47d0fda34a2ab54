package session

import "errors"

var (
	ErrBusy         = errors.New("a submission is already in progress")
	ErrNotFound     = errors.New("result not found")
	ErrNoResults    = errors.New("no results yet")
	ErrUnknownPanel = errors.New("unknown panel")
	ErrUnknownOp    = errors.New("unknown panel operation")
)
