package lifecycle

import (
	"context"

	"github.com/rohnox/mirza/internal/config"
)

// State holds the shared results of lifecycle steps. It is progressively
// populated as steps complete and read by later steps; nothing beyond the
// deployment record persists across invocations.
type State struct {
	// Record is the deployment configuration, loaded or collected by an
	// early step. Nil when no record exists and none was collected.
	Record *config.Record

	// PHPVersion is the detected runtime version, e.g. "8.2".
	PHPVersion string

	// Warnings collects tolerated step failures for the final summary.
	Warnings []string
}

// Warn records a tolerated failure for the summary.
func (s *State) Warn(msg string) {
	s.Warnings = append(s.Warnings, msg)
}

// Context wraps the dependencies and state shared by the steps of one
// lifecycle operation.
type Context struct {
	context.Context
	State    *State
	Observer Observer
}

// NewContext creates a context for one lifecycle operation.
func NewContext(ctx context.Context) *Context {
	return &Context{
		Context:  ctx,
		State:    &State{},
		Observer: NewConsoleObserver(),
	}
}
