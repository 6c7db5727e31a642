// Package focus answers one question: does a terminal emulator currently
// have the user's attention?
//
// Detection is environment-specific. Each desktop environment gets its own
// Strategy; the Detector walks them in priority order and uses the first
// one whose discriminator is present. Environments nobody recognizes are
// treated as not focused, so an unknown desktop never silently swallows a
// notification.
package focus

import (
	"os/exec"

	"go.uber.org/zap"
)

// State is the tri-state focus verdict. Unknown only arises from pane-level
// refinement, when a query succeeds but cannot disambiguate panes; it must
// never be conflated with either boolean answer.
type State int

const (
	Unknown State = iota
	NotFocused
	Focused
)

func (s State) String() string {
	switch s {
	case Focused:
		return "focused"
	case NotFocused:
		return "not-focused"
	default:
		return "unknown"
	}
}

// Runner executes an external query tool and returns its stdout. It exists
// so tests can script tool output.
type Runner func(name string, args ...string) ([]byte, error)

// ExecRunner is the production Runner.
var ExecRunner Runner = func(name string, args ...string) ([]byte, error) {
	return exec.Command(name, args...).Output()
}

// Strategy detects the identifier of the currently focused window in one
// specific environment.
type Strategy interface {
	// Name identifies the strategy in diagnostics.
	Name() string

	// Applicable reports whether this environment's discriminator is present.
	Applicable() bool

	// FocusedIdentifier returns the window class / app id / process name of
	// whatever has input focus. An empty string means nothing is focused.
	FocusedIdentifier() (string, error)
}

// Detector decides whether any terminal emulator is the foreground window.
type Detector struct {
	strategies []Strategy
	log        *zap.SugaredLogger
}

// NewDetector builds a detector with the standard strategy order:
// Hyprland, then niri, then macOS.
func NewDetector(log *zap.SugaredLogger) *Detector {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Detector{
		strategies: []Strategy{
			newHyprlandStrategy(ExecRunner),
			newNiriStrategy(ExecRunner),
			newDarwinStrategy(ExecRunner),
		},
		log: log,
	}
}

// NewDetectorWithStrategies builds a detector over an explicit strategy
// list, for tests and diagnostics.
func NewDetectorWithStrategies(log *zap.SugaredLogger, strategies ...Strategy) *Detector {
	d := NewDetector(log)
	d.strategies = strategies
	return d
}

// ActiveStrategy returns the first applicable strategy, if any.
func (d *Detector) ActiveStrategy() (Strategy, bool) {
	for _, s := range d.strategies {
		if s.Applicable() {
			return s, true
		}
	}
	return nil, false
}

// TerminalFocused reports whether the foreground window is a known terminal
// emulator. Any tool failure resolves to false; the detector never errors.
func (d *Detector) TerminalFocused() bool {
	s, ok := d.ActiveStrategy()
	if !ok {
		return false
	}
	id, err := s.FocusedIdentifier()
	if err != nil {
		d.log.Debugw("focus query failed", "strategy", s.Name(), "error", err)
		return false
	}
	d.log.Debugw("focused window", "strategy", s.Name(), "identifier", id)
	return IsKnownTerminal(id)
}
