// Package mux deals with pane-capable terminal multiplexers. When this
// process runs inside one, the outer focus verdict ("some terminal is
// focused") can be refined to "this specific pane is focused", and the
// multiplexer's attention bell becomes available as a side channel.
package mux

import (
	"os"

	"go.uber.org/zap"

	"github.com/oldflag2333333/opencode-notify/internal/focus"
)

// Multiplexer is the introspection surface of the terminal hosting this
// process.
type Multiplexer interface {
	// Name identifies the multiplexer in diagnostics.
	Name() string

	// PaneID is the environment-provided id of the pane hosting this process.
	PaneID() string

	// CurrentPaneFocused reports whether this pane holds focus. Unknown means
	// the query yielded no additional information and callers must keep the
	// outer focus verdict.
	CurrentPaneFocused() focus.State

	// Bell raises the multiplexer's attention signal for this pane.
	Bell() error
}

// Detect returns the multiplexer hosting this process, or nil when the
// environment provides no pane id.
func Detect(log *zap.SugaredLogger) Multiplexer {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	if id := os.Getenv("KITTY_WINDOW_ID"); id != "" {
		return newKitty(id, focus.ExecRunner, log)
	}
	if id := os.Getenv("TMUX_PANE"); id != "" && os.Getenv("TMUX") != "" {
		return newTmux(id, focus.ExecRunner, log)
	}
	return nil
}
