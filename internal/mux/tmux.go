package mux

import (
	"strings"

	"go.uber.org/zap"

	"github.com/oldflag2333333/opencode-notify/internal/focus"
)

// tmux refines pane focus through tmux format strings: a pane has the
// user's attention when it is the active pane of the active window.
type tmux struct {
	pane string
	run  focus.Runner
	log  *zap.SugaredLogger
}

func newTmux(pane string, run focus.Runner, log *zap.SugaredLogger) *tmux {
	return &tmux{pane: pane, run: run, log: log}
}

func (t *tmux) Name() string   { return "tmux" }
func (t *tmux) PaneID() string { return t.pane }
func (t *tmux) Bell() error    { return ringBell() }

func (t *tmux) CurrentPaneFocused() focus.State {
	out, err := t.run("tmux", "display-message", "-p", "-t", t.pane,
		"#{pane_active} #{window_active}")
	if err != nil {
		t.log.Debugw("tmux display-message failed", "error", err)
		return focus.Unknown
	}
	fields := strings.Fields(string(out))
	if len(fields) != 2 {
		return focus.Unknown
	}
	if fields[0] == "1" && fields[1] == "1" {
		return focus.Focused
	}
	return focus.NotFocused
}
