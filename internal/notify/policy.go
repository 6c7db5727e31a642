package notify

import (
	"github.com/oldflag2333333/opencode-notify/internal/config"
	"github.com/oldflag2333333/opencode-notify/internal/event"
	"github.com/oldflag2333333/opencode-notify/internal/focus"
	"github.com/oldflag2333333/opencode-notify/internal/opencode"
)

// Decision is the channel set an event activates.
type Decision struct {
	Toast      bool
	Banner     bool
	Bell       bool
	Suppressed bool
}

// none reports whether no channel fires.
func (d Decision) none() bool {
	return !d.Toast && !d.Banner && !d.Bell
}

// TerminalFocusedFunc answers whether any terminal emulator holds focus.
type TerminalFocusedFunc func() bool

// PaneFocusedFunc refines a positive terminal-focus verdict to this
// process's own pane.
type PaneFocusedFunc func() focus.State

// Decide maps (event, resolved session, configuration, focus providers) to
// the channels to activate. It is pure apart from the lazily invoked focus
// providers, which are only consulted when suppression is configured and
// the event kind can be suppressed.
//
// inMux reports whether this process runs inside a pane-capable
// multiplexer; it gates both the pane refinement and the bell channel.
func Decide(ev *event.Event, sess *opencode.Session, cfg *config.Config,
	terminalFocused TerminalFocusedFunc, paneFocused PaneFocusedFunc, inMux bool) Decision {

	// Per-kind gating. session.idle is always enabled.
	switch ev.Type {
	case event.KindSessionIdle:
	case event.KindSessionError:
		if !cfg.NotifyOnError || ev.Properties.Error.Aborted() {
			return Decision{}
		}
	case event.KindQuestionAsked:
		if !cfg.NotifyOnQuestion {
			return Decision{}
		}
	case event.KindPermissionUpdated, event.KindPermissionAsked:
		if !cfg.NotifyOnPermission {
			return Decision{}
		}
	default:
		return Decision{}
	}

	// Hierarchy filter, after resolution: an unresolved session never fires.
	if sess == nil {
		return Decision{}
	}
	if sess.ParentID != "" && !cfg.NotifyChildSessions {
		return Decision{}
	}

	isError := ev.Type == event.KindSessionError

	// Focus suppression applies to non-error variants only.
	suppressed := false
	if !isError && cfg.SuppressWhenFocused && terminalFocused != nil && terminalFocused() {
		suppressed = true
		if inMux && paneFocused != nil {
			// A definite NotFocused pane overrides suppression; Focused or
			// Unknown confirm it, since Unknown adds no information beyond
			// the outer verdict.
			if paneFocused() == focus.NotFocused {
				suppressed = false
			}
		}
	}

	d := Decision{Suppressed: suppressed, Bell: inMux}
	if isError {
		// Errors always banner, focus notwithstanding.
		d.Banner = true
	} else if !suppressed {
		d.Toast = true
		d.Banner = true
	}
	return d
}
