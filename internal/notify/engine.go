package notify

import (
	"context"

	"go.uber.org/zap"

	"github.com/oldflag2333333/opencode-notify/internal/config"
	"github.com/oldflag2333333/opencode-notify/internal/event"
	"github.com/oldflag2333333/opencode-notify/internal/opencode"
)

// SessionSource resolves a session id to a snapshot, or nil when the id
// cannot be resolved.
type SessionSource interface {
	Resolve(ctx context.Context, id string) *opencode.Session
}

// Engine runs the full pipeline for one raw event: parse, resolve, decide,
// build, dispatch. It is safe for concurrent use; the config is read-only
// and session snapshots are never shared across events.
type Engine struct {
	cfg             *config.Config
	sessions        SessionSource
	dispatcher      *Dispatcher
	terminalFocused TerminalFocusedFunc
	paneFocused     PaneFocusedFunc
	inMux           bool
	log             *zap.SugaredLogger
}

// NewEngine assembles a pipeline. paneFocused may be nil when the process
// is not hosted by a multiplexer (inMux false).
func NewEngine(cfg *config.Config, sessions SessionSource, dispatcher *Dispatcher,
	terminalFocused TerminalFocusedFunc, paneFocused PaneFocusedFunc, inMux bool,
	log *zap.SugaredLogger) *Engine {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Engine{
		cfg:             cfg,
		sessions:        sessions,
		dispatcher:      dispatcher,
		terminalFocused: terminalFocused,
		paneFocused:     paneFocused,
		inMux:           inMux,
		log:             log,
	}
}

// Handle processes one raw event document. Undecodable and unhandled events
// are skipped; no failure in the pipeline is ever surfaced.
func (e *Engine) Handle(ctx context.Context, raw []byte) {
	ev, err := event.Parse(raw)
	if err != nil {
		e.log.Debugw("skipping event", "error", err)
		return
	}

	sess := e.sessions.Resolve(ctx, ev.Properties.SessionID)

	dec := Decide(ev, sess, e.cfg, e.terminalFocused, e.paneFocused, e.inMux)
	if dec.none() {
		e.log.Debugw("no channels activated", "event", ev.Type, "session", ev.Properties.SessionID)
		return
	}

	n := Build(ev, sess, ev.Properties.SessionID)
	e.log.Debugw("dispatching",
		"event", ev.Type,
		"title", n.Title,
		"toast", dec.Toast,
		"banner", dec.Banner,
		"bell", dec.Bell,
		"suppressed", dec.Suppressed,
	)
	e.dispatcher.Dispatch(ctx, n, dec)
}
