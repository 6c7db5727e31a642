package cli

import (
	"github.com/oldflag2333333/opencode-notify/internal/focus"
	"github.com/oldflag2333333/opencode-notify/internal/mux"
	"github.com/oldflag2333333/opencode-notify/internal/notify"
	"github.com/oldflag2333333/opencode-notify/internal/opencode"
	"github.com/oldflag2333333/opencode-notify/internal/session"
)

// newEngine assembles the event pipeline from the process environment:
// server client, session resolver, focus detector, hosting multiplexer,
// and the channel dispatcher.
func newEngine(globals *Globals) (*notify.Engine, *opencode.Client) {
	log := globals.logger.Sugared()

	client := opencode.New(globals.Server)
	resolver := session.NewResolver(client, globals.Directory, log)
	detector := focus.NewDetector(log)

	m := mux.Detect(log)
	var paneFocused notify.PaneFocusedFunc
	var bell notify.Beller
	if m != nil {
		paneFocused = m.CurrentPaneFocused
		bell = m
	}

	dispatcher := notify.NewDispatcher(client, notify.NewSender(), bell, globals.Directory, log)
	engine := notify.NewEngine(globals.Config, resolver, dispatcher,
		detector.TerminalFocused, paneFocused, m != nil, log)
	return engine, client
}
