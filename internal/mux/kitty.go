package mux

import (
	"encoding/json"
	"strconv"

	"go.uber.org/zap"

	"github.com/oldflag2333333/opencode-notify/internal/focus"
)

// kitty introspects the kitty terminal through its remote-control protocol.
// `kitten @ ls` prints the nested OS-window → tab → window structure, each
// level carrying an is_focused flag; kitty calls its panes "windows" and
// hands us our own id in KITTY_WINDOW_ID.
type kitty struct {
	pane string
	run  focus.Runner
	log  *zap.SugaredLogger
}

func newKitty(pane string, run focus.Runner, log *zap.SugaredLogger) *kitty {
	return &kitty{pane: pane, run: run, log: log}
}

func (k *kitty) Name() string   { return "kitty" }
func (k *kitty) PaneID() string { return k.pane }
func (k *kitty) Bell() error    { return ringBell() }

type kittyWindow struct {
	ID        int  `json:"id"`
	IsFocused bool `json:"is_focused"`
}

type kittyTab struct {
	IsFocused bool          `json:"is_focused"`
	Windows   []kittyWindow `json:"windows"`
}

type kittyOSWindow struct {
	IsFocused bool       `json:"is_focused"`
	Tabs      []kittyTab `json:"tabs"`
}

// CurrentPaneFocused asks kitty which window holds focus and compares it to
// our own id. The focused-state filter is tried first; if it yields nothing
// the full listing is scanned. When no window claims focus at all, the
// first enumerable window id stands in as a "probably focused" heuristic.
func (k *kitty) CurrentPaneFocused() focus.State {
	own, err := strconv.Atoi(k.pane)
	if err != nil {
		return focus.Unknown
	}

	windows, err := k.list("--match", "state:focused")
	if err != nil || len(windows) == 0 {
		windows, err = k.list()
		if err != nil {
			k.log.Debugw("kitty ls failed", "error", err)
			return focus.Unknown
		}
	}
	if len(windows) == 0 {
		return focus.Unknown
	}

	focusedID, found := -1, false
	for _, osw := range windows {
		for _, tab := range osw.Tabs {
			for _, win := range tab.Windows {
				if osw.IsFocused && tab.IsFocused && win.IsFocused {
					focusedID, found = win.ID, true
				}
			}
		}
	}
	if !found {
		// Nothing claims focus; assume the first pane is the watched one.
		for _, osw := range windows {
			for _, tab := range osw.Tabs {
				for _, win := range tab.Windows {
					focusedID, found = win.ID, true
					break
				}
				if found {
					break
				}
			}
			if found {
				break
			}
		}
	}
	if !found {
		return focus.Unknown
	}
	if focusedID == own {
		return focus.Focused
	}
	return focus.NotFocused
}

func (k *kitty) list(match ...string) ([]kittyOSWindow, error) {
	args := append([]string{"@", "ls"}, match...)
	out, err := k.run("kitten", args...)
	if err != nil {
		return nil, err
	}
	var windows []kittyOSWindow
	if err := json.Unmarshal(out, &windows); err != nil {
		return nil, err
	}
	return windows, nil
}
