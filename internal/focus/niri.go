package focus

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// niriStrategy reads the focused window from the niri compositor over its
// IPC socket. `niri msg --json focused-window` prints either a window
// object with an "app_id" field or the literal `null` when nothing holds
// focus.
type niriStrategy struct {
	run Runner
}

func newNiriStrategy(run Runner) *niriStrategy {
	return &niriStrategy{run: run}
}

func (s *niriStrategy) Name() string { return "niri" }

func (s *niriStrategy) Applicable() bool {
	return os.Getenv("NIRI_SOCKET") != ""
}

func (s *niriStrategy) FocusedIdentifier() (string, error) {
	out, err := s.run("niri", "msg", "--json", "focused-window")
	if err != nil {
		return "", fmt.Errorf("niri msg: %w", err)
	}
	if string(bytes.TrimSpace(out)) == "null" {
		return "", nil
	}
	var win struct {
		AppID string `json:"app_id"`
	}
	if err := json.Unmarshal(out, &win); err != nil {
		return "", fmt.Errorf("niri output: %w", err)
	}
	return win.AppID, nil
}
