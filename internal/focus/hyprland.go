package focus

import (
	"encoding/json"
	"fmt"
	"os"
)

// hyprlandStrategy reads the active window from the Hyprland compositor.
// `hyprctl activewindow -j` prints a JSON object whose "class" field is the
// window class; when no window is active the object has no class (or the
// output is not JSON at all), which resolves to "nothing focused".
type hyprlandStrategy struct {
	run Runner
}

func newHyprlandStrategy(run Runner) *hyprlandStrategy {
	return &hyprlandStrategy{run: run}
}

func (s *hyprlandStrategy) Name() string { return "hyprland" }

func (s *hyprlandStrategy) Applicable() bool {
	return os.Getenv("HYPRLAND_INSTANCE_SIGNATURE") != ""
}

func (s *hyprlandStrategy) FocusedIdentifier() (string, error) {
	out, err := s.run("hyprctl", "activewindow", "-j")
	if err != nil {
		return "", fmt.Errorf("hyprctl: %w", err)
	}
	var win struct {
		Class string `json:"class"`
	}
	if err := json.Unmarshal(out, &win); err != nil {
		return "", fmt.Errorf("hyprctl output: %w", err)
	}
	return win.Class, nil
}
