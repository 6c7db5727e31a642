package notify

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
)

// appName is the application identifier handed to the OS notification
// facility.
const appName = "opencode"

// Sender delivers a desktop banner through the platform's notification
// facility.
type Sender interface {
	// Send shows the banner. Failures are reported, never fatal.
	Send(n Notification) error

	// Available reports whether the facility exists on this machine.
	Available() bool

	// Name identifies the sender in diagnostics.
	Name() string
}

// NewSender picks the sender for the current OS. Platforms with no known
// notification facility get a no-op sender.
func NewSender() Sender {
	switch runtime.GOOS {
	case "darwin":
		return &darwinSender{available: toolAvailable("osascript")}
	case "linux":
		return &linuxSender{available: toolAvailable("notify-send") && hasDisplay()}
	default:
		return &noopSender{}
	}
}

func toolAvailable(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

func hasDisplay() bool {
	return os.Getenv("DISPLAY") != "" || os.Getenv("WAYLAND_DISPLAY") != ""
}

// noopSender swallows banners on platforms without a notification facility.
type noopSender struct{}

func (s *noopSender) Send(_ Notification) error { return nil }
func (s *noopSender) Available() bool           { return false }
func (s *noopSender) Name() string              { return "none" }

// darwinSender shows banners through osascript's display notification
// directive.
type darwinSender struct {
	available bool
}

func (s *darwinSender) Name() string    { return "osascript" }
func (s *darwinSender) Available() bool { return s.available }

func (s *darwinSender) Send(n Notification) error {
	if !s.available {
		return nil
	}
	script := fmt.Sprintf(`display notification "%s" with title "%s"`,
		escapeAppleScript(n.Message), escapeAppleScript(n.Title))
	return exec.Command("osascript", "-e", script).Run()
}

// escapeAppleScript escapes the characters AppleScript string literals
// would otherwise misinterpret. Backslash must go first.
func escapeAppleScript(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return s
}

// linuxSender shows banners through notify-send with the app name,
// desktop-entry hint, and icon the desktop environment uses to attribute
// and render them.
type linuxSender struct {
	available bool
}

func (s *linuxSender) Name() string    { return "notify-send" }
func (s *linuxSender) Available() bool { return s.available }

func (s *linuxSender) Send(n Notification) error {
	if !s.available {
		return nil
	}
	urgency := "normal"
	if n.Variant == VariantError {
		urgency = "critical"
	}
	args := []string{
		"--app-name=" + appName,
		"--icon=" + iconPath(),
		"-h", "string:desktop-entry:" + appName,
		"-u", urgency,
		n.Title,
		n.Message,
	}
	return exec.Command("notify-send", args...).Run()
}

// iconPath returns the icon to attach to Linux banners, falling back to a
// stock icon name when no app icon is installed.
func iconPath() string {
	candidates := []string{
		"/usr/share/icons/hicolor/scalable/apps/opencode.svg",
		"/usr/share/pixmaps/opencode.png",
	}
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return "dialog-information"
}
