package focus

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"howett.net/plist"
)

// darwinStrategy asks System Events for the frontmost process. The process
// name alone matches most emulators; when the app bundle path is obtainable
// the strategy upgrades the identifier to the bundle's CFBundleIdentifier,
// which is what the reverse-DNS entries in the known-terminal set expect.
type darwinStrategy struct {
	run       Runner
	goos      string
	readPlist func(path string) (string, error)
}

func newDarwinStrategy(run Runner) *darwinStrategy {
	return &darwinStrategy{run: run, goos: runtime.GOOS, readPlist: bundleIdentifier}
}

func (s *darwinStrategy) Name() string { return "macos" }

func (s *darwinStrategy) Applicable() bool {
	return s.goos == "darwin"
}

func (s *darwinStrategy) FocusedIdentifier() (string, error) {
	out, err := s.run("osascript", "-e",
		`tell application "System Events" to get name of first application process whose frontmost is true`)
	if err != nil {
		return "", fmt.Errorf("osascript: %w", err)
	}
	name := strings.TrimSpace(string(out))
	if name == "" {
		return "", nil
	}
	if id := s.frontmostBundleID(); id != "" {
		return id, nil
	}
	return name, nil
}

// frontmostBundleID resolves the frontmost app's bundle identifier from its
// Info.plist. Every failure falls back to the bare process name.
func (s *darwinStrategy) frontmostBundleID() string {
	out, err := s.run("osascript", "-e",
		`tell application "System Events" to get POSIX path of application file of first application process whose frontmost is true`)
	if err != nil {
		return ""
	}
	appPath := strings.TrimSpace(string(out))
	if appPath == "" {
		return ""
	}
	id, err := s.readPlist(filepath.Join(appPath, "Contents", "Info.plist"))
	if err != nil {
		return ""
	}
	return id
}

func bundleIdentifier(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	var info struct {
		CFBundleIdentifier string `plist:"CFBundleIdentifier"`
	}
	if _, err := plist.Unmarshal(data, &info); err != nil {
		return "", err
	}
	return info.CFBundleIdentifier, nil
}
