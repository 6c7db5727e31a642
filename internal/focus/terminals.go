package focus

import (
	"strings"
	"unicode"

	"github.com/samber/lo"
)

// shortNames are canonical terminal emulator names, matched either exactly
// or as a token inside a longer identifier (so bundle-id variants like
// org.foo.alacritty still match).
var shortNames = map[string]bool{
	"alacritty":  true,
	"kitty":      true,
	"wezterm":    true,
	"ghostty":    true,
	"foot":       true,
	"konsole":    true,
	"iterm2":     true,
	"terminal":   true,
	"terminator": true,
	"warp":       true,
	"rio":        true,
	"tilix":      true,
	"xterm":      true,
	"urxvt":      true,
	"hyper":      true,
	"st":         true,
	"zellij":     true,
	"tmux":       true,
}

// bundleIDs are reverse-DNS identifiers reported by compositors and macOS
// for the same emulators.
var bundleIDs = map[string]bool{
	"org.wezfurlong.wezterm": true,
	"net.kovidgoyal.kitty":   true,
	"com.mitchellh.ghostty":  true,
	"com.googlecode.iterm2":  true,
	"com.apple.terminal":     true,
	"dev.warp.warp-stable":   true,
	"org.alacritty":          true,
	"io.alacritty":           true,
	"org.codeberg.dnkl.foot": true,
	"org.kde.konsole":        true,
	"org.gnome.terminal":     true,
	"com.raphaelamorim.rio":  true,
	"com.gexperts.tilix":     true,
	"org.gnome.ptyxis":       true,
}

// IsKnownTerminal reports whether identifier names a terminal emulator.
// Matching is case-insensitive: first an exact check against canonical
// names and bundle ids, then a token scan over non-alphanumeric boundaries.
func IsKnownTerminal(identifier string) bool {
	id := strings.ToLower(strings.TrimSpace(identifier))
	if id == "" {
		return false
	}
	if shortNames[id] || bundleIDs[id] {
		return true
	}
	tokens := strings.FieldsFunc(id, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	return lo.SomeBy(tokens, func(tok string) bool { return shortNames[tok] })
}
