package session

import (
	"strings"

	"github.com/oldflag2333333/opencode-notify/internal/opencode"
)

// Label derives the human-readable name of a session: title, else slug,
// else id, else the identifier the caller asked for. The result is trimmed
// and never empty as long as fallbackID is non-empty.
func Label(s *opencode.Session, fallbackID string) string {
	if s != nil {
		if t := strings.TrimSpace(s.Title); t != "" {
			return t
		}
		if sl := strings.TrimSpace(s.Slug); sl != "" {
			return sl
		}
		if id := strings.TrimSpace(s.ID); id != "" {
			return id
		}
	}
	return strings.TrimSpace(fallbackID)
}
