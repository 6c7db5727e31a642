// Package notify holds the decision logic and the delivery fan-out: which
// channels an agent event activates, and how each channel is executed with
// independent failure isolation.
package notify

import (
	"strings"
	"unicode/utf8"

	"github.com/oldflag2333333/opencode-notify/internal/event"
	"github.com/oldflag2333333/opencode-notify/internal/opencode"
	"github.com/oldflag2333333/opencode-notify/internal/session"
)

// Variant is the severity a channel renders the notification with.
type Variant string

const (
	VariantInfo    Variant = "info"
	VariantWarning Variant = "warning"
	VariantError   Variant = "error"
)

// maxBodyLen caps the notification body. Longer bodies get their tail
// replaced by an ellipsis.
const maxBodyLen = 100

// Notification is the payload handed to every activated channel.
type Notification struct {
	Title   string
	Message string
	Variant Variant
}

// Build maps an event and its resolved session to the text of the
// notification. fallbackID is the identifier from the event, used when the
// session snapshot carries no usable name.
func Build(ev *event.Event, sess *opencode.Session, fallbackID string) Notification {
	label := session.Label(sess, fallbackID)
	switch ev.Type {
	case event.KindSessionError:
		return Notification{
			Title:   "Agent hit an error",
			Message: Truncate(label + ": " + errorText(ev.Properties.Error)),
			Variant: VariantError,
		}
	case event.KindQuestionAsked:
		return Notification{
			Title:   "Agent has a question",
			Message: Truncate(label),
			Variant: VariantInfo,
		}
	case event.KindPermissionUpdated, event.KindPermissionAsked:
		msg := label
		if detail := permissionDetail(ev); detail != "" {
			msg += ": " + detail
		}
		return Notification{
			Title:   "Agent needs permission",
			Message: Truncate(msg),
			Variant: VariantWarning,
		}
	default: // session.idle
		return Notification{
			Title:   "Agent is ready for input",
			Message: Truncate(label),
			Variant: VariantInfo,
		}
	}
}

// Truncate caps s at maxBodyLen characters, replacing the final three with
// an ellipsis when it has to cut. Counting is per rune so multibyte text is
// neither cut early nor split mid-sequence.
func Truncate(s string) string {
	if utf8.RuneCountInString(s) <= maxBodyLen {
		return s
	}
	runes := []rune(s)
	return string(runes[:maxBodyLen-3]) + "..."
}

func permissionDetail(ev *event.Event) string {
	if ev.Properties.Title != "" {
		return ev.Properties.Title
	}
	return ev.Properties.Permission
}

// errorText renders the error payload: a headline derived from the error
// type, then the message when one is present.
func errorText(e *event.ErrorInfo) string {
	headline := "Error"
	if e != nil && e.Type != "" {
		switch t := strings.ToLower(e.Type); t {
		case "api":
			headline = "API error"
		case "unknown":
			headline = "Unknown error"
		default:
			headline = strings.ToUpper(t[:1]) + t[1:] + " error"
		}
	}
	if e != nil && e.Data.Message != "" {
		return headline + ": " + e.Data.Message
	}
	return headline
}
