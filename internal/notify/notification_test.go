package notify

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"github.com/oldflag2333333/opencode-notify/internal/event"
	"github.com/oldflag2333333/opencode-notify/internal/opencode"
)

func idleEvent(id string) *event.Event {
	return &event.Event{Type: event.KindSessionIdle, Properties: event.Properties{SessionID: id}}
}

func errorEvent(id, errType, msg string) *event.Event {
	return &event.Event{
		Type: event.KindSessionError,
		Properties: event.Properties{
			SessionID: id,
			Error:     &event.ErrorInfo{Type: errType, Data: event.ErrorData{Message: msg}},
		},
	}
}

func TestTruncate(t *testing.T) {
	t.Run("short strings untouched", func(t *testing.T) {
		assert.Equal(t, "hello", Truncate("hello"))
	})

	t.Run("exactly 100 untouched", func(t *testing.T) {
		s := strings.Repeat("a", 100)
		assert.Equal(t, s, Truncate(s))
	})

	t.Run("long strings cut to 100 with ellipsis", func(t *testing.T) {
		s := strings.Repeat("a", 150)
		got := Truncate(s)
		assert.Len(t, got, 100)
		assert.Equal(t, strings.Repeat("a", 97)+"...", got)
	})

	t.Run("multibyte strings measured in runes, not bytes", func(t *testing.T) {
		// 60 runes, 120 bytes: under the cap, must pass untouched.
		s := strings.Repeat("é", 60)
		assert.Equal(t, s, Truncate(s))
	})

	t.Run("multibyte cut lands on a rune boundary", func(t *testing.T) {
		got := Truncate(strings.Repeat("é", 150))
		assert.True(t, utf8.ValidString(got))
		assert.Equal(t, 100, utf8.RuneCountInString(got))
		assert.Equal(t, strings.Repeat("é", 97)+"...", got)
	})
}

func TestBuildIdle(t *testing.T) {
	n := Build(idleEvent("s1"), &opencode.Session{ID: "s1", Title: "Build"}, "s1")
	assert.Equal(t, "Agent is ready for input", n.Title)
	assert.Equal(t, "Build", n.Message)
	assert.Equal(t, VariantInfo, n.Variant)
}

func TestBuildError(t *testing.T) {
	t.Run("api error with message", func(t *testing.T) {
		n := Build(errorEvent("s1", "api", "rate limited"), &opencode.Session{ID: "s1", Title: "Build"}, "s1")
		assert.Equal(t, "Build: API error: rate limited", n.Message)
		assert.Equal(t, VariantError, n.Variant)
	})

	t.Run("long error body truncated per the 100-char rule", func(t *testing.T) {
		msg := strings.Repeat("x", 200)
		n := Build(errorEvent("s1", "api", msg), &opencode.Session{ID: "s1", Title: "Build"}, "s1")
		assert.Len(t, n.Message, 100)
		assert.True(t, strings.HasSuffix(n.Message, "..."))
		assert.True(t, strings.HasPrefix(n.Message, "Build: API error: x"))
	})

	t.Run("error without message keeps headline only", func(t *testing.T) {
		n := Build(errorEvent("s1", "auth", ""), &opencode.Session{ID: "s1"}, "s1")
		assert.Equal(t, "s1: Auth error", n.Message)
	})

	t.Run("error without payload", func(t *testing.T) {
		ev := &event.Event{Type: event.KindSessionError, Properties: event.Properties{SessionID: "s1"}}
		n := Build(ev, &opencode.Session{ID: "s1"}, "s1")
		assert.Equal(t, "s1: Error", n.Message)
	})
}

func TestBuildQuestion(t *testing.T) {
	ev := &event.Event{Type: event.KindQuestionAsked, Properties: event.Properties{SessionID: "s1"}}
	n := Build(ev, &opencode.Session{ID: "s1", Slug: "fix-tests"}, "s1")
	assert.Equal(t, "Agent has a question", n.Title)
	assert.Equal(t, "fix-tests", n.Message)
	assert.Equal(t, VariantInfo, n.Variant)
}

func TestBuildPermission(t *testing.T) {
	t.Run("permission.updated carries title text", func(t *testing.T) {
		ev := &event.Event{Type: event.KindPermissionUpdated,
			Properties: event.Properties{SessionID: "s1", Title: "Write main.go"}}
		n := Build(ev, &opencode.Session{ID: "s1", Title: "Build"}, "s1")
		assert.Equal(t, "Agent needs permission", n.Title)
		assert.Equal(t, "Build: Write main.go", n.Message)
		assert.Equal(t, VariantWarning, n.Variant)
	})

	t.Run("permission.asked carries permission text", func(t *testing.T) {
		ev := &event.Event{Type: event.KindPermissionAsked,
			Properties: event.Properties{SessionID: "s1", Permission: "Run go test"}}
		n := Build(ev, &opencode.Session{ID: "s1", Title: "Build"}, "s1")
		assert.Equal(t, "Build: Run go test", n.Message)
	})

	t.Run("no detail keeps bare label", func(t *testing.T) {
		ev := &event.Event{Type: event.KindPermissionAsked, Properties: event.Properties{SessionID: "s1"}}
		n := Build(ev, &opencode.Session{ID: "s1", Title: "Build"}, "s1")
		assert.Equal(t, "Build", n.Message)
	})
}

func TestBuildUnresolvedSessionUsesIdentifier(t *testing.T) {
	n := Build(idleEvent("ses_42"), nil, "ses_42")
	assert.Equal(t, "ses_42", n.Message)
}
