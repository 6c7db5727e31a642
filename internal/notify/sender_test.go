package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeAppleScript(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{`plain`, `plain`},
		{`say "hi"`, `say \"hi\"`},
		{`C:\path`, `C:\\path`},
		{`\"already\"`, `\\\"already\\\"`},
		{``, ``},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, escapeAppleScript(tc.in), "input %q", tc.in)
	}
}

func TestNoopSender(t *testing.T) {
	s := &noopSender{}

	assert.NoError(t, s.Send(Notification{Title: "t", Message: "m"}))
	assert.False(t, s.Available())
	assert.Equal(t, "none", s.Name())
}

func TestUnavailableSendersStaySilent(t *testing.T) {
	d := &darwinSender{available: false}
	assert.NoError(t, d.Send(Notification{Title: "t"}))
	assert.False(t, d.Available())

	l := &linuxSender{available: false}
	assert.NoError(t, l.Send(Notification{Title: "t"}))
	assert.False(t, l.Available())
}

func TestSenderNames(t *testing.T) {
	assert.Equal(t, "osascript", (&darwinSender{}).Name())
	assert.Equal(t, "notify-send", (&linuxSender{}).Name())
}
