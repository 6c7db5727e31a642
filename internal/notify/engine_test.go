package notify

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oldflag2333333/opencode-notify/internal/config"
	"github.com/oldflag2333333/opencode-notify/internal/opencode"
)

// staticSessions resolves every id to the same snapshot.
type staticSessions struct {
	session *opencode.Session
}

func (s *staticSessions) Resolve(_ context.Context, _ string) *opencode.Session {
	return s.session
}

func newTestEngine(sess *opencode.Session, isFocused bool, inMux bool) (*Engine, *mockToasts, *mockSender, *mockBeller) {
	toasts := &mockToasts{}
	sender := &mockSender{}
	bell := &mockBeller{}
	dispatcher := NewDispatcher(toasts, sender, bell, "/work", nil)
	engine := NewEngine(config.Default(), &staticSessions{session: sess}, dispatcher,
		func() bool { return isFocused }, nil, inMux, nil)
	return engine, toasts, sender, bell
}

func TestEngineIdleEndToEnd(t *testing.T) {
	sess := &opencode.Session{ID: "s1", Title: "Build"}
	engine, toasts, sender, _ := newTestEngine(sess, false, false)

	engine.Handle(context.Background(), []byte(`{"type":"session.idle","properties":{"sessionID":"s1"}}`))

	require.Len(t, toasts.calls, 1)
	assert.Equal(t, "Agent is ready for input", toasts.calls[0].Title)
	assert.Equal(t, "Build", toasts.calls[0].Message)
	assert.Equal(t, VariantInfo, toasts.calls[0].Variant)
	require.Len(t, sender.calls, 1)
	assert.Equal(t, "Build", sender.calls[0].Message)
}

func TestEngineSuppressedIdleOnlyBells(t *testing.T) {
	sess := &opencode.Session{ID: "s1", Title: "Build"}
	engine, toasts, sender, bell := newTestEngine(sess, true, true)

	engine.Handle(context.Background(), []byte(`{"type":"session.idle","properties":{"sessionID":"s1"}}`))

	assert.Empty(t, toasts.calls)
	assert.Empty(t, sender.calls)
	assert.Equal(t, 1, bell.rings)
}

func TestEngineSkipsUndecodableEvents(t *testing.T) {
	engine, toasts, sender, bell := newTestEngine(&opencode.Session{ID: "s1"}, false, true)

	engine.Handle(context.Background(), []byte(`{"type":"storage.write","properties":{}}`))
	engine.Handle(context.Background(), []byte(`not json`))

	assert.Empty(t, toasts.calls)
	assert.Empty(t, sender.calls)
	assert.Zero(t, bell.rings)
}

func TestEngineUnresolvedSessionStaysSilent(t *testing.T) {
	engine, toasts, sender, bell := newTestEngine(nil, false, true)

	engine.Handle(context.Background(), []byte(`{"type":"session.idle","properties":{"sessionID":"ghost"}}`))

	assert.Empty(t, toasts.calls)
	assert.Empty(t, sender.calls)
	assert.Zero(t, bell.rings)
}
