package notify

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// mockToasts records toast calls and optionally fails them.
type mockToasts struct {
	err   error
	calls []Notification
}

func (m *mockToasts) ShowToast(_ context.Context, _, title, message, variant string) error {
	m.calls = append(m.calls, Notification{Title: title, Message: message, Variant: Variant(variant)})
	return m.err
}

// mockSender records banner sends and optionally fails them.
type mockSender struct {
	err   error
	calls []Notification
}

func (m *mockSender) Send(n Notification) error { m.calls = append(m.calls, n); return m.err }
func (m *mockSender) Available() bool           { return true }
func (m *mockSender) Name() string              { return "mock" }

// mockBeller counts rings.
type mockBeller struct {
	err   error
	rings int
}

func (m *mockBeller) Bell() error { m.rings++; return m.err }

func TestDispatchFiresActivatedChannels(t *testing.T) {
	toasts := &mockToasts{}
	sender := &mockSender{}
	bell := &mockBeller{}
	d := NewDispatcher(toasts, sender, bell, "/work", nil)

	n := Notification{Title: "Agent is ready for input", Message: "Build", Variant: VariantInfo}
	d.Dispatch(context.Background(), n, Decision{Toast: true, Banner: true, Bell: true})

	assert.Len(t, toasts.calls, 1)
	assert.Equal(t, "Agent is ready for input", toasts.calls[0].Title)
	assert.Equal(t, "Build", toasts.calls[0].Message)
	assert.Len(t, sender.calls, 1)
	assert.Equal(t, n, sender.calls[0])
	assert.Equal(t, 1, bell.rings)
}

func TestDispatchSkipsInactiveChannels(t *testing.T) {
	toasts := &mockToasts{}
	sender := &mockSender{}
	bell := &mockBeller{}
	d := NewDispatcher(toasts, sender, bell, "/work", nil)

	d.Dispatch(context.Background(), Notification{}, Decision{Bell: true})

	assert.Empty(t, toasts.calls)
	assert.Empty(t, sender.calls)
	assert.Equal(t, 1, bell.rings)
}

func TestDispatchIsolatesChannelFailures(t *testing.T) {
	toasts := &mockToasts{err: errors.New("server down")}
	sender := &mockSender{err: errors.New("notify-send missing")}
	bell := &mockBeller{}
	d := NewDispatcher(toasts, sender, bell, "/work", nil)

	// Must not panic, and the bell must still ring after both failures.
	d.Dispatch(context.Background(), Notification{Title: "t"}, Decision{Toast: true, Banner: true, Bell: true})

	assert.Len(t, toasts.calls, 1)
	assert.Len(t, sender.calls, 1)
	assert.Equal(t, 1, bell.rings)
}

func TestDispatchToleratesNilChannels(t *testing.T) {
	d := NewDispatcher(nil, nil, nil, "", nil)
	d.Dispatch(context.Background(), Notification{}, Decision{Toast: true, Banner: true, Bell: true})
}
