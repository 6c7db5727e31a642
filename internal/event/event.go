// Package event models the agent events this tool reacts to.
//
// Events arrive as JSON documents discriminated by a "type" field. Only the
// kinds listed below are actionable; anything else is rejected by Parse and
// skipped by callers.
package event

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Kind identifies an agent event type.
type Kind string

const (
	KindSessionIdle       Kind = "session.idle"
	KindSessionError      Kind = "session.error"
	KindQuestionAsked     Kind = "question.asked"
	KindPermissionUpdated Kind = "permission.updated"
	KindPermissionAsked   Kind = "permission.asked"
)

// ErrorAborted is the error type set when the user cancels a running
// session. It signals intent, not failure, and never produces a notification.
const ErrorAborted = "aborted"

// Event is a single agent event.
type Event struct {
	Type       Kind       `json:"type"`
	Properties Properties `json:"properties"`
}

// Properties carries the kind-specific payload. SessionID is always present;
// the remaining fields are populated per kind.
type Properties struct {
	SessionID string `json:"sessionID"`

	// Error is set for session.error events.
	Error *ErrorInfo `json:"error,omitempty"`

	// Title is set for permission.updated events.
	Title string `json:"title,omitempty"`

	// Permission is set for permission.asked events.
	Permission string `json:"permission,omitempty"`
}

// ErrorInfo describes the failure attached to a session.error event.
type ErrorInfo struct {
	Type string    `json:"type"`
	Data ErrorData `json:"data,omitempty"`
}

// ErrorData holds the optional human-readable detail of an error.
type ErrorData struct {
	Message string `json:"message,omitempty"`
}

// Aborted reports whether this error represents a user-initiated cancel.
func (e *ErrorInfo) Aborted() bool {
	return e != nil && strings.EqualFold(e.Type, ErrorAborted)
}

// IsPermission reports whether the kind is one of the permission events.
func (k Kind) IsPermission() bool {
	return k == KindPermissionUpdated || k == KindPermissionAsked
}

// Parse decodes a raw event document. Unknown kinds and events without a
// session identifier are rejected so callers can skip them.
func Parse(raw []byte) (*Event, error) {
	var ev Event
	if err := json.Unmarshal(raw, &ev); err != nil {
		return nil, fmt.Errorf("decode event: %w", err)
	}
	switch ev.Type {
	case KindSessionIdle, KindSessionError, KindQuestionAsked,
		KindPermissionUpdated, KindPermissionAsked:
	default:
		return nil, fmt.Errorf("unhandled event type %q", ev.Type)
	}
	if ev.Properties.SessionID == "" {
		return nil, fmt.Errorf("event %s has no session id", ev.Type)
	}
	return &ev, nil
}
