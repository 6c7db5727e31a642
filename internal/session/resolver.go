// Package session resolves session identifiers to server-side session
// snapshots and derives display labels from them.
package session

import (
	"context"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/oldflag2333333/opencode-notify/internal/opencode"
)

// listLimit bounds the recent-session scan used as the last lookup step.
const listLimit = 100

// Client is the subset of the server API the resolver needs.
type Client interface {
	Session(ctx context.Context, id, directory string) (*opencode.Session, error)
	Sessions(ctx context.Context, directory string, limit int) ([]opencode.Session, error)
}

// Resolver looks up sessions through layered fallbacks. Every step is
// failure-tolerant: a failed query moves on to the next step, and exhausting
// all steps yields nil ("absent"), which callers treat as "do not notify".
type Resolver struct {
	client    Client
	directory string
	log       *zap.SugaredLogger
}

// NewResolver creates a resolver scoped to the given working directory.
func NewResolver(client Client, directory string, log *zap.SugaredLogger) *Resolver {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Resolver{client: client, directory: directory, log: log}
}

// Resolve returns the session snapshot for id, or nil when no lookup
// succeeds. It never returns an error; lookup failures are absorbed.
func (r *Resolver) Resolve(ctx context.Context, id string) *opencode.Session {
	if id == "" || r.client == nil {
		return nil
	}

	// Step 1: directory-scoped lookup.
	if s, err := r.client.Session(ctx, id, r.directory); err == nil && s != nil {
		return s
	} else if err != nil {
		r.log.Debugw("scoped session lookup failed", "session", id, "error", err)
	}

	// Step 2: unscoped lookup.
	if s, err := r.client.Session(ctx, id, ""); err == nil && s != nil {
		return s
	} else if err != nil {
		r.log.Debugw("unscoped session lookup failed", "session", id, "error", err)
	}

	// Step 3: scan recent sessions.
	list, err := r.client.Sessions(ctx, r.directory, listLimit)
	if err != nil {
		r.log.Debugw("session list failed", "session", id, "error", err)
		return nil
	}
	if s, ok := lo.Find(list, func(s opencode.Session) bool { return s.ID == id }); ok {
		return &s
	}
	return nil
}
