package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// WatchCmd subscribes to the agent server's event stream and runs the
// notification pipeline for every inbound event.
type WatchCmd struct{}

// Run executes the watch command. Each event is handled by its own
// goroutine; events for distinct sessions share nothing but the read-only
// config, so no coordination is needed beyond waiting for stragglers on
// shutdown.
func (c *WatchCmd) Run(globals *Globals) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals for graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	engine, client := newEngine(globals)

	events, err := client.Events(ctx)
	if err != nil {
		return fmt.Errorf("subscribe to %s: %w", globals.Server, err)
	}
	globals.Debug("subscribed to event stream at %s", globals.Server)

	var wg sync.WaitGroup
	for raw := range events {
		wg.Add(1)
		go func(raw []byte) {
			defer wg.Done()
			engine.Handle(ctx, raw)
		}(raw)
	}
	wg.Wait()
	return nil
}
