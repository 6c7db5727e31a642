package cli

import (
	"context"
	"fmt"
	"io"
	"os"
)

// HandleCmd runs the pipeline once for a single event document, the way a
// hook script would invoke it.
type HandleCmd struct {
	Event string `short:"e" help:"Event JSON document (default: read from stdin)."`
}

// Run executes the handle command.
func (c *HandleCmd) Run(globals *Globals) error {
	raw := []byte(c.Event)
	if len(raw) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("read event from stdin: %w", err)
		}
		raw = data
	}
	if len(raw) == 0 {
		return fmt.Errorf("no event provided: pass --event or pipe JSON to stdin")
	}

	engine, _ := newEngine(globals)
	engine.Handle(context.Background(), raw)
	return nil
}
