// Package cli wires the kong command surface: the long-running watcher, the
// one-shot hook entry point, and the environment doctor.
package cli

import (
	"io"
	"os"

	"github.com/oldflag2333333/opencode-notify/internal/config"
)

// CLI is the kong grammar for ocnotify.
type CLI struct {
	Server    string `short:"s" env:"OPENCODE" default:"http://127.0.0.1:4096" help:"Agent server base URL."`
	Directory string `short:"C" help:"Working directory scoping session queries (default: current directory)."`
	Verbose   bool   `short:"v" help:"Enable verbose debug logging."`

	Watch  WatchCmd  `cmd:"" help:"Subscribe to the agent event stream and notify on notable states."`
	Handle HandleCmd `cmd:"" help:"Handle a single event document from stdin or --event."`
	Doctor DoctorCmd `cmd:"" help:"Diagnose focus detection, multiplexer, and banner delivery."`
}

// Globals carries the cross-command state every Run method receives.
type Globals struct {
	Server    string
	Directory string
	Verbose   bool
	Stdout    io.Writer
	Stderr    io.Writer
	Config    *config.Config

	logger *appLogger
}

// NewGlobals builds Globals from parsed flags and the loaded config.
func NewGlobals(c *CLI, cfg *config.Config) *Globals {
	dir := c.Directory
	if dir == "" {
		dir, _ = os.Getwd()
	}
	g := &Globals{
		Server:    c.Server,
		Directory: dir,
		Verbose:   c.Verbose,
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
		Config:    cfg,
	}
	g.logger = newAppLogger(g)
	return g
}

// Debug logs a formatted debug message when --verbose is set.
func (g *Globals) Debug(format string, args ...interface{}) {
	g.logger.Debug(format, args...)
}
