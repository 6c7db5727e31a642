package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/oldflag2333333/opencode-notify/internal/cli"
	"github.com/oldflag2333333/opencode-notify/internal/config"
)

const quickStart = `ocnotify - focus-aware notifications for opencode agents

Quick start:
  ocnotify watch                        Follow the agent event stream
  ocnotify handle < event.json          Handle one event (hook mode)
  ocnotify doctor                       Inspect focus/banner environment

For help:
  ocnotify --help                       All commands and flags
`

func main() {
	// Show quick start if no args provided
	if len(os.Args) == 1 {
		fmt.Print(quickStart)
		return
	}

	// Load notification preferences; missing or broken files mean defaults.
	cfg := config.Load()

	var c cli.CLI
	ctx := kong.Parse(&c,
		kong.Name("ocnotify"),
		kong.Description("Notify the operator when an opencode agent needs attention, unless they are already watching."),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}),
	)

	globals := cli.NewGlobals(&c, cfg)
	if err := ctx.Run(globals); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
