package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"

	"github.com/oldflag2333333/opencode-notify/internal/config"
	"github.com/oldflag2333333/opencode-notify/internal/focus"
	"github.com/oldflag2333333/opencode-notify/internal/mux"
	"github.com/oldflag2333333/opencode-notify/internal/notify"
	"github.com/oldflag2333333/opencode-notify/internal/opencode"
)

// DoctorCmd reports what the notification pipeline sees in the current
// environment: the active focus strategy, the hosting multiplexer, the
// banner facility, and the loaded configuration.
type DoctorCmd struct{}

var doctorTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))

// Run executes the doctor command.
func (c *DoctorCmd) Run(globals *Globals) error {
	fmt.Fprintln(globals.Stdout, doctorTitle.Render("ocnotify environment"))

	table := tablewriter.NewTable(globals.Stdout)
	table.Header("Check", "Result", "Detail")

	log := globals.logger.Sugared()

	// Focus detection.
	detector := focus.NewDetector(log)
	if s, ok := detector.ActiveStrategy(); ok {
		id, err := s.FocusedIdentifier()
		detail := fmt.Sprintf("identifier=%q terminal=%v", id, focus.IsKnownTerminal(id))
		if err != nil {
			detail = fmt.Sprintf("query failed: %v (treated as not focused)", err)
		}
		table.Append("focus strategy", s.Name(), detail)
	} else {
		table.Append("focus strategy", "none", "unknown environment, never suppresses")
	}

	// Multiplexer.
	if m := mux.Detect(log); m != nil {
		table.Append("multiplexer", m.Name(),
			fmt.Sprintf("pane=%s focus=%s", m.PaneID(), m.CurrentPaneFocused()))
	} else {
		table.Append("multiplexer", "none", "no pane refinement, no bell")
	}

	// Desktop banner facility.
	sender := notify.NewSender()
	table.Append("banner sender", sender.Name(), fmt.Sprintf("available=%v", sender.Available()))

	// Agent server.
	client := opencode.New(globals.Server)
	if _, err := client.Sessions(context.Background(), globals.Directory, 1); err != nil {
		table.Append("agent server", globals.Server, fmt.Sprintf("unreachable: %v", err))
	} else {
		table.Append("agent server", globals.Server, "ok")
	}

	// Configuration.
	path, _ := config.Path()
	table.Append("config", path, fmt.Sprintf(
		"suppressWhenFocused=%v notifyOnError=%v notifyOnPermission=%v notifyOnQuestion=%v notifyChildSessions=%v",
		globals.Config.SuppressWhenFocused,
		globals.Config.NotifyOnError,
		globals.Config.NotifyOnPermission,
		globals.Config.NotifyOnQuestion,
		globals.Config.NotifyChildSessions,
	))

	return table.Render()
}
