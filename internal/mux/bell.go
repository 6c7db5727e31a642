package mux

import (
	"os"

	"github.com/mattn/go-isatty"
)

// ringBell writes BEL to the controlling terminal so the multiplexer marks
// the pane with its attention indicator. Preferring stderr keeps the bell
// out of any piped stdout.
func ringBell() error {
	if isatty.IsTerminal(os.Stderr.Fd()) {
		_, err := os.Stderr.WriteString("\a")
		return err
	}
	tty, err := os.OpenFile("/dev/tty", os.O_WRONLY, 0)
	if err != nil {
		return err
	}
	defer tty.Close()
	_, err = tty.WriteString("\a")
	return err
}
