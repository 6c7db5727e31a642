package notify

import (
	"context"

	"go.uber.org/zap"
)

// ToastClient renders a toast inside the agent's own TUI.
type ToastClient interface {
	ShowToast(ctx context.Context, directory, title, message, variant string) error
}

// Beller raises the terminal multiplexer's attention signal.
type Beller interface {
	Bell() error
}

// Dispatcher executes the activated channels. Each channel is independently
// fault-isolated: a failing channel is logged at debug level and never
// prevents its siblings from being attempted. Delivery is best-effort by
// design; nothing here ever propagates an error.
type Dispatcher struct {
	toasts    ToastClient
	sender    Sender
	bell      Beller
	directory string
	log       *zap.SugaredLogger
}

// NewDispatcher wires the three delivery mechanisms. Any of them may be nil,
// in which case that channel is skipped.
func NewDispatcher(toasts ToastClient, sender Sender, bell Beller, directory string, log *zap.SugaredLogger) *Dispatcher {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Dispatcher{toasts: toasts, sender: sender, bell: bell, directory: directory, log: log}
}

// Dispatch fires every channel the decision activated.
func (d *Dispatcher) Dispatch(ctx context.Context, n Notification, dec Decision) {
	if dec.Toast && d.toasts != nil {
		if err := d.toasts.ShowToast(ctx, d.directory, n.Title, n.Message, string(n.Variant)); err != nil {
			d.log.Debugw("toast failed", "error", err)
		}
	}
	if dec.Banner && d.sender != nil {
		if err := d.sender.Send(n); err != nil {
			d.log.Debugw("desktop banner failed", "sender", d.sender.Name(), "error", err)
		}
	}
	if dec.Bell && d.bell != nil {
		if err := d.bell.Bell(); err != nil {
			d.log.Debugw("bell failed", "error", err)
		}
	}
}
