package hostbridge

import (
	"context"
	"sync"

	"github.com/LCOG/outlook-report-phishing/internal/core/port"
)

// bridgeDialog is one open dialog window on the pane side. Events are pushed
// by the read loop; finish closes the channel exactly once.
type bridgeDialog struct {
	bridge *Bridge
	id     string

	events chan port.DialogEvent

	mu   sync.Mutex
	done bool
}

var _ port.Dialog = (*bridgeDialog)(nil)

// DisplayDialog asks the pane to open a dialog window and returns a handle
// streaming its relay messages.
func (b *Bridge) DisplayDialog(ctx context.Context, url string, height, width int) (port.Dialog, error) {
	var result struct {
		DialogID string `json:"dialogId"`
	}
	err := b.call(ctx, opDisplayDialog, map[string]any{
		"url":    url,
		"height": height,
		"width":  width,
	}, &result)
	if err != nil {
		return nil, err
	}

	dialog := &bridgeDialog{
		bridge: b,
		id:     result.DialogID,
		events: make(chan port.DialogEvent, 4),
	}

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		dialog.finish()
		return nil, ErrBridgeClosed
	}
	b.dialogs[result.DialogID] = dialog
	b.mu.Unlock()

	return dialog, nil
}

func (d *bridgeDialog) Events() <-chan port.DialogEvent {
	return d.events
}

func (d *bridgeDialog) Close(ctx context.Context) error {
	d.bridge.mu.Lock()
	delete(d.bridge.dialogs, d.id)
	d.bridge.mu.Unlock()
	d.finish()

	return d.bridge.call(ctx, opCloseDialog, map[string]any{"dialogId": d.id}, nil)
}

func (d *bridgeDialog) deliver(event port.DialogEvent) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.done {
		return
	}
	// Drop instead of blocking the read loop if the consumer lags.
	select {
	case d.events <- event:
	default:
	}
}

func (d *bridgeDialog) finish() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.done {
		return
	}
	d.done = true
	close(d.events)
}
