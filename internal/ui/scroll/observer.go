// Package scroll reports when the home page crosses the header threshold.
package scroll

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/zona-batam/zona/internal/ui/command"
)

const (
	// Threshold is the scroll distance, in pixels, past which the header switches to its solid style.
	Threshold = 50
	// RowHeight is the number of pixels a single terminal row stands for.
	RowHeight = 16
)

// PastThreshold derives the scroll state from a vertical offset in rows.
func PastThreshold(offset int) bool {
	return offset*RowHeight > Threshold
}

// Observer turns scroll offsets into command.ScrolledMsg notifications. Notifications are only
// produced while a subscription acquired with Acquire is held.
type Observer struct {
	mu         sync.Mutex
	subscribed bool
	generation int
	past       bool
}

func New() *Observer {
	return &Observer{}
}

// Acquire starts a subscription and returns its release func. The derived state restarts at the top
// of the page. Calling release more than once, or after a newer Acquire, has no effect.
func (o *Observer) Acquire() func() {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.generation++
	o.subscribed = true
	o.past = false
	generation := o.generation

	var once sync.Once

	return func() {
		once.Do(func() {
			o.mu.Lock()
			defer o.mu.Unlock()

			if o.generation == generation {
				o.subscribed = false
			}
		})
	}
}

// Subscribed reports whether a subscription is currently held.
func (o *Observer) Subscribed() bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	return o.subscribed
}

// Observe records the current offset in rows. A command is returned only when subscribed and the derived
// state changed since the previous observation.
func (o *Observer) Observe(offset int) tea.Cmd {
	o.mu.Lock()
	defer o.mu.Unlock()

	if !o.subscribed {
		return nil
	}

	past := PastThreshold(offset)
	if past == o.past {
		return nil
	}
	o.past = past

	return command.SetScrolled(past)
}
