// Package toggle implements the two-state toggle with derived presentation: a session-owned State,
// the operations mutating it and the pure mapping from mode to button face.
package toggle

import (
	"fmt"
	"sync"

	"github.com/umputun/toggler/app/enum"
)

// StatusInitialized is the status of a freshly initialized state.
const StatusInitialized = "Session initialized"

// State is the per-session toggle state. Zero value is not initialized.
type State struct {
	Mode   enum.Mode `json:"mode"`
	Status string    `json:"status"`
}

// Initialized reports whether Initialize has been applied to the state.
func (s State) Initialized() bool {
	return s.Status != ""
}

// View is everything a presentation layer needs to render a state.
type View struct {
	Mode      enum.Mode `json:"mode"`
	Status    string    `json:"status"`
	Primary   Face      `json:"primary"`
	Secondary [2]Face   `json:"secondary"`
}

// Presenter applies triggers to states and derives views. It holds the palette only,
// states are owned by the caller. Safe for concurrent use, palette can be swapped at runtime.
type Presenter struct {
	mu      sync.RWMutex
	palette Palette
}

// New makes a presenter for the given palette.
func New(p Palette) (*Presenter, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid palette %q: %w", p.Name, err)
	}
	return &Presenter{palette: p}, nil
}

// Palette returns the current palette.
func (p *Presenter) Palette() Palette {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.palette
}

// SetPalette replaces the palette. Existing states are not touched, views pick up the change on the next render.
func (p *Presenter) SetPalette(pal Palette) error {
	if err := pal.Validate(); err != nil {
		return fmt.Errorf("invalid palette %q: %w", pal.Name, err)
	}
	p.mu.Lock()
	p.palette = pal
	p.mu.Unlock()
	return nil
}

// Initialize sets the initial mode and the sentinel status if the state was not initialized yet.
// Returns true if the state has been changed.
func (p *Presenter) Initialize(st *State) bool {
	if st.Initialized() {
		return false
	}
	st.Mode = p.Palette().Initial
	st.Status = StatusInitialized
	return true
}

// ToggleMode flips the mode and reports the new one in the status.
func (p *Presenter) ToggleMode(st *State) {
	p.Initialize(st)
	st.Mode = st.Mode.Toggle()
	st.Status = "Mode switched to " + p.Present(st.Mode).Label
}

// NotifyA reports the first secondary button. Mode is never changed.
func (p *Presenter) NotifyA(st *State) {
	p.notify(st, 0)
}

// NotifyB reports the second secondary button. Mode is never changed.
func (p *Presenter) NotifyB(st *State) {
	p.notify(st, 1)
}

func (p *Presenter) notify(st *State, idx int) {
	p.Initialize(st)
	pal := p.Palette()
	msg := pal.Secondary[idx].Label + " pressed"
	if pal.ReportMode {
		msg += " (mode: " + pal.Present(st.Mode).Label + ")"
	}
	st.Status = msg
}

// Handle dispatches a trigger to the matching operation.
func (p *Presenter) Handle(st *State, t enum.Trigger) {
	switch t {
	case enum.TriggerToggle:
		p.ToggleMode(st)
	case enum.TriggerNotifyA:
		p.NotifyA(st)
	case enum.TriggerNotifyB:
		p.NotifyB(st)
	default:
		p.Initialize(st)
	}
}

// Present returns the primary face for the mode with the active palette.
func (p *Presenter) Present(m enum.Mode) Face {
	return p.Palette().Present(m)
}

// Render derives the view of a state. The state is not modified.
func (p *Presenter) Render(st State) View {
	pal := p.Palette()
	p.Initialize(&st)
	return View{
		Mode:      st.Mode,
		Status:    st.Status,
		Primary:   pal.Present(st.Mode),
		Secondary: pal.Secondary,
	}
}
