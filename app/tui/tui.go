// Package tui implements the terminal front-end: one toggle session per process,
// buttons painted with the palette colors.
package tui

import (
	"context"
	"errors"
	"fmt"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/umputun/toggler/app/toggle"
)

// programRef is a shared reference to the tea.Program for goroutine sends.
// It's set after tea.NewProgram but before p.Run().
type programRef struct {
	mu sync.Mutex
	p  *tea.Program
}

func (r *programRef) Set(p *tea.Program) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.p = p
}

func (r *programRef) Send(msg tea.Msg) {
	r.mu.Lock()
	p := r.p
	r.mu.Unlock()
	if p != nil {
		p.Send(msg)
	}
}

// Clear nils out the program reference, preventing post-exit sends.
func (r *programRef) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.p = nil
}

// Reloader applies a reloaded palette to the presenter and repaints the screen.
// It satisfies the palette watcher target.
type Reloader struct {
	presenter *toggle.Presenter
	ref       *programRef
}

// SetPalette swaps the palette and notifies the running program.
func (r *Reloader) SetPalette(pal toggle.Palette) error {
	if err := r.presenter.SetPalette(pal); err != nil {
		return err
	}
	r.ref.Send(paletteChangedMsg{})
	return nil
}

// App is a prepared terminal program.
type App struct {
	presenter *toggle.Presenter
	ref       *programRef
	opts      []tea.ProgramOption
}

// New makes a terminal app for the presenter. Options are passed to the tea program.
func New(p *toggle.Presenter, opts ...tea.ProgramOption) *App {
	return &App{presenter: p, ref: &programRef{}, opts: opts}
}

// Reloader returns the palette watcher target repainting this app.
func (a *App) Reloader() *Reloader {
	return &Reloader{presenter: a.presenter, ref: a.ref}
}

// Run starts the program and blocks until the user quits or ctx is canceled.
func (a *App) Run(ctx context.Context) error {
	opts := append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, a.opts...)
	p := tea.NewProgram(NewModel(a.presenter), opts...)
	a.ref.Set(p)
	defer a.ref.Clear()

	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("tui failed: %w", err)
	}
	return nil
}
