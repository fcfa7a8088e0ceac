package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	log "github.com/go-pkgz/lgr"

	"github.com/umputun/toggler/app/enum"
	"github.com/umputun/toggler/app/palette"
	"github.com/umputun/toggler/app/server"
	"github.com/umputun/toggler/app/session"
	"github.com/umputun/toggler/app/store"
	"github.com/umputun/toggler/app/toggle"
	"github.com/umputun/toggler/app/tui"
)

// PaletteOptions select the palette, shared by server and tui commands
type PaletteOptions struct {
	Preset string `long:"preset" env:"PRESET" default:"classic" description:"built-in palette (see presets command)"`
	File   string `long:"file" env:"FILE" description:"palette file (yaml, json or toml), overrides preset"`
	Watch  bool   `long:"watch" env:"WATCH" description:"reload palette file on change"`
}

// sessionBackend is what the server needs from a session store
type sessionBackend interface {
	session.Store
	Count(ctx context.Context) (int, error)
	Close() error
}

// ServerCmd implements the server subcommand
type ServerCmd struct {
	DB string `short:"d" long:"db" env:"TOGGLER_DB" description:"session database (empty for memory, sqlite file or postgres://...)"`

	Server struct {
		Address     string        `long:"address" env:"ADDRESS" default:":8080" description:"server listen address"`
		ReadTimeout time.Duration `long:"read-timeout" env:"READ_TIMEOUT" default:"5s" description:"read timeout"`
		BaseURL     string        `long:"base-url" env:"BASE_URL" description:"base URL path for reverse proxy (e.g., /toggler)"`
	} `group:"server" namespace:"server" env-namespace:"TOGGLER_SERVER"`

	Sessions struct {
		TTL     time.Duration `long:"ttl" env:"TTL" default:"24h" description:"idle session lifetime"`
		Cleanup time.Duration `long:"cleanup" env:"CLEANUP" default:"10m" description:"expired sessions cleanup interval"`
		Max     int           `long:"max" env:"MAX" default:"10000" description:"max live sessions in memory"`
	} `group:"sessions" namespace:"sessions" env-namespace:"TOGGLER_SESSIONS"`

	Palette PaletteOptions `group:"palette" namespace:"palette" env-namespace:"TOGGLER_PALETTE"`

	Debug bool `long:"dbg" env:"DEBUG" description:"debug mode"`

	ctx    context.Context
	cancel context.CancelFunc
}

// Execute runs the server command
func (s *ServerCmd) Execute(_ []string) error {
	setupLogs(s.Debug, nil)
	log.Printf("[INFO] toggler %s", revision)

	defer func() {
		if x := recover(); x != nil {
			log.Printf("[WARN] run time panic:\n%v", x)
			panic(x)
		}
	}()

	if s.ctx == nil {
		s.ctx, s.cancel = context.WithCancel(context.Background())
		signals(s.cancel)
	}

	return s.run(s.ctx)
}

func (s *ServerCmd) run(ctx context.Context) error {
	baseURL, err := validateBaseURL(s.Server.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid base URL: %w", err)
	}

	presenter, err := makePresenter(s.Palette)
	if err != nil {
		return err
	}

	backend, err := s.makeBackend()
	if err != nil {
		return fmt.Errorf("failed to initialize session store: %w", err)
	}
	defer backend.Close()

	log.Printf("[INFO] starting toggler server on %s, palette %q", s.Server.Address, presenter.Palette().Name)
	if baseURL != "" {
		log.Printf("[INFO] base URL: %s", baseURL)
	}

	sm := session.New(backend, presenter, session.Config{
		TTL:             s.Sessions.TTL,
		CleanupInterval: s.Sessions.Cleanup,
		CookiePath:      baseURL + "/",
	})
	sm.StartCleanup(ctx)

	if s.Palette.Watch {
		if err := palette.NewWatcher(s.Palette.File, presenter).Start(ctx); err != nil {
			return fmt.Errorf("failed to start palette watcher: %w", err)
		}
	}

	srv, err := server.New(sm, presenter, backend, server.Config{
		Address:     s.Server.Address,
		ReadTimeout: s.Server.ReadTimeout,
		Version:     revision,
		BaseURL:     baseURL,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// makeBackend picks the session store by the db url
func (s *ServerCmd) makeBackend() (sessionBackend, error) {
	switch kind := store.DetectStorage(s.DB); kind {
	case enum.StorageMemory:
		log.Printf("[INFO] sessions in memory, max %d", s.Sessions.Max)
		mem, err := store.NewMemory(s.Sessions.TTL, s.Sessions.Max)
		if err != nil {
			return nil, err
		}
		return mem, nil
	default:
		log.Printf("[INFO] sessions in %s", kind)
		db, err := store.New(s.DB)
		if err != nil {
			return nil, err
		}
		return db, nil
	}
}

// TUICmd implements the tui subcommand
type TUICmd struct {
	Palette PaletteOptions `group:"palette" namespace:"palette" env-namespace:"TOGGLER_PALETTE"`
	LogFile string         `long:"log-file" env:"TOGGLER_LOG_FILE" description:"write logs to file, discarded if empty"`
	Debug   bool           `long:"dbg" env:"DEBUG" description:"debug mode"`

	ctx      context.Context
	cancel   context.CancelFunc
	progOpts []tea.ProgramOption
}

// Execute runs the tui command
func (c *TUICmd) Execute(_ []string) error {
	out := io.Discard
	if c.LogFile != "" {
		fh, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("failed to open log file %s: %w", c.LogFile, err)
		}
		defer fh.Close()
		out = fh
	}
	setupLogs(c.Debug, out)

	if c.ctx == nil {
		c.ctx, c.cancel = context.WithCancel(context.Background())
		signals(c.cancel)
	}
	return c.run(c.ctx)
}

func (c *TUICmd) run(ctx context.Context) error {
	presenter, err := makePresenter(c.Palette)
	if err != nil {
		return err
	}

	app := tui.New(presenter, c.progOpts...)
	if c.Palette.Watch {
		if err := palette.NewWatcher(c.Palette.File, app.Reloader()).Start(ctx); err != nil {
			return fmt.Errorf("failed to start palette watcher: %w", err)
		}
	}
	log.Printf("[INFO] starting tui, palette %q", presenter.Palette().Name)
	return app.Run(ctx)
}

// PresetsCmd implements the presets subcommand
type PresetsCmd struct {
	out io.Writer
}

// Execute prints built-in palettes
func (c *PresetsCmd) Execute(_ []string) error {
	out := c.out
	if out == nil {
		out = os.Stdout
	}
	for _, name := range toggle.PresetNames() {
		pal, err := toggle.Preset(name)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(out, describePalette(pal)); err != nil {
			return fmt.Errorf("failed to write preset %s: %w", name, err)
		}
	}
	return nil
}

// describePalette formats a palette as a single line
func describePalette(p toggle.Palette) string {
	faces := make([]string, 0, len(p.Secondary))
	for _, f := range p.Secondary {
		faces = append(faces, f.Label+"/"+f.Color.String())
	}
	return fmt.Sprintf("%-12s initial=%s speak=%s/%s stop=%s/%s secondary=%s report-mode=%t",
		p.Name, p.Initial, p.Speak.Label, p.Speak.Color, p.Stop.Label, p.Stop.Color, strings.Join(faces, ","), p.ReportMode)
}

// makePresenter resolves the palette and makes a presenter for it
func makePresenter(po PaletteOptions) (*toggle.Presenter, error) {
	if po.Watch && po.File == "" {
		return nil, errors.New("palette watch requires palette file")
	}
	pal, err := palette.Resolve(po.Preset, po.File)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve palette: %w", err)
	}
	presenter, err := toggle.New(pal)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize presenter: %w", err)
	}
	return presenter, nil
}
