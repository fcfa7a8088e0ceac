package palette

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	log "github.com/go-pkgz/lgr"

	"github.com/umputun/toggler/app/toggle"
)

const defaultDebounce = 100 * time.Millisecond

// Target receives reloaded palettes.
type Target interface {
	SetPalette(p toggle.Palette) error
}

// Watcher reloads the palette file into a target on every change.
type Watcher struct {
	path     string
	target   Target
	debounce time.Duration
}

// NewWatcher makes a watcher for the palette file.
func NewWatcher(path string, target Target) *Watcher {
	return &Watcher{path: path, target: target, debounce: defaultDebounce}
}

// Reload loads the file and applies it to the target. On error the target keeps its palette.
func (w *Watcher) Reload() error {
	pal, err := Load(w.path)
	if err != nil {
		return fmt.Errorf("failed to load palette: %w", err)
	}
	if err := w.target.SetPalette(pal); err != nil {
		return fmt.Errorf("failed to apply palette: %w", err)
	}
	log.Printf("[INFO] palette %q reloaded from %s", pal.Name, w.path)
	return nil
}

// Start begins watching the palette file and returns immediately.
// The watcher stops when the context is canceled.
func (w *Watcher) Start(ctx context.Context) error {
	if w.path == "" {
		return errors.New("palette file path not set")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}

	// watch the directory, editors replace files with atomic renames
	dir := filepath.Dir(w.path)
	filename := filepath.Base(w.path)
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("failed to watch directory %s: %w", dir, err)
	}

	log.Printf("[INFO] watching palette file %s for changes", w.path)

	go func() {
		defer watcher.Close()

		var debounceTimer *time.Timer
		for {
			select {
			case <-ctx.Done():
				if debounceTimer != nil {
					debounceTimer.Stop()
				}
				log.Printf("[INFO] palette watcher stopped")
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Base(event.Name) != filename {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				if debounceTimer != nil {
					debounceTimer.Stop()
				}
				debounceTimer = time.AfterFunc(w.debounce, func() {
					if err := w.Reload(); err != nil {
						log.Printf("[WARN] %v", err)
					}
				})

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Printf("[WARN] palette watcher error: %v", err)
			}
		}
	}()

	return nil
}
