// Package watch re-runs a handler whenever a theme document changes on disk.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/collurgy/collurgy/internal/theme"
	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// Handler receives each successfully reloaded theme.
type Handler func(ctx context.Context, t *theme.Theme) error

// Config controls watcher timing.
type Config struct {
	// Debounce coalesces bursts of events; editors often write a file in
	// several steps.
	Debounce time.Duration
	// SkipInitial suppresses the handler call for the document present at
	// start.
	SkipInitial bool
}

// DefaultConfig returns the default watcher settings.
func DefaultConfig() Config {
	return Config{Debounce: 150 * time.Millisecond}
}

// Watcher follows one theme file. The parent directory is watched so that
// atomic replace-by-rename saves are seen.
type Watcher struct {
	path    string
	config  Config
	handler Handler
	logger  zerolog.Logger

	reloads  atomic.Int64
	failures atomic.Int64
}

// New creates a watcher for path.
func New(path string, handler Handler, config Config, logger zerolog.Logger) *Watcher {
	if config.Debounce <= 0 {
		config.Debounce = DefaultConfig().Debounce
	}
	return &Watcher{
		path:    path,
		config:  config,
		handler: handler,
		logger:  logger,
	}
}

// Reloads returns how many times the handler has been invoked.
func (w *Watcher) Reloads() int64 { return w.reloads.Load() }

// Failures returns how many reloads were rejected or whose handler failed.
func (w *Watcher) Failures() int64 { return w.failures.Load() }

// Run blocks until ctx is canceled. Invalid documents are logged and the
// previous theme stays in effect.
func (w *Watcher) Run(ctx context.Context) error {
	abs, err := filepath.Abs(w.path)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", w.path, err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fsw.Close()

	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	w.logger.Info().Str("path", abs).Dur("debounce", w.config.Debounce).Msg("watching theme")

	if !w.config.SkipInitial {
		w.reload(ctx, abs)
	}

	var (
		timer  *time.Timer
		timerC <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("watch stopped")
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			w.logger.Debug().Str("op", event.Op.String()).Msg("theme changed")
			if timer == nil {
				timer = time.NewTimer(w.config.Debounce)
			} else {
				timer.Reset(w.config.Debounce)
			}
			timerC = timer.C

		case <-timerC:
			timerC = nil
			w.reload(ctx, abs)

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn().Err(err).Msg("watch error")
		}
	}
}

func (w *Watcher) reload(ctx context.Context, path string) {
	t, err := theme.Load(path)
	if err != nil {
		w.failures.Add(1)
		w.logger.Warn().Err(err).Str("path", path).Msg("keeping previous theme")
		return
	}

	w.reloads.Add(1)
	if err := w.handler(ctx, t); err != nil {
		w.failures.Add(1)
		w.logger.Error().Err(err).Msg("theme handler failed")
		return
	}
	w.logger.Debug().Str("path", path).Msg("theme applied")
}
