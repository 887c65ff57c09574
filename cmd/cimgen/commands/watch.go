package commands

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/syssam/cim/compiler/load"
)

// defaultDebounce groups the burst of events an editor produces on save.
const defaultDebounce = 300 * time.Millisecond

// watcher re-runs a function when the schema files under path change.
type watcher struct {
	path     string
	debounce time.Duration
	log      *slog.Logger
	run      func(context.Context) error
}

func newWatcher(path string, log *slog.Logger, run func(context.Context) error) *watcher {
	return &watcher{
		path:     path,
		debounce: defaultDebounce,
		log:      log,
		run:      run,
	}
}

// Watch blocks until ctx is canceled or the underlying watcher is closed.
// Errors returned by run are logged and watching continues.
func (w *watcher) Watch(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fw.Close()

	info, err := os.Stat(w.path)
	if err != nil {
		return err
	}
	// Watch the directory of a single file, since editors often replace
	// the file instead of writing it.
	dir, file := w.path, ""
	if !info.IsDir() {
		dir, file = filepath.Dir(w.path), filepath.Base(w.path)
	}
	if err := fw.Add(dir); err != nil {
		return err
	}
	w.log.Info("watching schema", "path", w.path)

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	for {
		select {
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			name := filepath.Base(ev.Name)
			if (file != "" && name != file) || (file == "" && !load.IsSchemaFile(name)) {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) {
				continue
			}
			w.log.Debug("schema changed", "file", ev.Name, "op", ev.Op.String())
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C
		case <-fire:
			fire = nil
			if err := w.run(ctx); err != nil {
				w.log.Error("regenerate failed", "error", err)
			}
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("watch error", "error", err)
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return ctx.Err()
		}
	}
}
