package export

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce is how long Watcher waits for changes to settle.
const DefaultDebounce = 500 * time.Millisecond

// Watcher reruns a build when files under its directories change.
type Watcher struct {
	fsw      *fsnotify.Watcher
	debounce time.Duration
	log      *zap.SugaredLogger
}

// NewWatcher watches dirs and all their subdirectories. Missing dirs are
// skipped.
func NewWatcher(dirs []string, debounce time.Duration, log *zap.SugaredLogger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	w := &Watcher{fsw: fsw, debounce: debounce, log: log}

	for _, root := range dirs {
		if _, err := os.Stat(root); errors.Is(err, fs.ErrNotExist) {
			log.Warnf("Directory '%s' not found, not watching", root)
			continue
		}
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				log.Warnf("Error walking %s: %v", path, err)
				return nil
			}
			if d.IsDir() {
				if err := fsw.Add(path); err != nil {
					log.Warnf("Failed to watch %s: %v", path, err)
				}
			}
			return nil
		})
		if err != nil {
			fsw.Close()
			return nil, err
		}
	}
	return w, nil
}

// Run calls rebuild once changes settle, until ctx is done. It closes the
// watcher on return.
func (w *Watcher) Run(ctx context.Context, rebuild func() error) error {
	defer w.fsw.Close()

	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			w.log.Debugf("Change detected: %s (%s)", event.Name, event.Op)

			if event.Has(fsnotify.Create) && isDir(event.Name) {
				if err := w.fsw.Add(event.Name); err != nil {
					w.log.Warnf("Error adding new directory %s to watcher: %v", event.Name, err)
				}
			}

			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(w.debounce, func() {
				w.log.Info("Rebuilding site due to changes...")
				if err := rebuild(); err != nil {
					w.log.Errorf("Error during rebuild: %v", err)
				}
			})
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.log.Warnf("Watcher error: %v", err)
		}
	}
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
