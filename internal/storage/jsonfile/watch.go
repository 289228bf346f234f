// Package jsonfile persists the full address-book state in one JSON file.
package jsonfile

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// watcher reloads the store when the backing file is replaced by an
// external editor.
type watcher struct {
	fsw  *fsnotify.Watcher
	done chan struct{}
}

// WatchFile starts watching the backing file for external changes.
// The watch observes the parent directory rather than the file itself
// so that editor-style replace-by-rename is caught.
func (s *Store) WatchFile() error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := fsw.Add(filepath.Dir(s.path)); err != nil {
		fsw.Close()
		return err
	}

	w := &watcher{fsw: fsw, done: make(chan struct{})}
	s.watch = w
	go s.watchLoop(w)

	s.logger.Info("watching snapshot for external changes", "path", s.path)
	return nil
}

func (s *Store) watchLoop(w *watcher) {
	base := filepath.Base(s.path)
	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != base {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			s.maybeReload()
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			s.logger.Error("snapshot watcher error", "error", err)
		case <-w.done:
			return
		}
	}
}

// maybeReload swaps the in-memory state when the backing file was
// changed by someone else. Self-writes are recognized by their
// serialization and skipped.
func (s *Store) maybeReload() {
	changed, err := s.reload()
	if err != nil {
		s.logger.Error("external snapshot change is not valid JSON, keeping in-memory state",
			"path", s.path,
			"error", err)
		return
	}
	if changed {
		s.logger.Warn("snapshot changed externally, reloaded", "path", s.path)
	}
}

func (w *watcher) stop() error {
	close(w.done)
	return w.fsw.Close()
}
