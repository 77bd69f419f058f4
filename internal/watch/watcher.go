// Package watch follows a roster file on disk and reports its names every
// time the file changes.
package watch

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/papapumpkin/holocron/internal/roster"
)

// debounce coalesces the burst of events editors produce on save.
const debounce = 100 * time.Millisecond

// Update carries the roster file's names after a change, or the error that
// kept it from being read.
type Update struct {
	Names []string
	Err   error
}

// Watcher monitors one roster file using fsnotify. The file's directory is
// watched rather than the file itself so atomic-rename saves are seen.
type Watcher struct {
	Path    string
	Updates <-chan Update // Read-only external channel

	updates chan Update // Internal write channel
	stop    chan struct{}
	done    chan struct{}
	watcher *fsnotify.Watcher
}

// New creates a watcher for the roster file at path.
func New(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	ch := make(chan Update, 4)
	return &Watcher{
		Path:    abs,
		Updates: ch,
		updates: ch,
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
		watcher: fw,
	}, nil
}

// Start begins watching.
func (w *Watcher) Start() error {
	if err := w.watcher.Add(filepath.Dir(w.Path)); err != nil {
		return err
	}
	go w.loop()
	return nil
}

// Stop closes the watcher and the Updates channel.
func (w *Watcher) Stop() {
	close(w.stop)
	w.watcher.Close()
	<-w.done
	close(w.updates)
}

func (w *Watcher) loop() {
	defer close(w.done)

	var (
		pending bool
		last    time.Time
	)
	ticker := time.NewTicker(debounce)
	defer ticker.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				if pending {
					w.emit()
				}
				return
			}
			if filepath.Clean(event.Name) != w.Path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				pending = true
				last = time.Now()
			}

		case <-ticker.C:
			if pending && time.Since(last) >= debounce {
				pending = false
				w.emit()
			}

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Watch errors are non-fatal; the next event retries the read.
		}
	}
}

func (w *Watcher) emit() {
	var u Update
	f, err := roster.LoadFile(w.Path)
	if err != nil {
		u.Err = err
	} else {
		u.Names = f.Names
	}
	select {
	case w.updates <- u:
	case <-w.stop:
	}
}
