// Package watcher wraps fsnotify for draft-file watching. Editors
// typically replace files on save, so the parent directory is watched
// and events are filtered back down to the file of interest.
package watcher

import (
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
)

// Watcher watches draft input files for changes.
type Watcher struct {
	*fsnotify.Watcher
	files map[string]bool
}

// New creates a Watcher.
func New() (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		Watcher: w,
		files:   make(map[string]bool),
	}, nil
}

// WatchFile registers a single file. The containing directory is what
// actually gets watched.
func (w *Watcher) WatchFile(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	w.files[abs] = true
	return w.Add(filepath.Dir(abs))
}

// Matches reports whether an event concerns a registered file and is a
// content change (write, or create for editors that rename over the
// original).
func (w *Watcher) Matches(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return false
	}
	abs, err := filepath.Abs(event.Name)
	if err != nil {
		return false
	}
	return w.files[abs]
}

// IsDraftFile reports whether a path looks like draft input.
func IsDraftFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".txt" || ext == ".md"
}
