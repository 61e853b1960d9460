// Package watcher triggers debounced reload callbacks when dataset
// files change on disk.
package watcher

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// FileWatcher watches dataset files and invokes a reload callback
// after changes settle. Editors that save atomically replace the file,
// so rename and remove events re-arm the watch on the same path.
type FileWatcher struct {
	fs       *fsnotify.Watcher
	mu       sync.Mutex
	reloads  map[string]func(string)
	pending  map[string]*time.Timer
	debounce time.Duration
	onError  func(error)
}

// NewFileWatcher creates a watcher and starts its event loop.
func NewFileWatcher(debounce time.Duration) (*FileWatcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	fw := &FileWatcher{
		fs:       fs,
		reloads:  make(map[string]func(string)),
		pending:  make(map[string]*time.Timer),
		debounce: debounce,
	}
	go fw.run()
	return fw, nil
}

// SetErrorHandler routes watcher errors to the given function.
// Without a handler errors are dropped.
func (fw *FileWatcher) SetErrorHandler(handler func(error)) {
	fw.mu.Lock()
	defer fw.mu.Unlock()
	fw.onError = handler
}

// Watch registers files and the callback fired when any of them change.
func (fw *FileWatcher) Watch(files []string, callback func(string)) error {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	for _, file := range files {
		absPath, err := filepath.Abs(file)
		if err != nil {
			return fmt.Errorf("failed to resolve path %s: %w", file, err)
		}
		if err := fw.fs.Add(absPath); err != nil {
			return fmt.Errorf("failed to watch %s: %w", absPath, err)
		}
		fw.reloads[absPath] = callback
	}
	return nil
}

func (fw *FileWatcher) run() {
	for {
		select {
		case event, ok := <-fw.fs.Events:
			if !ok {
				return
			}
			switch {
			case event.Op&(fsnotify.Write|fsnotify.Create) != 0:
				fw.schedule(event.Name)
			case event.Op&(fsnotify.Rename|fsnotify.Remove) != 0:
				fw.rearm(event.Name)
			}

		case err, ok := <-fw.fs.Errors:
			if !ok {
				return
			}
			fw.mu.Lock()
			handler := fw.onError
			fw.mu.Unlock()
			if handler != nil {
				handler(err)
			}
		}
	}
}

// schedule arms the debounce timer for a changed file, replacing any
// timer still pending from earlier events.
func (fw *FileWatcher) schedule(path string) {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	callback, watched := fw.reloads[path]
	if !watched {
		return
	}
	if timer, exists := fw.pending[path]; exists {
		timer.Stop()
	}
	fw.pending[path] = time.AfterFunc(fw.debounce, func() {
		callback(path)
	})
}

// rearm re-adds a watched path after an atomic save replaced the file,
// then schedules a reload for the new content.
func (fw *FileWatcher) rearm(path string) {
	fw.mu.Lock()
	_, watched := fw.reloads[path]
	fw.mu.Unlock()
	if !watched {
		return
	}

	// The new file may appear a moment after the rename event.
	time.AfterFunc(fw.debounce, func() {
		if err := fw.fs.Add(path); err != nil {
			fw.mu.Lock()
			handler := fw.onError
			fw.mu.Unlock()
			if handler != nil {
				handler(err)
			}
			return
		}
		fw.schedule(path)
	})
}

// Close stops the watcher and its event loop.
func (fw *FileWatcher) Close() error {
	fw.mu.Lock()
	for _, timer := range fw.pending {
		timer.Stop()
	}
	fw.pending = make(map[string]*time.Timer)
	fw.mu.Unlock()

	return fw.fs.Close()
}
