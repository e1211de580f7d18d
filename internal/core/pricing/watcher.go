package pricing

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/SiddiqueAhmad/ai-costing/internal/util"
)

// ConfigWatcher watches a rate configuration file and invokes a callback when
// it changes. Editors replace files on save, so the parent directory is
// watched and events filtered by name.
type ConfigWatcher struct {
	watcher  *fsnotify.Watcher
	path     string
	onChange func()
}

// NewConfigWatcher starts watching the given config file. onChange runs on
// the watcher goroutine for every write/create/rename of the file.
func NewConfigWatcher(path string, onChange func()) (*ConfigWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		watcher.Close()
		return nil, err
	}

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return nil, err
	}

	cw := &ConfigWatcher{
		watcher:  watcher,
		path:     abs,
		onChange: onChange,
	}

	go cw.processEvents()

	return cw, nil
}

func (cw *ConfigWatcher) processEvents() {
	for {
		select {
		case event, ok := <-cw.watcher.Events:
			if !ok {
				return
			}

			if filepath.Clean(event.Name) != cw.path {
				continue
			}

			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				util.LogDebug(fmt.Sprintf("Rate config changed: %s (%s)", event.Name, event.Op))
				cw.onChange()
			}

		case err, ok := <-cw.watcher.Errors:
			if !ok {
				return
			}
			util.LogWarn(fmt.Sprintf("Rate config watcher error: %v", err))
		}
	}
}

// Close stops the watcher
func (cw *ConfigWatcher) Close() error {
	return cw.watcher.Close()
}
