// This file is part of Ember.
//
// Ember is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Ember is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Ember.  If not, see <https://www.gnu.org/licenses/>.

package mapping

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/ember3d/ember/curated"
	"github.com/ember3d/ember/input"
	"github.com/ember3d/ember/logger"
)

// Watcher re-loads a mapping asset whenever the file changes on disk. Create
// with Watch() and release with Close().
type Watcher struct {
	watcher *fsnotify.Watcher
	done    chan bool
}

// Watch loads the mapping asset at path and calls apply with the result,
// now and again every time the file changes. A change that fails to load is
// logged and the previous mappings stay in effect.
//
// apply is called from the Watcher's goroutine. Callers that require the
// main-thread model of the input service must marshal the lists over to the
// main thread themselves.
func Watch(path string, apply func(actions []input.ActionConfig, axes []input.AxisConfig)) (*Watcher, error) {
	actions, axes, err := Load(path)
	if err != nil {
		return nil, err
	}
	apply(actions, axes)

	nw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, curated.Errorf("mapping: %v", err)
	}

	// watch the directory rather than the file. editors commonly replace a
	// file by writing a temporary and renaming it over the original, which
	// would silently end a watch on the file itself
	dir := filepath.Dir(path)
	if err := nw.Add(dir); err != nil {
		_ = nw.Close()
		return nil, curated.Errorf("mapping: %v", err)
	}

	w := &Watcher{
		watcher: nw,
		done:    make(chan bool),
	}

	name := filepath.Clean(path)
	go func() {
		for {
			select {
			case <-w.done:
				return

			case ev, ok := <-nw.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != name {
					continue
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
					continue
				}
				actions, axes, err := Load(path)
				if err != nil {
					logger.Logf(logger.Allow, "mapping", "reload of %s failed: %v", path, err)
					continue
				}
				logger.Logf(logger.Allow, "mapping", "reloaded %s", path)
				apply(actions, axes)

			case err, ok := <-nw.Errors:
				if !ok {
					return
				}
				logger.Logf(logger.Allow, "mapping", "watching %s: %v", dir, err)
			}
		}
	}()

	return w, nil
}

// Close ends the watch.
func (w *Watcher) Close() error {
	close(w.done)
	if err := w.watcher.Close(); err != nil {
		return curated.Errorf("mapping: %v", err)
	}
	return nil
}
