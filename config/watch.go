package config

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/automoto/playdead/shared/actor"
	"github.com/fsnotify/fsnotify"
)

const reloadDebounce = 100 * time.Millisecond

// TuningWatcher reloads a tuning file whenever it changes on disk and hands
// the result to the game loop over Params. Reload failures go to Errors and
// the previous tuning stays in effect.
type TuningWatcher struct {
	watcher *fsnotify.Watcher
	path    string
	base    actor.Params
	Params  chan actor.Params
	Errors  chan error
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

// WatchTuning watches path. base is the tuning the file is overlaid onto on
// every reload.
func WatchTuning(path string, base actor.Params) (*TuningWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// Editors often replace the file, so watch the directory.
	if err := w.Add(filepath.Dir(path)); err != nil {
		_ = w.Close()
		return nil, err
	}

	watcher := &TuningWatcher{
		watcher: w,
		path:    filepath.Clean(path),
		base:    base,
		Params:  make(chan actor.Params, 1),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

func (w *TuningWatcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
		close(w.Params)
		close(w.Errors)
	})
	return err
}

func (w *TuningWatcher) run() {
	defer close(w.done)

	// Saves arrive as several events; reload once they settle.
	var pending <-chan time.Time
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			pending = time.After(reloadDebounce)
		case <-pending:
			pending = nil
			params, err := LoadTuning(w.path, w.base)
			if err != nil {
				w.sendError(err)
				continue
			}
			w.sendParams(params)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.sendError(err)
		case <-w.closeCh:
			return
		}
	}
}

// sendParams replaces any reload the loop has not picked up yet.
func (w *TuningWatcher) sendParams(p actor.Params) {
	select {
	case <-w.Params:
	default:
	}
	select {
	case w.Params <- p:
	case <-w.closeCh:
	}
}

// sendError drops the error if the loop has not read the previous one.
func (w *TuningWatcher) sendError(err error) {
	select {
	case w.Errors <- err:
	default:
	}
}
