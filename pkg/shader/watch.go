package shader

import (
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher signals when any of a set of shader source files changes on disk.
// It watches the parent directories so that editors which save by renaming a
// temporary file are still noticed. Changes are coalesced: a pending signal
// is not duplicated.
//
// The watcher never touches the graphics driver; the receiver of Changes is
// expected to reload on the context thread.
type Watcher struct {
	watcher *fsnotify.Watcher
	files   map[string]struct{}
	changes chan string
	done    chan struct{}
	logger  *slog.Logger
}

func NewWatcher(logger *slog.Logger, paths ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	w := &Watcher{
		watcher: fw,
		files:   make(map[string]struct{}, len(paths)),
		changes: make(chan string, 1),
		done:    make(chan struct{}),
		logger:  logger,
	}
	dirs := make(map[string]struct{})
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			fw.Close()
			return nil, err
		}
		w.files[abs] = struct{}{}
		dirs[filepath.Dir(abs)] = struct{}{}
	}
	for dir := range dirs {
		if err := fw.Add(dir); err != nil {
			fw.Close()
			return nil, err
		}
	}
	go w.run()
	return w, nil
}

// Changes delivers the path of a modified source file.
func (w *Watcher) Changes() <-chan string {
	return w.changes
}

func (w *Watcher) Close() error {
	err := w.watcher.Close()
	<-w.done
	return err
}

func (w *Watcher) run() {
	defer close(w.done)
	for {
		select {
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			name, err := filepath.Abs(ev.Name)
			if err != nil {
				continue
			}
			if _, watched := w.files[name]; !watched {
				continue
			}
			w.logger.Debug("shader source changed", "path", name, "op", ev.Op.String())
			select {
			case w.changes <- name:
			default:
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("shader watcher error", "err", err)
		}
	}
}
