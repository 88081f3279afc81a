package prefabs

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// reloadDebounce swallows the burst of writes editors emit on save.
const reloadDebounce = 100 * time.Millisecond

// Watcher reports edits to spec and script files under the watched dirs.
// Changed carries the base name of each edited file.
type Watcher struct {
	watcher *fsnotify.Watcher
	Changed chan string
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
	done    sync.WaitGroup
}

func NewWatcher(dirs ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	for _, dir := range dirs {
		if err := fw.Add(dir); err != nil {
			_ = fw.Close()
			return nil, err
		}
	}

	w := &Watcher{
		watcher: fw,
		Changed: make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	w.done.Add(1)
	go w.run()
	return w, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		w.done.Wait()
		close(w.Changed)
		close(w.Errors)
	})
	return err
}

func (w *Watcher) run() {
	defer w.done.Done()
	last := make(map[string]time.Time)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if !IsPrefabFile(event.Name) {
				continue
			}
			now := time.Now()
			if t, ok := last[event.Name]; ok && now.Sub(t) < reloadDebounce {
				continue
			}
			last[event.Name] = now
			select {
			case w.Changed <- filepath.Base(event.Name):
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}

// IsPrefabFile reports whether path names a spec or script the game reads.
func IsPrefabFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".tengo":
		return true
	default:
		return false
	}
}
