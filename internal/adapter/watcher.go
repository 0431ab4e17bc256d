package adapter

import (
	"io/fs"
	"path/filepath"
	"sort"
	"time"

	"github.com/fsnotify/fsnotify"

	m "github.com/mouse-blink/party/internal/model"
)

// ChangeWatcher reports batches of changed saves files.
type ChangeWatcher interface {
	Start() error
	Changes() <-chan []m.Path
	Stop()
}

// WatcherFactory creates a ChangeWatcher rooted at a directory.
type WatcherFactory func(root m.Path) (ChangeWatcher, error)

// SavesWatcher monitors a saves tree for scene, script and script list
// changes using fsnotify. Changes are debounced and emitted as one batch.
type SavesWatcher struct {
	Root     m.Path
	Debounce time.Duration

	changes chan []m.Path
	done    chan struct{}
	watcher *fsnotify.Watcher
}

// NewSavesWatcher creates a watcher for root.
func NewSavesWatcher(root m.Path) (ChangeWatcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &SavesWatcher{
		Root:     root,
		Debounce: 250 * time.Millisecond,
		changes:  make(chan []m.Path, 4),
		done:     make(chan struct{}),
		watcher:  fw,
	}, nil
}

// Changes returns the batch channel. It is closed by Stop.
func (w *SavesWatcher) Changes() <-chan []m.Path {
	return w.changes
}

// Start registers every directory under Root and begins watching.
func (w *SavesWatcher) Start() error {
	if err := w.addTree(string(w.Root)); err != nil {
		return err
	}

	go w.loop()

	return nil
}

// Stop closes the watcher and the changes channel.
func (w *SavesWatcher) Stop() {
	_ = w.watcher.Close()
	<-w.done
	close(w.changes)
}

// fsnotify is not recursive, so every directory is added on its own.
func (w *SavesWatcher) addTree(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() {
			return nil
		}

		return w.watcher.Add(path)
	})
}

func (w *SavesWatcher) loop() {
	defer close(w.done)

	pending := make(map[m.Path]struct{})
	last := time.Time{}

	ticker := time.NewTicker(w.Debounce / 2)
	defer ticker.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			if event.Has(fsnotify.Create) {
				// New directories must be watched too; errors mean it was a file.
				_ = w.addTree(event.Name)
			}

			if m.ClassifyFile(event.Name) == m.FileIgnored {
				continue
			}

			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				pending[m.Path(event.Name)] = struct{}{}
				last = time.Now()
			}

		case <-ticker.C:
			if len(pending) == 0 || time.Since(last) < w.Debounce {
				continue
			}

			batch := make([]m.Path, 0, len(pending))
			for p := range pending {
				batch = append(batch, p)
			}

			sort.Slice(batch, func(i, j int) bool { return batch[i] < batch[j] })

			pending = make(map[m.Path]struct{})

			select {
			case w.changes <- batch:
			default:
				// A batch is already waiting; the next scan picks these up too.
			}

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
		}
	}
}
