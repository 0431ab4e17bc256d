package adapter

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/party/internal/model"
)

func TestSavesWatcher_BatchesScriptChanges(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "scripts"), 0o750))

	watcher, err := NewSavesWatcher(m.Path(root))
	require.NoError(t, err)

	sw := watcher.(*SavesWatcher)
	sw.Debounce = 50 * time.Millisecond

	require.NoError(t, watcher.Start())
	defer watcher.Stop()

	writeTestFile(t, filepath.Join(root, "notes.txt"), "ignored")
	writeTestFile(t, filepath.Join(root, "scripts", "a.cs"), "// a")

	select {
	case batch := <-watcher.Changes():
		assert.Contains(t, batch, m.Path(filepath.Join(root, "scripts", "a.cs")))
		assert.NotContains(t, batch, m.Path(filepath.Join(root, "notes.txt")))
	case <-time.After(3 * time.Second):
		t.Fatal("no change batch received")
	}
}

func TestSavesWatcher_StopClosesChanges(t *testing.T) {
	watcher, err := NewSavesWatcher(m.Path(t.TempDir()))
	require.NoError(t, err)
	require.NoError(t, watcher.Start())

	watcher.Stop()

	_, ok := <-watcher.Changes()
	assert.False(t, ok)
}

func TestSavesWatcher_StartMissingRoot(t *testing.T) {
	watcher, err := NewSavesWatcher(m.Path(filepath.Join(t.TempDir(), "missing")))
	require.NoError(t, err)

	assert.Error(t, watcher.Start())
}
