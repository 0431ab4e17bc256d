package domain

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/party/internal/adapter"
	m "github.com/mouse-blink/party/internal/model"
)

// writeFile creates path and its parents with content.
func writeFile(t *testing.T, path, content string) m.Path {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return m.Path(path)
}

// newVam returns the folders of an empty VaM installation in a temp dir.
func newVam(t *testing.T) Folders {
	t.Helper()

	folders, err := NewFolders(t.TempDir(), "")
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(string(folders.Saves), 0o755))

	return folders
}

// vamFile writes a file relative to the VaM root.
func vamFile(t *testing.T, folders Folders, rel, content string) m.Path {
	t.Helper()

	return writeFile(t, filepath.Join(string(folders.Vam), filepath.FromSlash(rel)), content)
}

// sceneJSON renders a minimal scene with one PluginManager per atom.
func sceneJSON(t *testing.T, refs ...string) string {
	t.Helper()

	plugins := map[string]any{}
	for i, ref := range refs {
		plugins[fmt.Sprintf("plugin#%d", i)] = ref
	}

	data, err := json.Marshal(map[string]any{
		"atoms": []any{
			map[string]any{
				"id": "Person",
				"storables": []any{
					map[string]any{"id": "PluginManager", "plugins": plugins},
				},
			},
		},
	})
	require.NoError(t, err)

	return string(data)
}

func sha(content string) m.RegistryFileHash {
	return m.RegistryFileHash{Type: HashType, Value: HashContent([]byte(content))}
}

func adapterFS() adapter.SourceFSAdapter { return adapter.NewLocalSourceFSAdapter() }

func sceneSerializer() adapter.SceneSerializer {
	return adapter.NewJSONSceneSerializer(adapterFS())
}

func listSerializer() adapter.ScriptListSerializer {
	return adapter.NewTextScriptListSerializer(adapterFS())
}

func newResolver(folders Folders, opts ResolverOptions) SavesResolver {
	return NewSavesResolver(adapterFS(), sceneSerializer(), listSerializer(), folders, opts, nil, nil)
}

// fakeHTTP serves canned bodies by URL.
type fakeHTTP struct {
	mu     sync.Mutex
	bodies map[string]string
	calls  []string
}

func (f *fakeHTTP) Get(_ context.Context, url string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls = append(f.calls, url)

	body, ok := f.bodies[url]
	if !ok {
		return nil, &adapter.HTTPStatusError{URL: url, StatusCode: 404}
	}

	return []byte(body), nil
}
