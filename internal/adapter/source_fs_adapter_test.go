package adapter

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/party/internal/model"
)

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestLocalSourceFSAdapter_Walk(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	writeTestFile(t, filepath.Join(root, "scene.json"), "{}")
	writeTestFile(t, filepath.Join(root, "scripts", "a.cs"), "// a")
	writeTestFile(t, filepath.Join(root, "scripts", "nested", "b.cslist"), "a.cs")

	var visited []string
	err := adapter.Walk(m.Path(root), func(path m.Path, info os.FileInfo, err error) error {
		require.NoError(t, err)
		require.NotNil(t, info)
		visited = append(visited, string(path))

		return nil
	})
	require.NoError(t, err)

	sort.Strings(visited)
	assert.Equal(t, []string{
		filepath.Join(root, "scene.json"),
		filepath.Join(root, "scripts", "a.cs"),
		filepath.Join(root, "scripts", "nested", "b.cslist"),
	}, visited)
}

func TestLocalSourceFSAdapter_Walk_MissingRoot(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()
	missing := filepath.Join(t.TempDir(), "missing")

	var gotErr error
	err := adapter.Walk(m.Path(missing), func(_ m.Path, info os.FileInfo, err error) error {
		assert.Nil(t, info)
		gotErr = err

		return nil
	})
	require.NoError(t, err)
	assert.True(t, IsNotExist(gotErr))
}

func TestLocalSourceFSAdapter_WriteFileCreatesDirectories(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()
	path := m.Path(filepath.Join(t.TempDir(), "Saves", "party", "scripts", "a.cs"))

	require.NoError(t, adapter.WriteFile(path, []byte("content"), 0o600))

	data, err := adapter.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "content", string(data))
	assert.True(t, adapter.Exists(path))
	assert.False(t, adapter.Exists(path.Dir()), "directories are not files")
	assert.False(t, adapter.Exists(path+".missing"))
}

func TestLocalSourceFSAdapter_FullPath(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()
	base := m.Path(filepath.FromSlash("/vam/Saves/scene"))

	tests := []struct {
		name string
		path string
		want string
	}{
		{"relative", "a.cs", "/vam/Saves/scene/a.cs"},
		{"backslashes", `Custom\Scripts\a.cs`, "/vam/Saves/scene/Custom/Scripts/a.cs"},
		{"parent", "../scripts/a.cs", "/vam/Saves/scripts/a.cs"},
		{"absolute", "/other/a.cs", "/other/a.cs"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, m.Path(filepath.FromSlash(tt.want)), adapter.FullPath(tt.path, base))
		})
	}
}

func TestLocalSourceFSAdapter_RelAndJoin(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	joined := adapter.JoinPath("vam", "Saves", "a.cs")
	assert.Equal(t, m.Path(filepath.Join("vam", "Saves", "a.cs")), joined)

	rel, err := adapter.RelPath("vam", joined)
	require.NoError(t, err)
	assert.Equal(t, m.Path(filepath.Join("Saves", "a.cs")), rel)
}
