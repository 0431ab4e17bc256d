package domain

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/party/internal/model"
)

func TestNewFolders(t *testing.T) {
	root := t.TempDir()

	folders, err := NewFolders(root, "")
	require.NoError(t, err)

	assert.Equal(t, m.Path(root), folders.Vam)
	assert.Equal(t, m.Path(filepath.Join(root, "Saves")), folders.Saves)
	assert.Equal(t, m.Path(filepath.Join(root, "Saves", "party")), folders.Packages)

	custom, err := NewFolders(root, "Custom/Scripts/party")
	require.NoError(t, err)
	assert.Equal(t, m.Path(filepath.Join(root, "Custom", "Scripts", "party")), custom.Packages)
}

func TestFolders_InstallDirectory(t *testing.T) {
	folders, err := NewFolders(t.TempDir(), "")
	require.NoError(t, err)

	pkg := m.RegistryPackage{Name: "improved-pov", Author: "Acidbubbles"}
	got := folders.InstallDirectory(pkg, m.MustParseVersion("1.2.0"))

	assert.Equal(t, m.Path(filepath.Join(string(folders.Packages), "scripts", "Acidbubbles", "improved-pov", "1.2.0")), got)

	anonymous := folders.InstallDirectory(m.RegistryPackage{Name: "x", Type: "Clothing"}, m.MustParseVersion("1"))
	assert.Equal(t, m.Path(filepath.Join(string(folders.Packages), "clothing", "Anonymous", "x", "1")), anonymous)
}

func TestFolders_Relative(t *testing.T) {
	folders, err := NewFolders(t.TempDir(), "")
	require.NoError(t, err)

	path := folders.RelativeToVam(`Custom\Scripts\a.cs`)
	assert.Equal(t, m.Path(filepath.Join(string(folders.Vam), "Custom", "Scripts", "a.cs")), path)

	rel, err := folders.ToRelative(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("Custom", "Scripts", "a.cs"), rel)

	_, err = folders.ToRelative(m.Path(filepath.Dir(string(folders.Vam))))
	assert.ErrorIs(t, err, ErrUserInput)
}

func TestFolders_IsManaged(t *testing.T) {
	folders, err := NewFolders(t.TempDir(), "")
	require.NoError(t, err)

	assert.True(t, folders.IsManaged(m.Path(filepath.Join(string(folders.Packages), "scripts", "a.cs"))))
	assert.False(t, folders.IsManaged(m.Path(filepath.Join(string(folders.Saves), "scripts", "a.cs"))))
	assert.False(t, folders.IsManaged(m.Path(string(folders.Packages)+"-old")))
}
