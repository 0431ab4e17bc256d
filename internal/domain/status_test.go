package domain

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/party/internal/adapter"
	m "github.com/mouse-blink/party/internal/model"
)

func statusPackage() (m.RegistryPackage, m.RegistryPackageVersion) {
	v := m.RegistryPackageVersion{
		Version: m.MustParseVersion("1.2"),
		Files: []m.RegistryFile{
			{Filename: "Main.cs", URL: "https://example.org/Main.cs", Hash: sha("main")},
			{Filename: "Helper.cs", URL: "https://example.org/Helper.cs", Hash: sha("helper")},
			{Filename: "Readme.cs", Ignore: true, Hash: sha("readme")},
		},
	}

	return m.RegistryPackage{Name: "tool", Author: "someone", Versions: []m.RegistryPackageVersion{v}}, v
}

func TestPackageStatus_Evaluate(t *testing.T) {
	folders := newVam(t)
	fs := adapter.NewLocalSourceFSAdapter()
	pkg, v := statusPackage()
	dir := string(folders.InstallDirectory(pkg, v.Version))

	t.Run("not installed", func(t *testing.T) {
		info, err := NewPackageStatus(fs, folders).Evaluate(pkg, v)
		require.NoError(t, err)

		assert.Equal(t, m.Path(dir), info.InstallFolder)
		require.Len(t, info.Files, 2, "ignored files are skipped")
		assert.Equal(t, []m.FileStatus{m.StatusNotInstalled}, info.DistinctStatuses())
		assert.False(t, info.Installed)
		assert.True(t, info.Installable)
		assert.False(t, info.Corrupted)
		assert.Equal(t, m.Path(filepath.Join(dir, "Main.cs")), info.Files[0].Path)
	})

	t.Run("partially installed", func(t *testing.T) {
		writeFile(t, filepath.Join(dir, "Main.cs"), "main\r\n")

		info, err := NewPackageStatus(fs, folders).Evaluate(pkg, v)
		require.NoError(t, err)

		assert.Equal(t, []m.FileStatus{m.StatusInstalled, m.StatusNotInstalled}, info.DistinctStatuses())
		assert.False(t, info.Installed)
		assert.True(t, info.Installable)
	})

	t.Run("modified", func(t *testing.T) {
		writeFile(t, filepath.Join(dir, "Helper.cs"), "changed")

		info, err := NewPackageStatus(fs, folders).Evaluate(pkg, v)
		require.NoError(t, err)

		assert.True(t, info.Corrupted)
		assert.False(t, info.Installable)
		assert.Equal(t, m.StatusHashMismatch, info.Files[1].Status)
	})

	t.Run("installed", func(t *testing.T) {
		writeFile(t, filepath.Join(dir, "Helper.cs"), "helper")

		info, err := NewPackageStatus(fs, folders).Evaluate(pkg, v)
		require.NoError(t, err)

		assert.True(t, info.Installed)
		assert.False(t, info.Corrupted)
	})
}

func TestPackageStatus_BundledFiles(t *testing.T) {
	folders := newVam(t)
	fs := adapter.NewLocalSourceFSAdapter()

	v := m.RegistryPackageVersion{
		Version: m.MustParseVersion("1"),
		Files: []m.RegistryFile{
			{LocalPath: "Custom/Scripts/Bundled.cs", Hash: sha("bundled")},
		},
	}
	pkg := m.RegistryPackage{Name: "bundled", Versions: []m.RegistryPackageVersion{v}}

	info, err := NewPackageStatus(fs, folders).Evaluate(pkg, v)
	require.NoError(t, err)
	assert.Equal(t, m.StatusNotInstallable, info.Files[0].Status)
	assert.False(t, info.Installable)
	assert.True(t, HasMissingBundled(BundledFiles(fs, folders, v)))

	vamFile(t, folders, "Custom/Scripts/Bundled.cs", "anything")

	info, err = NewPackageStatus(fs, folders).Evaluate(pkg, v)
	require.NoError(t, err)
	assert.True(t, info.Installed, "bundled files are only checked for existence")
	assert.False(t, HasMissingBundled(BundledFiles(fs, folders, v)))
}

func TestPackageStatus_UnsupportedHashType(t *testing.T) {
	folders := newVam(t)
	fs := adapter.NewLocalSourceFSAdapter()

	v := m.RegistryPackageVersion{
		Version: m.MustParseVersion("1"),
		Files:   []m.RegistryFile{{Filename: "A.cs", Hash: m.RegistryFileHash{Type: "md5", Value: "x"}}},
	}
	pkg := m.RegistryPackage{Name: "md5", Versions: []m.RegistryPackageVersion{v}}

	path := filepath.Join(string(folders.InstallDirectory(pkg, v.Version)), "A.cs")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("a"), 0o600))

	_, err := NewPackageStatus(fs, folders).Evaluate(pkg, v)
	assert.ErrorIs(t, err, ErrConfiguration)
}

func TestValidateStatuses(t *testing.T) {
	info := func(statuses ...m.FileStatus) m.LocalPackageInfo {
		var out m.LocalPackageInfo
		for _, s := range statuses {
			out.Files = append(out.Files, m.InstalledFileInfo{Status: s})
		}

		return out
	}

	tests := []struct {
		name     string
		info     m.LocalPackageInfo
		sentinel error
	}{
		{"fresh", info(m.StatusNotInstalled, m.StatusNotInstalled), nil},
		{"partial", info(m.StatusInstalled, m.StatusNotInstalled), ErrInstallation},
		{"empty", info(), ErrInstallation},
		{"installed", info(m.StatusInstalled), ErrUserInput},
		{"modified", info(m.StatusHashMismatch), ErrInstallation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStatuses(tt.info)
			if tt.sentinel == nil {
				assert.NoError(t, err)
				return
			}

			assert.ErrorIs(t, err, tt.sentinel)
		})
	}
}
