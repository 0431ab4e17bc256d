package domain

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/party/internal/adapter"
	m "github.com/mouse-blink/party/internal/model"
)

func newUpgrader(folders Folders, metrics *Metrics) SceneUpgrader {
	return NewSceneUpgrader(adapter.NewJSONSceneSerializer(adapter.NewLocalSourceFSAdapter()), folders, metrics)
}

func upgradedInfo(folders Folders, files ...string) m.LocalPackageInfo {
	info := m.LocalPackageInfo{PackageName: "tool"}
	for _, f := range files {
		info.Files = append(info.Files, m.InstalledFileInfo{
			Path:   folders.RelativeToVam(f),
			Status: m.StatusInstalled,
		})
	}

	return info
}

func TestSceneUpgrader_Upgrade(t *testing.T) {
	folders := newVam(t)
	metrics := NewMetrics(nil)

	old := m.Script{Path: vamFile(t, folders, "Saves/scripts/Old.cs", "old")}
	scene := vamFile(t, folders, "Saves/scripts/scene.json", sceneJSON(t,
		`Saves\scripts\Old.cs`,
		"Old.cs",
		"Saves/scripts/Other.cs",
	))

	after := upgradedInfo(folders, "Saves/party/scripts/someone/tool/2.0/New.cs")

	replaced, err := newUpgrader(folders, metrics).Upgrade(scene, old, after)
	require.NoError(t, err)
	assert.Equal(t, 2, replaced)

	refs, err := adapter.NewJSONSceneSerializer(adapter.NewLocalSourceFSAdapter()).GetScripts(scene)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Saves/party/scripts/someone/tool/2.0/New.cs",
		"Saves/party/scripts/someone/tool/2.0/New.cs",
		"Saves/scripts/Other.cs",
	}, refs)

	assert.InDelta(t, 1, testutil.ToFloat64(metrics.ScenesUpgraded), 0)
}

func TestSceneUpgrader_NothingToReplace(t *testing.T) {
	folders := newVam(t)

	old := m.Script{Path: vamFile(t, folders, "Saves/scripts/Old.cs", "old")}
	content := sceneJSON(t, "Saves/scripts/Other.cs")
	scene := vamFile(t, folders, "Saves/scene.json", content)

	replaced, err := newUpgrader(folders, nil).Upgrade(scene, old, upgradedInfo(folders, "Saves/party/New.cs"))
	require.NoError(t, err)
	assert.Zero(t, replaced)

	data, err := os.ReadFile(string(scene))
	require.NoError(t, err)
	assert.Equal(t, content, string(data), "untouched scenes are not rewritten")
}

func TestSceneUpgrader_NotSupported(t *testing.T) {
	folders := newVam(t)
	scene := vamFile(t, folders, "Saves/scene.json", sceneJSON(t, "Saves/scripts/Old.cs"))

	tests := []struct {
		name  string
		old   m.Script
		after m.LocalPackageInfo
	}{
		{
			name:  "script list",
			old:   m.Script{Path: folders.RelativeToVam("Saves/scripts/Old.cslist"), Kind: m.FileScriptList},
			after: upgradedInfo(folders, "Saves/party/New.cs"),
		},
		{
			name:  "several files",
			old:   m.Script{Path: folders.RelativeToVam("Saves/scripts/Old.cs")},
			after: upgradedInfo(folders, "Saves/party/A.cs", "Saves/party/B.cs"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newUpgrader(folders, nil).Upgrade(scene, tt.old, tt.after)
			assert.ErrorIs(t, err, ErrNotSupported)
		})
	}
}

func TestSceneUpgrader_OutsideVam(t *testing.T) {
	folders := newVam(t)
	scene := vamFile(t, folders, "Saves/scene.json", sceneJSON(t, "Old.cs"))

	outside := m.Script{Path: m.Path(filepath.Join(t.TempDir(), "Old.cs"))}

	_, err := newUpgrader(folders, nil).Upgrade(scene, outside, upgradedInfo(folders, "Saves/party/New.cs"))
	assert.ErrorIs(t, err, ErrUserInput)
}
