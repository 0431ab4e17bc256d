package domain

import (
	"github.com/mouse-blink/party/internal/adapter"
	m "github.com/mouse-blink/party/internal/model"
)

// SceneUpgrader repoints scene plugin references from a local script to an
// installed package file.
type SceneUpgrader interface {
	// Upgrade rewrites the references of scene that point at old and returns
	// how many were replaced. The scene is written only when at least one
	// reference changed.
	Upgrade(scene m.Path, old m.Script, after m.LocalPackageInfo) (int, error)
}

type sceneUpgrader struct {
	scenes  adapter.SceneSerializer
	folders Folders
	metrics *Metrics
}

// NewSceneUpgrader constructs a SceneUpgrader.
func NewSceneUpgrader(scenes adapter.SceneSerializer, folders Folders, metrics *Metrics) SceneUpgrader {
	if metrics == nil {
		metrics = NewMetrics(nil)
	}

	return &sceneUpgrader{scenes: scenes, folders: folders, metrics: metrics}
}

func (u *sceneUpgrader) Upgrade(scene m.Path, old m.Script, after m.LocalPackageInfo) (int, error) {
	changes, err := u.changes(old, after)
	if err != nil {
		return 0, err
	}

	doc, err := u.scenes.Deserialize(scene)
	if err != nil {
		return 0, err
	}

	replaced := 0

	for _, plugin := range doc.Plugins() {
		target, ok := changes[toSlash(plugin.Path())]
		if !ok {
			continue
		}

		plugin.SetPath(target)
		replaced++
	}

	if replaced == 0 {
		return 0, nil
	}

	if err := u.scenes.Serialize(doc, scene); err != nil {
		return 0, err
	}

	u.metrics.ScenesUpgraded.Inc()

	return replaced, nil
}

// changes maps both the VaM-relative path and the bare file name of old to
// the VaM-relative path of the single installed file.
func (u *sceneUpgrader) changes(old m.Script, after m.LocalPackageInfo) (map[string]string, error) {
	if old.IsList() {
		return nil, notSupportedErrorf(".cslist is not yet supported for upgrades")
	}

	if len(after.Files) != 1 {
		return nil, notSupportedErrorf("no automatic strategy implemented for upgrading to a package with %d files", len(after.Files))
	}

	target, err := u.folders.ToRelative(after.Files[0].Path)
	if err != nil {
		return nil, err
	}

	before, err := u.folders.ToRelative(old.Path)
	if err != nil {
		return nil, err
	}

	target = toSlash(target)

	return map[string]string{
		toSlash(before): target,
		old.Path.Base(): target,
	}, nil
}
