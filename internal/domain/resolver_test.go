package domain

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/party/internal/model"
)

// savesFixture lays out a saves folder with a standalone script, a bundle
// of two scripts, a scene-local script and a dangling reference.
type savesFixture struct {
	folders Folders
	a       m.Path
	b       m.Path
	c       m.Path
	bundle  m.Path
	local   m.Path
	one     m.Path
	two     m.Path
}

func newSavesFixture(t *testing.T) savesFixture {
	t.Helper()

	folders := newVam(t)

	return savesFixture{
		folders: folders,
		a:       vamFile(t, folders, "Saves/scripts/a.cs", "class A {}\n"),
		b:       vamFile(t, folders, "Saves/scripts/b.cs", "class B {}\n"),
		c:       vamFile(t, folders, "Saves/scripts/c.cs", "class C {}\n"),
		bundle:  vamFile(t, folders, "Saves/scripts/bundle.cslist", "b.cs\r\nc.cs\r\n"),
		local:   vamFile(t, folders, "Saves/scene/local.cs", "class Local {}\n"),
		one: vamFile(t, folders, "Saves/scene/one.json", sceneJSON(t,
			"Saves/scripts/a.cs",
			"Saves/scripts/bundle.cslist",
			"Saves/scripts/missing.cs",
		)),
		two: vamFile(t, folders, "Saves/scene/two.json", sceneJSON(t, "local.cs", "local.cs")),
	}
}

type recordingReporter struct {
	mu     sync.Mutex
	events []m.ScanProgress
}

func (r *recordingReporter) Notify(progress m.ScanProgress) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events = append(r.events, progress)
}

func (r *recordingReporter) saw(want m.ScanProgress) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, e := range r.events {
		if e == want {
			return true
		}
	}

	return false
}

func scriptPaths(scripts []m.Script) []m.Path {
	paths := make([]m.Path, 0, len(scripts))
	for _, s := range scripts {
		paths = append(paths, s.Path)
	}

	return paths
}

func TestSavesResolver_WholeSaves(t *testing.T) {
	fx := newSavesFixture(t)
	reporter := &recordingReporter{}

	saves, err := newResolver(fx.folders, ResolverOptions{}).Resolve(t.Context(), "", reporter)
	require.NoError(t, err)

	require.Equal(t, []m.Path{fx.local, fx.a, fx.bundle}, scriptPaths(saves.Scripts))

	local, a, bundle := saves.Scripts[0], saves.Scripts[1], saves.Scripts[2]

	assert.Equal(t, []m.Path{fx.two}, local.Scenes)
	assert.Equal(t, []m.Path{fx.one}, a.Scenes)
	assert.Equal(t, HashContent([]byte("class A {}")), a.Hash)

	t.Run("bundle claims its members", func(t *testing.T) {
		assert.Equal(t, m.FileScriptList, bundle.Kind)
		assert.Equal(t, HashLines([]string{"b.cs", "c.cs"}), bundle.Hash)
		assert.Equal(t, []m.Path{fx.b, fx.c}, scriptPaths(bundle.Members))
		assert.Equal(t, []m.Path{fx.one}, bundle.Scenes)
	})

	t.Run("scenes list resolved references once", func(t *testing.T) {
		require.Len(t, saves.Scenes, 2)
		assert.Equal(t, fx.one, saves.Scenes[0].Path)
		assert.Equal(t, []m.Path{fx.a, fx.bundle}, saves.Scenes[0].Scripts)
		assert.Equal(t, []m.Path{fx.local}, saves.Scenes[1].Scripts)
	})

	t.Run("dangling reference is a warning", func(t *testing.T) {
		require.Len(t, saves.Errors, 1)
		assert.Equal(t, fx.one, saves.Errors[0].File)
		assert.Equal(t, m.LevelWarning, saves.Errors[0].Level)
		assert.Contains(t, saves.Errors[0].Message, "script does not exist")
	})

	t.Run("progress reaches totals", func(t *testing.T) {
		assert.True(t, reporter.saw(m.ScanProgress{
			Scenes:  m.Progress{Total: 2, Done: 2},
			Scripts: m.Progress{Total: 5, Done: 5},
		}))
	})
}

func TestSavesResolver_BoundedConcurrencyIsDeterministic(t *testing.T) {
	fx := newSavesFixture(t)

	unbounded, err := newResolver(fx.folders, ResolverOptions{}).Resolve(t.Context(), "", nil)
	require.NoError(t, err)

	serial, err := newResolver(fx.folders, ResolverOptions{Concurrency: 1}).Resolve(t.Context(), "", nil)
	require.NoError(t, err)

	assert.Equal(t, unbounded, serial)
}

func TestSavesResolver_Ignore(t *testing.T) {
	fx := newSavesFixture(t)

	saves, err := newResolver(fx.folders, ResolverOptions{Ignore: []string{"scene"}}).Resolve(t.Context(), "", nil)
	require.NoError(t, err)

	assert.Empty(t, saves.Scenes)
	assert.Equal(t, []m.Path{fx.a, fx.bundle}, scriptPaths(saves.Scripts))
	assert.Empty(t, saves.Errors)
}

func TestSavesResolver_SceneFilter(t *testing.T) {
	fx := newSavesFixture(t)

	saves, err := newResolver(fx.folders, ResolverOptions{}).Resolve(t.Context(), string(fx.one), nil)
	require.NoError(t, err)

	require.Len(t, saves.Scenes, 1)
	assert.Equal(t, []m.Path{fx.a, fx.bundle}, saves.Scenes[0].Scripts)
	assert.Equal(t, []m.Path{fx.a, fx.bundle}, scriptPaths(saves.Scripts))

	require.Len(t, saves.Errors, 1)
	assert.Equal(t, m.LevelError, saves.Errors[0].Level, "missing files are loaded on demand and fail to read")
}

func TestSavesResolver_ScriptFilter(t *testing.T) {
	fx := newSavesFixture(t)

	saves, err := newResolver(fx.folders, ResolverOptions{}).Resolve(t.Context(), string(fx.a), nil)
	require.NoError(t, err)

	require.Equal(t, []m.Path{fx.a}, scriptPaths(saves.Scripts))
	assert.Equal(t, []m.Path{fx.one}, saves.Scripts[0].Scenes)

	require.Len(t, saves.Scenes, 1)
	assert.Equal(t, fx.one, saves.Scenes[0].Path)
}

func TestSavesResolver_DirectoryFilter(t *testing.T) {
	fx := newSavesFixture(t)

	dir := filepath.Join(string(fx.folders.Saves), "scripts")

	saves, err := newResolver(fx.folders, ResolverOptions{}).Resolve(t.Context(), dir, nil)
	require.NoError(t, err)

	assert.Empty(t, saves.Scenes)
	assert.Equal(t, []m.Path{fx.a, fx.bundle}, scriptPaths(saves.Scripts))
	assert.Empty(t, saves.Scripts[0].Scenes)
}

func TestSavesResolver_InvalidFilters(t *testing.T) {
	fx := newSavesFixture(t)
	resolver := newResolver(fx.folders, ResolverOptions{})

	tests := map[string]string{
		"unsupported extension": filepath.Join(string(fx.folders.Saves), "notes.txt"),
		"missing directory":     filepath.Join(string(fx.folders.Saves), "nope"),
	}

	for name, filter := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := resolver.Resolve(t.Context(), filter, nil)
			assert.ErrorIs(t, err, ErrUserInput)
		})
	}
}

func TestSavesResolver_ProblemsAreCollected(t *testing.T) {
	folders := newVam(t)

	broken := vamFile(t, folders, "Saves/broken.json", "{")
	nested := vamFile(t, folders, "Saves/lists/nested.cslist", "other.cslist\n")
	vamFile(t, folders, "Saves/lists/other.cslist", "x.cs\n")
	vamFile(t, folders, "Saves/lists/x.cs", "class X {}")
	empty := vamFile(t, folders, "Saves/lists/empty.cslist", "\r\n\r\n")

	saves, err := newResolver(folders, ResolverOptions{}).Resolve(t.Context(), "", nil)
	require.NoError(t, err)

	levels := map[m.Path]m.ErrorLevel{}
	for _, e := range saves.Errors {
		levels[e.File] = e.Level
	}

	assert.Equal(t, m.LevelError, levels[broken])
	assert.Equal(t, m.LevelWarning, levels[nested])
	assert.Equal(t, m.LevelWarning, levels[empty])

	errs, warnings := saves.CountErrors()
	assert.Equal(t, 1, errs)
	assert.Equal(t, 2, warnings)

	// other.cslist claims x.cs and is the only usable unit.
	require.Len(t, saves.Scripts, 1)
	assert.Equal(t, m.FileScriptList, saves.Scripts[0].Kind)
}

func TestSavesResolver_ListWithDanglingMemberIsDropped(t *testing.T) {
	folders := newVam(t)

	a := vamFile(t, folders, "Saves/lists/a.cs", "class A {}")
	list := vamFile(t, folders, "Saves/lists/l.cslist", "a.cs\nmissing.cs\n")

	saves, err := newResolver(folders, ResolverOptions{}).Resolve(t.Context(), "", nil)
	require.NoError(t, err)

	require.Len(t, saves.Errors, 1)
	assert.Equal(t, list, saves.Errors[0].File)
	assert.Equal(t, m.LevelWarning, saves.Errors[0].Level)
	assert.Contains(t, saves.Errors[0].Message, "script does not exist")

	require.Equal(t, []m.Path{a}, scriptPaths(saves.Scripts))
	assert.Equal(t, m.FileScript, saves.Scripts[0].Kind)
}

func TestSavesResolver_UnreadableScriptIsIsolated(t *testing.T) {
	folders := newVam(t)

	h1 := vamFile(t, folders, "Saves/scripts/h1.cs", "class H1 {}")
	h2 := vamFile(t, folders, "Saves/scripts/h2.cs", "class H2 {}")
	h3 := vamFile(t, folders, "Saves/scripts/h3.cs", "class H3 {}")
	scene := vamFile(t, folders, "Saves/scene.json", sceneJSON(t, "Saves/scripts/h1.cs", "Saves/scripts/x.cs"))

	unreadable := m.Path(filepath.Join(string(h1.Dir()), "x.cs"))
	if err := os.Symlink(filepath.Join(string(h1.Dir()), "nowhere.cs"), string(unreadable)); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	saves, err := newResolver(folders, ResolverOptions{Concurrency: 2}).Resolve(t.Context(), "", nil)
	require.NoError(t, err)

	errs, warnings := saves.CountErrors()
	assert.Equal(t, 1, errs)
	assert.Equal(t, 0, warnings)
	assert.Equal(t, unreadable, saves.Errors[0].File)

	assert.Equal(t, []m.Path{h1, h2, h3}, scriptPaths(saves.Scripts))

	require.Len(t, saves.Scenes, 1)
	assert.Equal(t, scene, saves.Scenes[0].Path)
	assert.Equal(t, []m.Path{h1}, saves.Scenes[0].Scripts)
}

func TestSavesResolver_SceneReferencingRejectedList(t *testing.T) {
	folders := newVam(t)

	empty := vamFile(t, folders, "Saves/scene/empty.cslist", "\n")
	scene := vamFile(t, folders, "Saves/scene/s.json", sceneJSON(t, "empty.cslist", "empty.cslist"))

	for name, filter := range map[string]string{"whole saves": "", "single scene": string(scene)} {
		t.Run(name, func(t *testing.T) {
			saves, err := newResolver(folders, ResolverOptions{}).Resolve(t.Context(), filter, nil)
			require.NoError(t, err)

			var onScene, onList int

			for _, e := range saves.Errors {
				assert.Equal(t, m.LevelWarning, e.Level)

				switch e.File {
				case scene:
					onScene++

					assert.Contains(t, e.Message, string(empty))
				case empty:
					onList++
				}
			}

			assert.Equal(t, 1, onScene)
			assert.Equal(t, 1, onList)

			require.Len(t, saves.Scenes, 1)
			assert.Empty(t, saves.Scenes[0].Scripts)
			assert.Empty(t, saves.Scripts)
		})
	}
}

func TestSavesResolver_Cancelled(t *testing.T) {
	fx := newSavesFixture(t)

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	_, err := newResolver(fx.folders, ResolverOptions{}).Resolve(ctx, "", nil)
	assert.ErrorIs(t, err, context.Canceled)
}
