package domain

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/party/internal/adapter"
	m "github.com/mouse-blink/party/internal/model"
)

// ProgressReporter receives scan progress. Notify is fire-and-forget and may
// be called concurrently.
type ProgressReporter interface {
	Notify(progress m.ScanProgress)
}

// ResolutionPolicy decides what happens to references pointing at files the
// scan did not discover on its own.
type ResolutionPolicy int

const (
	// WarnMissing records a warning and skips the reference.
	WarnMissing ResolutionPolicy = iota
	// LoadMissing loads the referenced file on demand.
	LoadMissing
)

// SavesResolver scans the saves tree and builds the scene/script graph.
type SavesResolver interface {
	// Resolve scans according to filter: empty for the whole saves tree, a
	// directory, a scene (.json) or a script (.cs, .cslist). Per-file
	// problems are collected in SavesMap.Errors; only an unusable filter or
	// a cancelled context return an error.
	Resolve(ctx context.Context, filter string, reporter ProgressReporter) (m.SavesMap, error)
}

// ResolverOptions tunes a SavesResolver.
type ResolverOptions struct {
	// Ignore lists path prefixes, relative to the saves directory, that are
	// never scanned.
	Ignore []string
	// Concurrency caps the number of files processed at once. Zero or less
	// means one task per file.
	Concurrency int
}

type savesResolver struct {
	fs          adapter.SourceFSAdapter
	scenes      adapter.SceneSerializer
	lists       adapter.ScriptListSerializer
	folders     Folders
	ignored     []string
	concurrency int
	logger      *slog.Logger
	metrics     *Metrics
}

// NewSavesResolver constructs a SavesResolver.
func NewSavesResolver(
	fs adapter.SourceFSAdapter,
	scenes adapter.SceneSerializer,
	lists adapter.ScriptListSerializer,
	folders Folders,
	opts ResolverOptions,
	logger *slog.Logger,
	metrics *Metrics,
) SavesResolver {
	if logger == nil {
		logger = slog.Default()
	}

	if metrics == nil {
		metrics = NewMetrics(nil)
	}

	ignored := make([]string, 0, len(opts.Ignore))
	for _, p := range opts.Ignore {
		ignored = append(ignored, string(fs.FullPath(p, folders.Saves)))
	}

	return &savesResolver{
		fs:          fs,
		scenes:      scenes,
		lists:       lists,
		folders:     folders,
		ignored:     ignored,
		concurrency: opts.Concurrency,
		logger:      logger,
		metrics:     metrics,
	}
}

func (r *savesResolver) Resolve(ctx context.Context, filter string, reporter ProgressReporter) (saves m.SavesMap, err error) {
	ctx, span := tracer().Start(ctx, "SavesResolver.Resolve", trace.WithAttributes(attribute.String("party.filter", filter)))
	defer func() { endSpan(span, err) }()

	start := time.Now()
	defer func() {
		r.metrics.ScanDuration.Observe(time.Since(start).Seconds())
	}()

	if filter == "" {
		return r.resolveDirectory(ctx, r.folders.Saves, WarnMissing, reporter)
	}

	abs, err := filepath.Abs(filter)
	if err != nil {
		return m.SavesMap{}, userInputErrorf("invalid filter '%s': %v", filter, err)
	}

	if filepath.Ext(filter) == "" {
		info, statErr := r.fs.FileInfo(m.Path(abs))
		if statErr != nil || !info.IsDir() {
			return m.SavesMap{}, userInputErrorf("there were no files in the specified directory: '%s'", filter)
		}

		return r.resolveDirectory(ctx, m.Path(abs), LoadMissing, reporter)
	}

	switch m.ClassifyFile(abs) {
	case m.FileScene:
		return r.resolveScene(ctx, m.Path(abs), reporter)
	case m.FileScript, m.FileScriptList:
		return r.resolveScript(ctx, m.Path(abs), reporter)
	default:
		return m.SavesMap{}, userInputErrorf("filter '%s' is not supported", filter)
	}
}

// resolveDirectory scans every file under dir: scripts first, then script
// lists (which claim their members), then scenes.
func (r *savesResolver) resolveDirectory(ctx context.Context, dir m.Path, policy ResolutionPolicy, reporter ProgressReporter) (m.SavesMap, error) {
	s := r.newScan(ctx, policy, reporter)

	var scenes, scripts, lists []m.Path

	err := r.fs.Walk(dir, func(path m.Path, _ os.FileInfo, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		if walkErr != nil {
			if path == dir {
				return walkErr
			}

			s.errors.add(path, walkErr.Error(), m.LevelError)

			return nil
		}

		if r.isIgnored(path) {
			return nil
		}

		switch m.ClassifyFile(string(path)) {
		case m.FileScene:
			scenes = append(scenes, path)
			s.scenesTotal.Add(1)
		case m.FileScript:
			scripts = append(scripts, path)
			s.unitsTotal.Add(1)
		case m.FileScriptList:
			lists = append(lists, path)
			s.unitsTotal.Add(1)
		default:
			return nil
		}

		s.notify()

		return nil
	})
	if err != nil {
		if ctx.Err() != nil {
			return m.SavesMap{}, ctx.Err()
		}

		return m.SavesMap{}, configurationErrorf("cannot scan '%s': %v", dir, err)
	}

	unitDone := func(path m.Path) {
		s.loadUnit(path)
		s.unitsDone.Add(1)
		s.notify()
	}

	if err := s.forEach(scripts, unitDone); err != nil {
		return m.SavesMap{}, err
	}

	if err := s.forEach(lists, unitDone); err != nil {
		return m.SavesMap{}, err
	}

	resolved, err := s.loadScenes(scenes)
	if err != nil {
		return m.SavesMap{}, err
	}

	return s.result(resolved, s.arena.topLevel()), nil
}

// resolveScene loads a single scene, loading its references on demand.
func (r *savesResolver) resolveScene(ctx context.Context, scene m.Path, reporter ProgressReporter) (m.SavesMap, error) {
	s := r.newScan(ctx, LoadMissing, reporter)
	s.scenesTotal.Add(1)
	s.notify()

	resolved, err := s.loadScenes([]m.Path{scene})
	if err != nil {
		return m.SavesMap{}, err
	}

	return s.result(resolved, s.arena.topLevel()), nil
}

// resolveScript scans every scene to find back-references, then returns the
// requested script alone.
func (r *savesResolver) resolveScript(ctx context.Context, script m.Path, reporter ProgressReporter) (m.SavesMap, error) {
	s := r.newScan(ctx, LoadMissing, reporter)
	s.unitsTotal.Add(1)

	var scenes []m.Path

	err := r.fs.Walk(r.folders.Saves, func(path m.Path, _ os.FileInfo, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		if walkErr != nil {
			if path != r.folders.Saves {
				s.errors.add(path, walkErr.Error(), m.LevelError)
			}

			return nil
		}

		if r.isIgnored(path) || m.ClassifyFile(string(path)) != m.FileScene {
			return nil
		}

		scenes = append(scenes, path)
		s.scenesTotal.Add(1)
		s.notify()

		return nil
	})
	if err != nil {
		return m.SavesMap{}, err
	}

	resolved, err := s.loadScenes(scenes)
	if err != nil {
		return m.SavesMap{}, err
	}

	u := s.loadUnit(script)
	s.unitsDone.Add(1)
	s.notify()

	var units []*unit
	if !u.failed {
		units = []*unit{u}
	}

	referencing := make([]m.Scene, 0, len(resolved))
	for _, scene := range resolved {
		if scene.References(script) {
			referencing = append(referencing, scene)
		}
	}

	return s.result(referencing, units), nil
}

func (r *savesResolver) isIgnored(path m.Path) bool {
	for _, prefix := range r.ignored {
		if strings.HasPrefix(string(path), prefix) {
			return true
		}
	}

	return false
}

func (r *savesResolver) newScan(ctx context.Context, policy ResolutionPolicy, reporter ProgressReporter) *scan {
	return &scan{
		savesResolver: r,
		ctx:           ctx,
		policy:        policy,
		arena:         newArena(),
		errors:        &errorLog{logger: r.logger},
		reporter:      reporter,
	}
}

// scan holds the state of one Resolve call.
type scan struct {
	*savesResolver

	ctx      context.Context
	policy   ResolutionPolicy
	arena    *arena
	errors   *errorLog
	reporter ProgressReporter

	scenesTotal, scenesDone atomic.Int64
	unitsTotal, unitsDone   atomic.Int64
}

func (s *scan) notify() {
	if s.reporter == nil {
		return
	}

	s.reporter.Notify(m.ScanProgress{
		Scenes:  m.Progress{Total: int(s.scenesTotal.Load()), Done: int(s.scenesDone.Load())},
		Scripts: m.Progress{Total: int(s.unitsTotal.Load()), Done: int(s.unitsDone.Load())},
	})
}

// forEach runs fn for every path on the bounded worker pool. Per-file
// failures never stop the pool; only context cancellation does.
func (s *scan) forEach(paths []m.Path, fn func(m.Path)) error {
	g, ctx := errgroup.WithContext(s.ctx)

	limit := s.concurrency
	if limit <= 0 {
		limit = -1
	}

	g.SetLimit(limit)

	for _, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			s.isolate(path, func() { fn(path) })

			return nil
		})
	}

	return g.Wait()
}

// isolate turns a panic while processing one file into an error entry.
func (s *scan) isolate(path m.Path, fn func()) {
	defer func() {
		if rec := recover(); rec != nil {
			s.errors.add(path, fmt.Sprintf("unexpected failure: %v", rec), m.LevelError)
		}
	}()

	fn()
}

func (s *scan) loadScenes(paths []m.Path) ([]m.Scene, error) {
	scenes := make([]m.Scene, len(paths))
	index := make(map[m.Path]int, len(paths))

	for i, p := range paths {
		index[p] = i
		scenes[i] = m.Scene{Path: p}
	}

	err := s.forEach(paths, func(path m.Path) {
		scenes[index[path]] = s.loadScene(path)
		s.scenesDone.Add(1)
		s.notify()
	})
	if err != nil {
		return nil, err
	}

	return scenes, nil
}

func (s *scan) loadScene(path m.Path) m.Scene {
	scene := m.Scene{Path: path}

	s.metrics.FilesScanned.WithLabelValues(m.FileScene.String()).Inc()

	refs, err := s.scenes.GetScripts(path)
	if err != nil {
		s.errors.add(path, err.Error(), m.LevelError)
		return scene
	}

	seen := make(map[m.Path]struct{}, len(refs))

	for _, ref := range refs {
		full := s.resolveSceneReference(path, ref)

		u, ok := s.arena.get(full)
		if !ok {
			if s.policy != LoadMissing {
				s.errors.add(path, fmt.Sprintf("script does not exist: '%s'", full), m.LevelWarning)
				continue
			}

			u = s.loadUnit(full)
		}

		if _, dup := seen[full]; dup {
			continue
		}

		seen[full] = struct{}{}

		if u.failed {
			if u.kind == m.FileScriptList {
				s.errors.add(path, fmt.Sprintf("script does not exist: '%s'", full), m.LevelWarning)
			}

			continue
		}

		scene.Scripts = append(scene.Scripts, full)
		s.arena.link(path, full)
	}

	return scene
}

// resolveSceneReference resolves references containing a separator against
// the VaM root and bare file names against the scene's own directory.
func (s *scan) resolveSceneReference(scene m.Path, ref string) m.Path {
	if strings.ContainsAny(ref, `/\`) {
		return s.fs.FullPath(ref, s.folders.Vam)
	}

	return s.fs.FullPath(ref, scene.Dir())
}

// loadUnit returns the arena entry for path, loading it once if needed.
// Concurrent loads of the same path share one read.
func (s *scan) loadUnit(path m.Path) *unit {
	if u, ok := s.arena.get(path); ok {
		return u
	}

	v, _, _ := s.arena.loads.Do(string(path), func() (any, error) {
		if u, ok := s.arena.get(path); ok {
			return u, nil
		}

		var u *unit
		if m.ClassifyFile(string(path)) == m.FileScriptList {
			u = s.loadList(path)
		} else {
			u = s.loadScript(path)
		}

		return s.arena.loadOrStore(u), nil
	})

	return v.(*unit)
}

func (s *scan) loadScript(path m.Path) *unit {
	s.metrics.FilesScanned.WithLabelValues(m.FileScript.String()).Inc()

	hash, err := HashFile(s.fs, path)
	if err != nil {
		s.errors.add(path, err.Error(), m.LevelError)
		return &unit{path: path, kind: m.FileScript, failed: true}
	}

	return &unit{path: path, kind: m.FileScript, hash: hash}
}

// loadList resolves a script list. A list with any unresolvable member, or
// without members, is unusable and yields a failed unit.
func (s *scan) loadList(path m.Path) *unit {
	s.metrics.FilesScanned.WithLabelValues(m.FileScriptList.String()).Inc()

	failed := &unit{path: path, kind: m.FileScriptList, failed: true}

	refs, err := s.lists.GetScripts(path)
	if err != nil {
		s.errors.add(path, err.Error(), m.LevelError)
		return failed
	}

	if len(refs) == 0 {
		s.errors.add(path, "script list does not reference any script", m.LevelWarning)
		return failed
	}

	members := make([]m.Path, 0, len(refs))

	for _, ref := range refs {
		full := s.fs.FullPath(ref, path.Dir())

		if m.ClassifyFile(string(full)) == m.FileScriptList {
			s.errors.add(path, fmt.Sprintf("nested script lists are not supported: '%s'", full), m.LevelWarning)
			return failed
		}

		u, ok := s.arena.get(full)
		if !ok {
			if s.policy != LoadMissing {
				s.errors.add(path, fmt.Sprintf("script does not exist: '%s'", full), m.LevelWarning)
				return failed
			}

			u = s.loadUnit(full)
		}

		if u.failed {
			return failed
		}

		members = append(members, full)
	}

	s.arena.claim(members)

	return &unit{path: path, kind: m.FileScriptList, hash: HashLines(refs), members: members}
}

func (s *scan) result(scenes []m.Scene, units []*unit) m.SavesMap {
	scripts := make([]m.Script, 0, len(units))
	for _, u := range units {
		scripts = append(scripts, s.arena.script(u))
	}

	sortScripts(scripts)
	sortScenes(scenes)

	errs := s.errors.sorted()
	for _, e := range errs {
		s.metrics.ScanErrors.WithLabelValues(e.Level.String()).Inc()
	}

	s.logger.Debug("saves resolved",
		"scripts", len(scripts),
		"scenes", len(scenes),
		"problems", len(errs),
	)

	return m.SavesMap{Scripts: scripts, Scenes: scenes, Errors: errs}
}
