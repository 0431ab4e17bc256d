package domain

import (
	"cmp"
	"log/slog"
	"slices"
	"sync"

	"golang.org/x/sync/singleflight"

	m "github.com/mouse-blink/party/internal/model"
)

// unit is a script or script list known to a scan.
type unit struct {
	path    m.Path
	kind    m.FileKind
	hash    string
	members []m.Path
	failed  bool
	claimed bool
}

// arena indexes every unit of a scan by path, together with the relations
// between scenes, lists and scripts. Units are inserted at most once.
type arena struct {
	mu      sync.RWMutex
	units   map[m.Path]*unit
	claimed map[m.Path]struct{}
	scenes  map[m.Path]map[m.Path]struct{}
	loads   singleflight.Group
}

func newArena() *arena {
	return &arena{
		units:   make(map[m.Path]*unit),
		claimed: make(map[m.Path]struct{}),
		scenes:  make(map[m.Path]map[m.Path]struct{}),
	}
}

func (a *arena) get(path m.Path) (*unit, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	u, ok := a.units[path]

	return u, ok
}

// loadOrStore inserts u unless its path is already present and returns the
// stored unit.
func (a *arena) loadOrStore(u *unit) *unit {
	a.mu.Lock()
	defer a.mu.Unlock()

	if existing, ok := a.units[u.path]; ok {
		return existing
	}

	if _, ok := a.claimed[u.path]; ok {
		u.claimed = true
	}

	a.units[u.path] = u

	return u
}

// claim marks scripts as members of a list so they are no longer reported
// as standalone scripts.
func (a *arena) claim(members []m.Path) {
	a.mu.Lock()
	defer a.mu.Unlock()

	for _, p := range members {
		a.claimed[p] = struct{}{}
		if u, ok := a.units[p]; ok {
			u.claimed = true
		}
	}
}

// link records that scene references script.
func (a *arena) link(scene, script m.Path) {
	a.mu.Lock()
	defer a.mu.Unlock()

	set, ok := a.scenes[script]
	if !ok {
		set = make(map[m.Path]struct{})
		a.scenes[script] = set
	}

	set[scene] = struct{}{}
}

// topLevel returns the usable units that are not part of a list.
func (a *arena) topLevel() []*unit {
	a.mu.RLock()
	defer a.mu.RUnlock()

	units := make([]*unit, 0, len(a.units))
	for _, u := range a.units {
		if u.failed || u.claimed {
			continue
		}

		units = append(units, u)
	}

	return units
}

// script materializes a unit with its members and referencing scenes.
func (a *arena) script(u *unit) m.Script {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return a.scriptLocked(u)
}

func (a *arena) scriptLocked(u *unit) m.Script {
	s := m.Script{
		Path:   u.path,
		Hash:   u.hash,
		Kind:   u.kind,
		Scenes: sortedPaths(a.scenes[u.path]),
	}

	for _, p := range u.members {
		member, ok := a.units[p]
		if !ok {
			continue
		}

		s.Members = append(s.Members, a.scriptLocked(member))
	}

	return s
}

func sortedPaths(set map[m.Path]struct{}) []m.Path {
	if len(set) == 0 {
		return nil
	}

	paths := make([]m.Path, 0, len(set))
	for p := range set {
		paths = append(paths, p)
	}

	slices.Sort(paths)

	return paths
}

func sortScripts(scripts []m.Script) {
	slices.SortFunc(scripts, func(a, b m.Script) int {
		return cmp.Compare(a.Path, b.Path)
	})
}

func sortScenes(scenes []m.Scene) {
	slices.SortFunc(scenes, func(a, b m.Scene) int {
		return cmp.Compare(a.Path, b.Path)
	})
}

// errorLog collects per-file problems from concurrent workers.
type errorLog struct {
	mu      sync.Mutex
	entries []m.SavesError
	logger  *slog.Logger
}

func (l *errorLog) add(file m.Path, message string, level m.ErrorLevel) {
	l.mu.Lock()
	l.entries = append(l.entries, m.SavesError{File: file, Message: message, Level: level})
	l.mu.Unlock()

	if l.logger != nil {
		l.logger.Debug("scan problem", "file", file, "level", level.String(), "message", message)
	}
}

// sorted returns the problems ordered by file, then level, then message.
func (l *errorLog) sorted() []m.SavesError {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := slices.Clone(l.entries)
	slices.SortFunc(out, func(a, b m.SavesError) int {
		return cmp.Or(
			cmp.Compare(a.File, b.File),
			cmp.Compare(b.Level, a.Level),
			cmp.Compare(a.Message, b.Message),
		)
	})

	return out
}
