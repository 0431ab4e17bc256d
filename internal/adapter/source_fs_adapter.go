// Package adapter contains infrastructure adapters for the party CLI.
package adapter

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	m "github.com/mouse-blink/party/internal/model"
)

// SourceFSAdapter abstracts filesystem-specific operations that the domain
// layer relies on when scanning the saves tree and installing packages. It
// hides direct `os` access so the workflow logic can be tested against any
// tree.
//
//nolint:interfacebloat // A richer interface keeps workflow logic decoupled from os/fs.
type SourceFSAdapter interface {
	// Walk recursively traverses root, calling fn for every regular file and
	// for every path that could not be read.
	Walk(root m.Path, fn FilepathWalkFunc) error

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// WriteFile writes content to a file, creating parent directories.
	WriteFile(path m.Path, content []byte, perm os.FileMode) error

	// FileInfo returns metadata for a path.
	FileInfo(path m.Path) (os.FileInfo, error)

	// Exists reports whether a regular file exists at path.
	Exists(path m.Path) bool

	// RelPath returns the relative path from base to target.
	RelPath(base, target m.Path) (m.Path, error)

	// JoinPath joins path elements into a single path.
	JoinPath(elem ...string) m.Path

	// FullPath resolves path against base unless it is already absolute, and
	// cleans the result.
	FullPath(path string, base m.Path) m.Path
}

// FilepathWalkFunc mirrors the callback shape used by filepath.Walk. It is
// called with a nil info and a non-nil err for unreadable paths; returning
// an error stops the walk.
type FilepathWalkFunc func(path m.Path, info os.FileInfo, err error) error

// LocalSourceFSAdapter is the os-backed SourceFSAdapter.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Walk iterates over every regular file under root.
func (a *LocalSourceFSAdapter) Walk(root m.Path, fn FilepathWalkFunc) error {
	return filepath.WalkDir(string(root), func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fn(m.Path(path), nil, err)
		}

		if d.IsDir() {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return fn(m.Path(path), nil, fmt.Errorf("stat %s: %w", path, err))
		}

		return fn(m.Path(path), info, nil)
	})
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	// #nosec G304 - paths come from the scanned saves tree
	return os.ReadFile(string(path))
}

// WriteFile writes content to a file with the given permissions.
func (a *LocalSourceFSAdapter) WriteFile(path m.Path, content []byte, perm os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(string(path)), 0o750); err != nil {
		return err
	}

	return os.WriteFile(string(path), content, perm)
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// Exists reports whether a regular file exists at path.
func (a *LocalSourceFSAdapter) Exists(path m.Path) bool {
	info, err := os.Stat(string(path))
	if err != nil {
		return false
	}

	return info.Mode().IsRegular()
}

// RelPath returns the relative path from base to target.
func (a *LocalSourceFSAdapter) RelPath(base, target m.Path) (m.Path, error) {
	rel, err := filepath.Rel(string(base), string(target))
	if err != nil {
		return "", err
	}

	return m.Path(rel), nil
}

// JoinPath joins path elements into a single path.
func (a *LocalSourceFSAdapter) JoinPath(elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}

// FullPath resolves path against base. Both slash styles are accepted.
func (a *LocalSourceFSAdapter) FullPath(path string, base m.Path) m.Path {
	native := filepath.FromSlash(strings.ReplaceAll(path, "\\", "/"))
	if filepath.IsAbs(native) {
		return m.Path(filepath.Clean(native))
	}

	return m.Path(filepath.Join(string(base), native))
}

// IsNotExist reports whether err is a missing-file error.
func IsNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
