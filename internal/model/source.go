// Package model defines the data structures shared by the party packages.
package model

import (
	"path/filepath"
	"strings"
)

// Path represents a file system path.
type Path string

// Base returns the last element of the path.
func (p Path) Base() string {
	return filepath.Base(string(p))
}

// Dir returns all but the last element of the path.
func (p Path) Dir() Path {
	return Path(filepath.Dir(string(p)))
}

// File extensions recognized inside the saves tree.
const (
	SceneExt      = ".json"
	ScriptExt     = ".cs"
	ScriptListExt = ".cslist"
)

// FileKind is the closed set of roles a file can play in a scan.
type FileKind int

const (
	// FileIgnored is any file the scanner does not care about.
	FileIgnored FileKind = iota
	// FileScene is a scene (.json) that references scripts.
	FileScene
	// FileScript is a single script (.cs).
	FileScript
	// FileScriptList is a bundle of scripts (.cslist).
	FileScriptList
)

func (k FileKind) String() string {
	switch k {
	case FileScene:
		return "scene"
	case FileScript:
		return "script"
	case FileScriptList:
		return "scriptlist"
	default:
		return "ignored"
	}
}

// ClassifyFile resolves the kind of a file from its extension.
func ClassifyFile(path string) FileKind {
	switch strings.ToLower(filepath.Ext(path)) {
	case SceneExt:
		return FileScene
	case ScriptExt:
		return FileScript
	case ScriptListExt:
		return FileScriptList
	default:
		return FileIgnored
	}
}
