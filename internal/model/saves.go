package model

// ErrorLevel is the severity of a problem found while scanning saves.
type ErrorLevel int

const (
	// LevelWarning flags a missing or unresolvable reference.
	LevelWarning ErrorLevel = iota
	// LevelError flags a file that could not be read or parsed.
	LevelError
)

func (l ErrorLevel) String() string {
	if l == LevelError {
		return "error"
	}

	return "warning"
}

// SavesError is a per-file problem collected during a scan.
type SavesError struct {
	File    Path
	Message string
	Level   ErrorLevel
}

// Script is a local script file, or a script list (bundle) when Kind is
// FileScriptList. Scenes holds the paths of the scenes referencing it.
type Script struct {
	Path    Path
	Hash    string
	Kind    FileKind
	Members []Script
	Scenes  []Path
}

// Name returns the file name of the script.
func (s Script) Name() string {
	return s.Path.Base()
}

// IsList reports whether the script is a bundle.
func (s Script) IsList() bool {
	return s.Kind == FileScriptList
}

// Hashes returns every hash presented by the script: its own, plus the
// hashes of its members for bundles.
func (s Script) Hashes() []string {
	hashes := make([]string, 0, 1+len(s.Members))
	if s.Hash != "" {
		hashes = append(hashes, s.Hash)
	}

	for _, member := range s.Members {
		if member.Hash != "" {
			hashes = append(hashes, member.Hash)
		}
	}

	return hashes
}

// Scene is a saved scene and the scripts it declares.
type Scene struct {
	Path    Path
	Scripts []Path
}

// References reports whether the scene references the script path.
func (s Scene) References(script Path) bool {
	for _, p := range s.Scripts {
		if p == script {
			return true
		}
	}

	return false
}

// SavesMap is the result of one scan of the saves tree.
type SavesMap struct {
	Scripts []Script
	Scenes  []Scene
	Errors  []SavesError
}

// CountErrors returns the number of errors and warnings.
func (s SavesMap) CountErrors() (errs int, warnings int) {
	for _, e := range s.Errors {
		if e.Level == LevelError {
			errs++
		} else {
			warnings++
		}
	}

	return errs, warnings
}

// Progress is a (total, done) counter pair.
type Progress struct {
	Total int
	Done  int
}

// ScanProgress is published while a scan runs.
type ScanProgress struct {
	Scenes  Progress
	Scripts Progress
}
