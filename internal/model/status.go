package model

// FileStatus is the local state of one registry file.
type FileStatus int

const (
	// StatusNotInstalled means the file is missing but can be downloaded.
	StatusNotInstalled FileStatus = iota
	// StatusInstalled means the file exists and its hash matches.
	StatusInstalled
	// StatusHashMismatch means the file exists with different content.
	StatusHashMismatch
	// StatusIgnored means the file is flagged as ignored by the registry.
	StatusIgnored
	// StatusNotInstallable means a bundled file is missing and has no download.
	StatusNotInstallable
)

func (s FileStatus) String() string {
	switch s {
	case StatusInstalled:
		return "installed"
	case StatusHashMismatch:
		return "hash mismatch"
	case StatusIgnored:
		return "ignored"
	case StatusNotInstallable:
		return "not installable"
	default:
		return "not installed"
	}
}

// InstalledFileInfo pairs a registry file with its local path and status.
type InstalledFileInfo struct {
	Path         Path
	RegistryFile RegistryFile
	Status       FileStatus
}

// LocalPackageInfo is the local state of one package version.
type LocalPackageInfo struct {
	PackageName   string
	Version       Version
	InstallFolder Path
	Files         []InstalledFileInfo
	Corrupted     bool
	Installed     bool
	Installable   bool
}

// DistinctStatuses returns the set of statuses in first-seen order.
func (i LocalPackageInfo) DistinctStatuses() []FileStatus {
	seen := make(map[FileStatus]struct{}, len(i.Files))

	var statuses []FileStatus

	for _, f := range i.Files {
		if _, ok := seen[f.Status]; ok {
			continue
		}

		seen[f.Status] = struct{}{}
		statuses = append(statuses, f.Status)
	}

	return statuses
}
