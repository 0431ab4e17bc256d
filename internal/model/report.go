package model

import "time"

// ScanSummary reports how long the scan and the registry download took.
type ScanSummary struct {
	Scenes           int
	Scripts          int
	Errors           int
	Warnings         int
	ScanDuration     time.Duration
	RegistryDuration time.Duration
	Total            time.Duration
}

// StatusEntry is one matched local unit.
type StatusEntry struct {
	Match           Match
	Latest          RegistryPackageVersion
	UpdateAvailable bool
	// MajorChange is set when the latest version bumps the major component.
	MajorChange bool
	// MissingBundled is set when the latest version has bundled files that
	// cannot be downloaded and are not present locally.
	MissingBundled bool
	// Managed is set when the local unit lives in the packages folder.
	Managed bool
}

// StatusReport is the result of the status command.
type StatusReport struct {
	Root             Path
	Entries          []StatusEntry
	Unregistered     []Script
	ShowScenes       bool
	ShowUnregistered bool
}

// DependencyInfo is a dependency resolved against the registry.
type DependencyInfo struct {
	Dependency RegistryPackageDependency
	Found      bool
	Author     string
}

// PackageReport is the result of the show command.
type PackageReport struct {
	Root         Path
	Package      RegistryPackage
	Latest       RegistryPackageVersion
	Author       RegistryAuthor
	HasAuthor    bool
	Dependencies []DependencyInfo
	Local        LocalPackageInfo
	Scripts      []Script
	Scenes       []Path
}

// SearchReport is the result of the search command.
type SearchReport struct {
	Root      Path
	Results   []SearchResult
	ShowUsage bool
}

// BundledFile is a registry file shipped with the application.
type BundledFile struct {
	LocalPath string
	Exists    bool
}

// InstallReport is the result of the get command.
type InstallReport struct {
	Package RegistryPackage
	Version RegistryPackageVersion
	Info    LocalPackageInfo
	Noop    bool
	// MissingBundled lists bundled files when at least one is missing; the
	// package was not installed in that case.
	MissingBundled []BundledFile
}

// SceneUpgrade is one scene rewritten by an upgrade.
type SceneUpgrade struct {
	Scene    Path
	Replaced int
}

// UpgradeItem is the upgrade of one local unit.
type UpgradeItem struct {
	Package string
	From    Version
	To      Version
	Local   Path
	Scenes  []SceneUpgrade
	Skipped string
}

// UpgradeReport is the result of the upgrade command.
type UpgradeReport struct {
	Root  Path
	Items []UpgradeItem
	Noop  bool
}

// PublishReport is the result of the publish command.
type PublishReport struct {
	Package   string
	Version   Version
	Created   bool
	JSON      string
	WrittenTo Path
}
