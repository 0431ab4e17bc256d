package domain

import (
	"path/filepath"
	"strings"

	m "github.com/mouse-blink/party/internal/model"
)

// Folders knows the layout of a VaM installation: the VaM root is the
// content root every scene-relative reference is resolved against, Saves is
// the scanned tree and packages are installed under the packages folder.
type Folders struct {
	Vam      m.Path
	Saves    m.Path
	Packages m.Path
}

// NewFolders builds absolute folders from the VaM directory and the packages
// folder relative to it.
func NewFolders(vamDirectory, packagesFolder string) (Folders, error) {
	vam, err := filepath.Abs(vamDirectory)
	if err != nil {
		return Folders{}, configurationErrorf("invalid VaM directory %q: %v", vamDirectory, err)
	}

	if packagesFolder == "" {
		packagesFolder = filepath.Join("Saves", "party")
	}

	packages := filepath.FromSlash(packagesFolder)
	if !filepath.IsAbs(packages) {
		packages = filepath.Join(vam, packages)
	}

	return Folders{
		Vam:      m.Path(vam),
		Saves:    m.Path(filepath.Join(vam, "Saves")),
		Packages: m.Path(filepath.Clean(packages)),
	}, nil
}

// TypeDirectory is the install root of a package type.
func (f Folders) TypeDirectory(pkgType string) m.Path {
	if pkgType == "" {
		pkgType = m.DefaultPackageType
	}

	return m.Path(filepath.Join(string(f.Packages), strings.ToLower(pkgType)))
}

// InstallDirectory is {typeRoot}/{author}/{name}/{version}.
func (f Folders) InstallDirectory(pkg m.RegistryPackage, version m.Version) m.Path {
	return m.Path(filepath.Join(
		string(f.TypeDirectory(pkg.PackageType())),
		pkg.AuthorOrAnonymous(),
		pkg.Name,
		version.String(),
	))
}

// RelativeToVam resolves a VaM-relative path (either slash style).
func (f Folders) RelativeToVam(path string) m.Path {
	native := filepath.FromSlash(strings.ReplaceAll(path, "\\", "/"))
	if filepath.IsAbs(native) {
		return m.Path(filepath.Clean(native))
	}

	return m.Path(filepath.Join(string(f.Vam), native))
}

// ToRelative returns path relative to the VaM root. Paths outside of it are
// rejected.
func (f Folders) ToRelative(path m.Path) (string, error) {
	rel, err := filepath.Rel(string(f.Vam), string(path))
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", userInputErrorf("only paths within the VaM directory are allowed: '%s'", path)
	}

	return rel, nil
}

// IsManaged reports whether path lives in the packages folder.
func (f Folders) IsManaged(path m.Path) bool {
	return isUnder(path, f.Packages)
}

func isUnder(path, dir m.Path) bool {
	rel, err := filepath.Rel(string(dir), string(path))
	if err != nil {
		return false
	}

	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// toSlash converts a path to the forward-slash form used inside scenes.
func toSlash(path string) string {
	return strings.ReplaceAll(filepath.ToSlash(path), "\\", "/")
}
