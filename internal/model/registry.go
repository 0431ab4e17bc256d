package model

import (
	"strings"
	"time"
)

// DefaultPackageType is used for packages that do not declare a type.
const DefaultPackageType = "scripts"

// Registry is a merged package catalog.
type Registry struct {
	Packages []RegistryPackage `json:"packages"`
	Authors  []RegistryAuthor  `json:"authors,omitempty"`
}

// RegistryAuthor describes a package author.
type RegistryAuthor struct {
	Name   string `json:"name"`
	Github string `json:"github,omitempty"`
	Reddit string `json:"reddit,omitempty"`
}

// RegistryPackage is one named package and all its published versions.
type RegistryPackage struct {
	Type        string                   `json:"type,omitempty"`
	Name        string                   `json:"name"`
	Author      string                   `json:"author,omitempty"`
	Description string                   `json:"description,omitempty"`
	Tags        []string                 `json:"tags,omitempty"`
	Homepage    string                   `json:"homepage,omitempty"`
	Repository  string                   `json:"repository,omitempty"`
	Versions    []RegistryPackageVersion `json:"versions"`
}

// RegistryPackageVersion is one published version of a package.
type RegistryPackageVersion struct {
	Version      Version                     `json:"version"`
	Created      time.Time                   `json:"created"`
	Notes        string                      `json:"notes,omitempty"`
	Dependencies []RegistryPackageDependency `json:"dependencies,omitempty"`
	Files        []RegistryFile              `json:"files"`
}

// RegistryPackageDependency names another package version.
type RegistryPackageDependency struct {
	Name    string  `json:"name"`
	Version Version `json:"version"`
}

// RegistryFile is one file of a package version. Exactly one of Filename
// (downloaded into the install folder) and LocalPath (bundled with the
// application, relative to the VaM root) is set.
type RegistryFile struct {
	Filename  string           `json:"filename,omitempty"`
	LocalPath string           `json:"localPath,omitempty"`
	URL       string           `json:"url,omitempty"`
	Ignore    bool             `json:"ignore,omitempty"`
	Hash      RegistryFileHash `json:"hash"`
}

// RegistryFileHash is a typed content hash.
type RegistryFileHash struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// IsLocal reports whether the file is bundled rather than downloaded.
func (f RegistryFile) IsLocal() bool {
	return f.Filename == "" && f.LocalPath != ""
}

// Name returns the file name or the local path.
func (f RegistryFile) Name() string {
	if f.Filename != "" {
		return f.Filename
	}

	return f.LocalPath
}

// PackageType returns the type tag, defaulting to scripts.
func (p RegistryPackage) PackageType() string {
	if p.Type == "" {
		return DefaultPackageType
	}

	return strings.ToLower(p.Type)
}

// AuthorOrAnonymous returns the author name used for install folders.
func (p RegistryPackage) AuthorOrAnonymous() string {
	if p.Author == "" {
		return "Anonymous"
	}

	return p.Author
}

// GetLatestVersion returns the greatest version, or false when the package
// has no versions.
func (p RegistryPackage) GetLatestVersion() (RegistryPackageVersion, bool) {
	if len(p.Versions) == 0 {
		return RegistryPackageVersion{}, false
	}

	latest := p.Versions[0]
	for _, v := range p.Versions[1:] {
		if v.Version.Compare(latest.Version) > 0 {
			latest = v
		}
	}

	return latest, true
}

// GetVersion returns the version equal to v.
func (p RegistryPackage) GetVersion(v Version) (RegistryPackageVersion, bool) {
	for _, candidate := range p.Versions {
		if candidate.Version.Equal(v) {
			return candidate, true
		}
	}

	return RegistryPackageVersion{}, false
}

// HasVersion reports whether a version equal to v exists.
func (p RegistryPackage) HasVersion(v Version) bool {
	_, ok := p.GetVersion(v)
	return ok
}

// GetPackage finds a package by case-insensitive name.
func (r Registry) GetPackage(name string) (RegistryPackage, bool) {
	i := r.IndexOf(name)
	if i < 0 {
		return RegistryPackage{}, false
	}

	return r.Packages[i], true
}

// IndexOf returns the index of the package with the given case-insensitive
// name, or -1.
func (r Registry) IndexOf(name string) int {
	for i, p := range r.Packages {
		if strings.EqualFold(p.Name, name) {
			return i
		}
	}

	return -1
}

// GetAuthor finds an author by name.
func (r Registry) GetAuthor(name string) (RegistryAuthor, bool) {
	for _, a := range r.Authors {
		if a.Name == name {
			return a, true
		}
	}

	return RegistryAuthor{}, false
}

// RequiredHashes returns the hash values of every non-ignored file.
func (v RegistryPackageVersion) RequiredHashes() []string {
	hashes := make([]string, 0, len(v.Files))
	for _, f := range v.Files {
		if f.Ignore || f.Hash.Value == "" {
			continue
		}

		hashes = append(hashes, f.Hash.Value)
	}

	return hashes
}
