package domain

import (
	"cmp"
	"slices"
	"strings"

	m "github.com/mouse-blink/party/internal/model"
)

// MatchSavesToRegistry pairs every local script or bundle with the package
// versions whose complete non-ignored hash set it presents. When a local
// unit satisfies several versions of one package the highest one wins.
// Results are ordered by package name, then local path.
func MatchSavesToRegistry(saves m.SavesMap, registry m.Registry) []m.Match {
	var matches []m.Match

	for _, local := range saves.Scripts {
		available := hashSet(local.Hashes())
		if len(available) == 0 {
			continue
		}

		for _, pkg := range registry.Packages {
			best, ok := bestVersion(pkg, available)
			if !ok {
				continue
			}

			matches = append(matches, m.Match{Package: pkg, Version: best, Local: local})
		}
	}

	slices.SortFunc(matches, func(a, b m.Match) int {
		return cmp.Or(
			cmp.Compare(strings.ToLower(a.Package.Name), strings.ToLower(b.Package.Name)),
			cmp.Compare(a.Local.Path, b.Local.Path),
		)
	})

	return matches
}

// IsMatch reports whether the hashes presented by local include every
// required hash of version. A version without required hashes never matches.
func IsMatch(local m.Script, version m.RegistryPackageVersion) bool {
	return satisfies(hashSet(local.Hashes()), version)
}

func bestVersion(pkg m.RegistryPackage, available map[string]struct{}) (m.RegistryPackageVersion, bool) {
	var (
		best  m.RegistryPackageVersion
		found bool
	)

	for _, v := range pkg.Versions {
		if !satisfies(available, v) {
			continue
		}

		if !found || v.Version.Compare(best.Version) > 0 {
			best = v
			found = true
		}
	}

	return best, found
}

func satisfies(available map[string]struct{}, version m.RegistryPackageVersion) bool {
	required := version.RequiredHashes()
	if len(required) == 0 {
		return false
	}

	for _, h := range required {
		if _, ok := available[h]; !ok {
			return false
		}
	}

	return true
}

func hashSet(hashes []string) map[string]struct{} {
	set := make(map[string]struct{}, len(hashes))
	for _, h := range hashes {
		set[h] = struct{}{}
	}

	return set
}

// packageHashes returns every hash declared by any version of pkg.
func packageHashes(pkg m.RegistryPackage) map[string]struct{} {
	set := make(map[string]struct{})

	for _, v := range pkg.Versions {
		for _, f := range v.Files {
			if f.Hash.Value != "" {
				set[f.Hash.Value] = struct{}{}
			}
		}
	}

	return set
}

// FilterScriptsByPackage keeps the scripts whose hashes all belong to pkg.
func FilterScriptsByPackage(scripts []m.Script, pkg m.RegistryPackage) []m.Script {
	known := packageHashes(pkg)

	var kept []m.Script

	for _, s := range scripts {
		hashes := s.Hashes()
		if len(hashes) == 0 {
			continue
		}

		all := true

		for _, h := range hashes {
			if _, ok := known[h]; !ok {
				all = false
				break
			}
		}

		if all {
			kept = append(kept, s)
		}
	}

	return kept
}
