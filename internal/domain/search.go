package domain

import (
	"slices"
	"strings"

	exprlang "github.com/expr-lang/expr"
	exprvm "github.com/expr-lang/expr/vm"

	m "github.com/mouse-blink/party/internal/model"
)

// SearchOptions controls a registry search.
type SearchOptions struct {
	// Query is matched case-insensitively against name, author,
	// description and tags. Empty matches everything.
	Query string
	// Where is an optional boolean expression evaluated per package.
	Where string
	// TrustedDomains are URL prefixes considered safe to download from.
	TrustedDomains []string
	// Saves, when set, adds local usage to every result.
	Saves *m.SavesMap
}

// Search returns the registry packages matching opts, in registry order.
func Search(registry m.Registry, opts SearchOptions) ([]m.SearchResult, error) {
	where, err := compileWhere(opts.Where)
	if err != nil {
		return nil, err
	}

	var results []m.SearchResult

	for _, pkg := range registry.Packages {
		if opts.Query != "" && !matchesQuery(pkg, opts.Query) {
			continue
		}

		if where != nil {
			ok, err := evalWhere(where, opts.Where, pkg)
			if err != nil {
				return nil, err
			}

			if !ok {
				continue
			}
		}

		result := m.SearchResult{
			Package: pkg,
			Trusted: isTrusted(pkg, opts.TrustedDomains),
		}

		if opts.Saves != nil {
			result.Scripts, result.Scenes = packageUsage(pkg, *opts.Saves)
		}

		results = append(results, result)
	}

	return results, nil
}

func matchesQuery(pkg m.RegistryPackage, query string) bool {
	q := strings.ToLower(query)

	if strings.Contains(strings.ToLower(pkg.Name), q) {
		return true
	}

	if strings.Contains(strings.ToLower(pkg.Author), q) {
		return true
	}

	if strings.Contains(strings.ToLower(pkg.Description), q) {
		return true
	}

	return slices.ContainsFunc(pkg.Tags, func(tag string) bool {
		return strings.Contains(strings.ToLower(tag), q)
	})
}

// isTrusted reports whether every downloadable file of every version is
// hosted under a trusted prefix.
func isTrusted(pkg m.RegistryPackage, trusted []string) bool {
	for _, v := range pkg.Versions {
		for _, f := range v.Files {
			if f.URL == "" || f.Ignore {
				continue
			}

			if !slices.ContainsFunc(trusted, func(prefix string) bool {
				return strings.HasPrefix(f.URL, prefix)
			}) {
				return false
			}
		}
	}

	return true
}

// packageUsage returns the local units matching any version of pkg and the
// scenes referencing them.
func packageUsage(pkg m.RegistryPackage, saves m.SavesMap) ([]m.Script, []m.Path) {
	var scripts []m.Script

	scenes := make(map[m.Path]struct{})

	for _, local := range saves.Scripts {
		if !slices.ContainsFunc(pkg.Versions, func(v m.RegistryPackageVersion) bool {
			return IsMatch(local, v)
		}) {
			continue
		}

		scripts = append(scripts, local)
		for _, scene := range local.Scenes {
			scenes[scene] = struct{}{}
		}
	}

	return scripts, sortedPaths(scenes)
}

func compileWhere(expression string) (*exprvm.Program, error) {
	if strings.TrimSpace(expression) == "" {
		return nil, nil
	}

	program, err := exprlang.Compile(expression,
		exprlang.Env(whereEnv(m.RegistryPackage{})),
		exprlang.AsBool(),
	)
	if err != nil {
		return nil, userInputErrorf("invalid --where expression '%s': %v", expression, err)
	}

	return program, nil
}

func evalWhere(program *exprvm.Program, expression string, pkg m.RegistryPackage) (bool, error) {
	out, err := exprlang.Run(program, whereEnv(pkg))
	if err != nil {
		return false, userInputErrorf("evaluating '%s' for package '%s': %v", expression, pkg.Name, err)
	}

	ok, isBool := out.(bool)
	if !isBool {
		return false, userInputErrorf("expression '%s' did not return a boolean", expression)
	}

	return ok, nil
}

// whereEnv exposes a package to --where expressions.
func whereEnv(pkg m.RegistryPackage) map[string]any {
	latest, _ := pkg.GetLatestVersion()

	versions := make([]string, 0, len(pkg.Versions))
	for _, v := range pkg.Versions {
		versions = append(versions, v.Version.String())
	}

	tags := pkg.Tags
	if tags == nil {
		tags = []string{}
	}

	return map[string]any{
		"name":        pkg.Name,
		"author":      pkg.Author,
		"description": pkg.Description,
		"type":        pkg.PackageType(),
		"tags":        tags,
		"homepage":    pkg.Homepage,
		"repository":  pkg.Repository,
		"versions":    versions,
		"latest":      latest.Version.String(),
		"major":       latest.Version.Major(),
		"files":       len(latest.Files),
		"created":     latest.Created,
	}
}
