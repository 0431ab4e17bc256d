package domain

import (
	"context"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/mouse-blink/party/internal/adapter"
	m "github.com/mouse-blink/party/internal/model"
)

// PublishOptions describes a new package version.
type PublishOptions struct {
	Name    string
	Version string
	// Inputs are local files, directories (every script below them) or
	// http(s) URLs of single scripts.
	Inputs []string
	Notes  string
	// The fields below only apply when the package is created.
	Author      string
	Description string
	Tags        []string
	Homepage    string
	Repository  string
}

// Publication is the outcome of Publish.
type Publication struct {
	Registry m.Registry
	Package  m.RegistryPackage
	Version  m.RegistryPackageVersion
	Created  bool
}

// Publisher adds new package versions to a registry.
type Publisher interface {
	Publish(ctx context.Context, registry m.Registry, opts PublishOptions) (Publication, error)
}

type publisher struct {
	fs   adapter.SourceFSAdapter
	http adapter.HTTPClient
	now  func() time.Time
}

// NewPublisher constructs a Publisher.
func NewPublisher(fs adapter.SourceFSAdapter, httpClient adapter.HTTPClient) Publisher {
	return &publisher{fs: fs, http: httpClient, now: time.Now}
}

func (p *publisher) Publish(ctx context.Context, registry m.Registry, opts PublishOptions) (Publication, error) {
	name := strings.ToLower(strings.TrimSpace(opts.Name))
	if name == "" {
		return Publication{}, userInputErrorf("a package name is required")
	}

	version, err := m.ParseVersion(opts.Version)
	if err != nil || version.IsZero() {
		return Publication{}, userInputErrorf("invalid package version '%s'", opts.Version)
	}

	if len(opts.Inputs) == 0 {
		return Publication{}, userInputErrorf("at least one file or url is required")
	}

	var files []m.RegistryFile

	for _, input := range opts.Inputs {
		found, err := p.filesFrom(ctx, input)
		if err != nil {
			return Publication{}, err
		}

		files = append(files, found...)
	}

	out := Publication{Registry: cloneRegistry(registry)}

	i := out.Registry.IndexOf(name)
	if i < 0 {
		out.Registry.Packages = append(out.Registry.Packages, m.RegistryPackage{
			Name:        name,
			Author:      opts.Author,
			Description: opts.Description,
			Tags:        opts.Tags,
			Homepage:    opts.Homepage,
			Repository:  opts.Repository,
		})
		i = len(out.Registry.Packages) - 1
		out.Created = true
	}

	pkg := &out.Registry.Packages[i]
	if pkg.HasVersion(version) {
		return Publication{}, userInputErrorf("version %s of package %s already exists", version, pkg.Name)
	}

	out.Version = m.RegistryPackageVersion{
		Version: version,
		Created: p.now().UTC().Truncate(time.Second),
		Notes:   opts.Notes,
		Files:   files,
	}
	pkg.Versions = append(pkg.Versions, out.Version)
	out.Package = *pkg

	return out, nil
}

func (p *publisher) filesFrom(ctx context.Context, input string) ([]m.RegistryFile, error) {
	if adapter.ClassifySource(input) == adapter.SourceHTTP {
		file, err := p.fileFromURL(ctx, input)
		if err != nil {
			return nil, err
		}

		return []m.RegistryFile{file}, nil
	}

	abs, err := filepath.Abs(input)
	if err != nil {
		return nil, userInputErrorf("invalid path '%s': %v", input, err)
	}

	info, err := p.fs.FileInfo(m.Path(abs))
	if err != nil {
		return nil, userInputErrorf("file not found: '%s'", input)
	}

	if !info.IsDir() {
		file, err := p.fileFromDisk(m.Path(abs), filepath.Base(abs))
		if err != nil {
			return nil, err
		}

		return []m.RegistryFile{file}, nil
	}

	var files []m.RegistryFile

	err = p.fs.Walk(m.Path(abs), func(path m.Path, _ os.FileInfo, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}

		if m.ClassifyFile(string(path)) != m.FileScript {
			return nil
		}

		rel, err := p.fs.RelPath(m.Path(abs), path)
		if err != nil {
			return err
		}

		file, err := p.fileFromDisk(path, filepath.ToSlash(string(rel)))
		if err != nil {
			return err
		}

		files = append(files, file)

		return nil
	})
	if err != nil {
		return nil, userInputErrorf("cannot read '%s': %v", input, err)
	}

	if len(files) == 0 {
		return nil, userInputErrorf("no scripts found in '%s'", input)
	}

	slices.SortFunc(files, func(a, b m.RegistryFile) int { return strings.Compare(a.Filename, b.Filename) })

	return files, nil
}

func (p *publisher) fileFromDisk(path m.Path, filename string) (m.RegistryFile, error) {
	hash, err := HashFile(p.fs, path)
	if err != nil {
		return m.RegistryFile{}, userInputErrorf("cannot read '%s': %v", path, err)
	}

	return m.RegistryFile{
		Filename: filename,
		Hash:     m.RegistryFileHash{Type: HashType, Value: hash},
	}, nil
}

func (p *publisher) fileFromURL(ctx context.Context, raw string) (m.RegistryFile, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return m.RegistryFile{}, userInputErrorf("invalid url '%s'", raw)
	}

	filename, err := url.PathUnescape(path.Base(u.Path))
	if err != nil || filename == "" || filename == "/" || filename == "." {
		return m.RegistryFile{}, userInputErrorf("url '%s' does not contain a filename", raw)
	}

	if !strings.HasSuffix(filename, m.ScriptExt) {
		return m.RegistryFile{}, userInputErrorf("url '%s' does not end with '%s'", raw, m.ScriptExt)
	}

	content, err := p.http.Get(ctx, raw)
	if err != nil {
		return m.RegistryFile{}, registryErrorf(err, "could not download '%s'", raw)
	}

	return m.RegistryFile{
		Filename: filename,
		URL:      raw,
		Hash:     m.RegistryFileHash{Type: HashType, Value: HashContent(content)},
	}, nil
}

func cloneRegistry(registry m.Registry) m.Registry {
	out := m.Registry{
		Packages: make([]m.RegistryPackage, len(registry.Packages)),
		Authors:  slices.Clone(registry.Authors),
	}

	for i, pkg := range registry.Packages {
		out.Packages[i] = clonePackage(pkg)
	}

	return out
}
