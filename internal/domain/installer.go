package domain

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/party/internal/adapter"
	m "github.com/mouse-blink/party/internal/model"
)

const downloadConcurrency = 4

// Installer downloads package files into their install folder and verifies
// them against the registry hashes.
type Installer interface {
	// Install downloads every NotInstalled file of info and returns info with
	// updated statuses. Files are written only after their hash checks out.
	Install(ctx context.Context, info m.LocalPackageInfo) (m.LocalPackageInfo, error)
}

type installer struct {
	fsAdapter adapter.SourceFSAdapter
	http      adapter.HTTPClient
	logger    *slog.Logger
	metrics   *Metrics
}

// NewInstaller constructs an Installer backed by the provided filesystem and
// HTTP adapters.
func NewInstaller(fsAdapter adapter.SourceFSAdapter, httpClient adapter.HTTPClient, logger *slog.Logger, metrics *Metrics) Installer {
	if logger == nil {
		logger = slog.Default()
	}

	if metrics == nil {
		metrics = NewMetrics(nil)
	}

	return &installer{
		fsAdapter: fsAdapter,
		http:      httpClient,
		logger:    logger,
		metrics:   metrics,
	}
}

func (in *installer) Install(ctx context.Context, info m.LocalPackageInfo) (result m.LocalPackageInfo, err error) {
	ctx, span := tracer().Start(ctx, "Installer.Install", trace.WithAttributes(
		attribute.String("party.package", info.PackageName),
		attribute.String("party.version", info.Version.String()),
	))
	defer func() { endSpan(span, err) }()

	if err := in.validatePackage(info); err != nil {
		return m.LocalPackageInfo{}, err
	}

	result = info
	result.Files = slices.Clone(info.Files)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(downloadConcurrency)

	for i, file := range result.Files {
		if file.Status != m.StatusNotInstalled {
			continue
		}

		g.Go(func() error {
			if err := in.installFile(gctx, file); err != nil {
				return err
			}

			result.Files[i].Status = m.StatusInstalled

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return m.LocalPackageInfo{}, err
	}

	result.Installed = !slices.ContainsFunc(result.Files, func(f m.InstalledFileInfo) bool {
		return f.Status != m.StatusInstalled
	})

	return result, nil
}

func (in *installer) validatePackage(info m.LocalPackageInfo) error {
	if info.InstallFolder == "" {
		return installationErrorf("package %s has no install folder", info.PackageName)
	}

	for _, file := range info.Files {
		if file.Status == m.StatusNotInstalled && file.RegistryFile.URL == "" {
			return installationErrorf("file '%s' of package %s has no download url", file.RegistryFile.Name(), info.PackageName)
		}
	}

	return nil
}

func (in *installer) installFile(ctx context.Context, file m.InstalledFileInfo) error {
	content, err := in.download(ctx, file.RegistryFile.URL)
	if err != nil {
		return err
	}

	if err := in.verify(file, content); err != nil {
		return err
	}

	if err := in.writeFile(file.Path, content); err != nil {
		return err
	}

	in.metrics.FilesInstalled.Inc()
	in.logger.Debug("file installed", "path", file.Path, "url", file.RegistryFile.URL)

	return nil
}

func (in *installer) download(ctx context.Context, url string) ([]byte, error) {
	content, err := in.http.Get(ctx, url)
	if err != nil {
		return nil, &Error{Kind: KindInstallation, Msg: fmt.Sprintf("failed to download %s", url), Err: err}
	}

	return content, nil
}

func (in *installer) verify(file m.InstalledFileInfo, content []byte) error {
	if file.RegistryFile.Hash.Type != HashType {
		return configurationErrorf("unsupported hash type: %s", file.RegistryFile.Hash.Type)
	}

	if hash := HashContent(content); hash != file.RegistryFile.Hash.Value {
		return installationErrorf("hash of the downloaded file '%s' does not match the registry (expected %s, got %s)",
			file.RegistryFile.Name(), file.RegistryFile.Hash.Value, hash)
	}

	return nil
}

func (in *installer) writeFile(path m.Path, content []byte) error {
	if err := in.fsAdapter.WriteFile(path, content, 0o600); err != nil {
		return &Error{Kind: KindInstallation, Msg: fmt.Sprintf("failed to write %s", path), Err: err}
	}

	return nil
}

// ValidateStatuses refuses to install over a partial, modified or already
// complete install.
func ValidateStatuses(info m.LocalPackageInfo) error {
	statuses := info.DistinctStatuses()

	switch {
	case len(statuses) > 1:
		return installationErrorf("the installed plugin has been either partially installed or was modified; try deleting the installed package folder and try again")
	case len(statuses) == 0:
		return installationErrorf("no files were found in this package")
	}

	switch statuses[0] {
	case m.StatusInstalled:
		return userInputErrorf("plugin already installed")
	case m.StatusHashMismatch:
		return installationErrorf("installed plugin does not match the registry version; did you modify it?")
	default:
		return nil
	}
}

// BundledFiles lists the files of version that ship outside the registry and
// whether they exist locally.
func BundledFiles(fs adapter.SourceFSAdapter, folders Folders, version m.RegistryPackageVersion) []m.BundledFile {
	var bundled []m.BundledFile

	for _, f := range version.Files {
		if f.URL != "" || f.LocalPath == "" {
			continue
		}

		bundled = append(bundled, m.BundledFile{
			LocalPath: f.LocalPath,
			Exists:    fs.Exists(folders.RelativeToVam(f.LocalPath)),
		})
	}

	return bundled
}

// HasMissingBundled reports whether any bundled file is absent.
func HasMissingBundled(files []m.BundledFile) bool {
	return slices.ContainsFunc(files, func(f m.BundledFile) bool { return !f.Exists })
}
