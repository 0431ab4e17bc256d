package domain

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"regexp"
	"slices"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/party/internal/adapter"
	m "github.com/mouse-blink/party/internal/model"
)

var packageNamePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._ -]*$`)

// StatusArgs contains the arguments of the status command.
type StatusArgs struct {
	Filter       string
	Scenes       bool
	Warnings     bool
	Unregistered bool
	Watch        bool
}

// ShowArgs contains the arguments of the show command.
type ShowArgs struct {
	Package  string
	Warnings bool
}

// GetArgs contains the arguments of the get command.
type GetArgs struct {
	Package string
	Version string
	Noop    bool
	Force   bool
}

// SearchArgs contains the arguments of the search command.
type SearchArgs struct {
	Query string
	Where string
	Usage bool
}

// UpgradeArgs contains the arguments of the upgrade command.
type UpgradeArgs struct {
	Filter   string
	Noop     bool
	Warnings bool
}

// PublishArgs contains the arguments of the publish command.
type PublishArgs struct {
	PublishOptions
	// Registry is the path of a locally cloned index.json. When empty the
	// configured registries are used and the package is printed instead.
	Registry string
}

// Workflow runs the party commands.
type Workflow interface {
	Status(ctx context.Context, args StatusArgs) error
	Show(ctx context.Context, args ShowArgs) error
	Get(ctx context.Context, args GetArgs) error
	Search(ctx context.Context, args SearchArgs) error
	Upgrade(ctx context.Context, args UpgradeArgs) error
	Publish(ctx context.Context, args PublishArgs) error
}

// Display shows scan progress and command reports.
type Display interface {
	ProgressReporter
	// StartProgress shows scan progress until the next report or Close.
	StartProgress() error
	Close()
	DisplayMessage(msg string)
	DisplayScanSummary(summary m.ScanSummary)
	DisplaySavesErrors(root m.Path, errs []m.SavesError, details bool)
	DisplayStatus(report m.StatusReport)
	DisplayPackage(report m.PackageReport)
	DisplaySearch(report m.SearchReport)
	DisplayInstall(report m.InstallReport)
	DisplayUpgrade(report m.UpgradeReport)
	DisplayPublish(report m.PublishReport)
}

// WorkflowDeps are the collaborators of a Workflow.
type WorkflowDeps struct {
	FS        adapter.SourceFSAdapter
	Store     adapter.RegistryStore
	Watchers  adapter.WatcherFactory
	UI        Display
	Resolver  SavesResolver
	Registry  RegistryLoader
	Evaluator PackageStatus
	Installer Installer
	Upgrader  SceneUpgrader
	Publisher Publisher
	Folders   Folders
	Metrics   *Metrics
	Logger    *slog.Logger
	// Sources are the configured registry sources, in priority order.
	Sources        []string
	TrustedDomains []string
	MetricsFile    string
}

type workflow struct {
	WorkflowDeps
}

// NewWorkflow creates a new Workflow instance with the provided collaborators.
func NewWorkflow(deps WorkflowDeps) Workflow {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}

	if deps.Metrics == nil {
		deps.Metrics = NewMetrics(nil)
	}

	return &workflow{WorkflowDeps: deps}
}

// Status shows the registered and unregistered scripts of the saves folder.
// With Watch it scans again after every batch of file changes until ctx is
// done.
func (w *workflow) Status(ctx context.Context, args StatusArgs) error {
	defer w.flushMetrics()

	if err := w.status(ctx, args); err != nil {
		return err
	}

	if !args.Watch {
		return nil
	}

	watcher, err := w.Watchers(w.Folders.Saves)
	if err != nil {
		return configurationErrorf("cannot watch '%s': %v", w.Folders.Saves, err)
	}

	if err := watcher.Start(); err != nil {
		return configurationErrorf("cannot watch '%s': %v", w.Folders.Saves, err)
	}
	defer watcher.Stop()

	w.UI.DisplayMessage("Watching for changes, press Ctrl+C to stop.")

	for {
		select {
		case <-ctx.Done():
			return nil
		case changed, ok := <-watcher.Changes():
			if !ok {
				return nil
			}

			w.Logger.Debug("saves changed", "files", len(changed))

			if err := w.status(ctx, args); err != nil {
				if ctx.Err() != nil {
					return nil
				}

				return err
			}
		}
	}
}

func (w *workflow) status(ctx context.Context, args StatusArgs) error {
	saves, registry, err := w.scan(ctx, args.Filter)
	if err != nil {
		return err
	}

	w.UI.DisplaySavesErrors(w.Folders.Vam, saves.Errors, args.Warnings)

	matches := MatchSavesToRegistry(saves, registry)

	report := m.StatusReport{
		Root:             w.Folders.Vam,
		ShowScenes:       args.Scenes,
		ShowUnregistered: args.Unregistered,
	}

	for _, match := range matches {
		report.Entries = append(report.Entries, w.statusEntry(match))
	}

	if args.Unregistered {
		report.Unregistered = unregistered(saves.Scripts, matches)
	}

	w.UI.DisplayStatus(report)

	return nil
}

func (w *workflow) statusEntry(match m.Match) m.StatusEntry {
	entry := m.StatusEntry{
		Match:   match,
		Managed: w.Folders.IsManaged(match.Local.Path),
	}

	latest, ok := match.Package.GetLatestVersion()
	if !ok {
		return entry
	}

	entry.Latest = latest
	entry.UpdateAvailable = latest.Version.Compare(match.Version.Version) > 0

	if entry.UpdateAvailable {
		entry.MajorChange = latest.Version.Major() != match.Version.Version.Major()
		entry.MissingBundled = HasMissingBundled(BundledFiles(w.FS, w.Folders, latest))
	}

	return entry
}

func unregistered(scripts []m.Script, matches []m.Match) []m.Script {
	matched := make(map[m.Path]struct{}, len(matches))
	for _, match := range matches {
		matched[match.Local.Path] = struct{}{}
	}

	var out []m.Script

	for _, s := range scripts {
		if _, ok := matched[s.Path]; !ok {
			out = append(out, s)
		}
	}

	return out
}

// Show prints a package with its versions, author, dependencies, install
// state and local usage.
func (w *workflow) Show(ctx context.Context, args ShowArgs) error {
	defer w.flushMetrics()

	if !packageNamePattern.MatchString(args.Package) {
		return userInputErrorf("invalid package name")
	}

	saves, registry, err := w.scan(ctx, "")
	if err != nil {
		return err
	}

	pkg, ok := registry.GetPackage(args.Package)
	if !ok {
		return userInputErrorf("could not find package %s", args.Package)
	}

	latest, ok := pkg.GetLatestVersion()
	if !ok {
		return registryErrorf(nil, "package does not have any versions")
	}

	w.UI.DisplaySavesErrors(w.Folders.Vam, saves.Errors, args.Warnings)

	local, err := w.Evaluator.Evaluate(pkg, latest)
	if err != nil {
		return err
	}

	report := m.PackageReport{
		Root:    w.Folders.Vam,
		Package: pkg,
		Latest:  latest,
		Local:   local,
	}
	report.Author, report.HasAuthor = registry.GetAuthor(pkg.Author)
	report.Scripts, report.Scenes = packageUsage(pkg, saves)

	for _, dep := range latest.Dependencies {
		info := m.DependencyInfo{Dependency: dep}
		if found, ok := registry.GetPackage(dep.Name); ok {
			info.Found = true
			info.Author = found.AuthorOrAnonymous()
		}

		report.Dependencies = append(report.Dependencies, info)
	}

	w.UI.DisplayPackage(report)

	return nil
}

// Get installs a package version, or prints what would be installed.
func (w *workflow) Get(ctx context.Context, args GetArgs) error {
	defer w.flushMetrics()

	if args.Package == "" {
		return userInputErrorf("you must specify a package")
	}

	registry, err := w.acquire(ctx)
	if err != nil {
		return err
	}

	pkg, version, err := selectVersion(registry, args.Package, args.Version)
	if err != nil {
		return err
	}

	report := m.InstallReport{Package: pkg, Version: version, Noop: args.Noop}

	bundled := BundledFiles(w.FS, w.Folders, version)
	if !args.Force && HasMissingBundled(bundled) {
		report.MissingBundled = bundled
		w.UI.DisplayInstall(report)

		return nil
	}

	info, err := w.Evaluator.Evaluate(pkg, version)
	if err != nil {
		return err
	}

	if args.Force {
		info = reinstallMismatched(info)
	} else if err := ValidateStatuses(info); err != nil {
		return err
	}

	report.Info = info

	if !args.Noop {
		report.Info, err = w.Installer.Install(ctx, info)
		if err != nil {
			return err
		}
	}

	w.UI.DisplayInstall(report)

	return nil
}

// reinstallMismatched marks modified files for download so a forced install
// overwrites them.
func reinstallMismatched(info m.LocalPackageInfo) m.LocalPackageInfo {
	info.Files = slices.Clone(info.Files)
	for i, f := range info.Files {
		if f.Status == m.StatusHashMismatch {
			info.Files[i].Status = m.StatusNotInstalled
		}
	}

	return info
}

func selectVersion(registry m.Registry, name, version string) (m.RegistryPackage, m.RegistryPackageVersion, error) {
	pkg, ok := registry.GetPackage(name)
	if !ok {
		return m.RegistryPackage{}, m.RegistryPackageVersion{}, registryErrorf(nil, "package not found: '%s'", name)
	}

	if version == "" {
		latest, ok := pkg.GetLatestVersion()
		if !ok {
			return m.RegistryPackage{}, m.RegistryPackageVersion{}, registryErrorf(nil, "package does not have any versions")
		}

		return pkg, latest, nil
	}

	v, err := m.ParseVersion(version)
	if err != nil {
		return m.RegistryPackage{}, m.RegistryPackageVersion{}, userInputErrorf("invalid version '%s'", version)
	}

	found, ok := pkg.GetVersion(v)
	if !ok {
		return m.RegistryPackage{}, m.RegistryPackageVersion{}, registryErrorf(nil, "package version not found: '%s' version '%s'", name, version)
	}

	return pkg, found, nil
}

// Search lists matching registry packages, optionally with local usage.
func (w *workflow) Search(ctx context.Context, args SearchArgs) error {
	defer w.flushMetrics()

	opts := SearchOptions{
		Query:          args.Query,
		Where:          args.Where,
		TrustedDomains: w.TrustedDomains,
	}

	var (
		registry m.Registry
		err      error
	)

	if args.Usage {
		var saves m.SavesMap

		saves, registry, err = w.scan(ctx, "")
		if err != nil {
			return err
		}

		opts.Saves = &saves
	} else {
		registry, err = w.acquire(ctx)
		if err != nil {
			return err
		}
	}

	results, err := Search(registry, opts)
	if err != nil {
		return err
	}

	w.UI.DisplaySearch(m.SearchReport{Root: w.Folders.Vam, Results: results, ShowUsage: args.Usage})

	return nil
}

// Upgrade installs the latest version of every matched local script with
// an update available, and points the scenes using it to the new file.
func (w *workflow) Upgrade(ctx context.Context, args UpgradeArgs) error {
	defer w.flushMetrics()

	saves, registry, err := w.scan(ctx, args.Filter)
	if err != nil {
		return err
	}

	w.UI.DisplaySavesErrors(w.Folders.Vam, saves.Errors, args.Warnings)

	report := m.UpgradeReport{Root: w.Folders.Vam, Noop: args.Noop}

	for _, match := range MatchSavesToRegistry(saves, registry) {
		latest, ok := match.Package.GetLatestVersion()
		if !ok || latest.Version.Compare(match.Version.Version) <= 0 {
			continue
		}

		item := m.UpgradeItem{
			Package: match.Package.Name,
			From:    match.Version.Version,
			To:      latest.Version,
			Local:   match.Local.Path,
		}

		if !args.Noop {
			if err := w.upgradeOne(ctx, match, latest, &item); err != nil {
				return err
			}
		}

		report.Items = append(report.Items, item)
	}

	w.UI.DisplayUpgrade(report)

	return nil
}

func (w *workflow) upgradeOne(ctx context.Context, match m.Match, latest m.RegistryPackageVersion, item *m.UpgradeItem) error {
	if HasMissingBundled(BundledFiles(w.FS, w.Folders, latest)) {
		item.Skipped = "some files cannot be downloaded by party"
		return nil
	}

	info, err := w.Evaluator.Evaluate(match.Package, latest)
	if err != nil {
		return err
	}

	if !info.Installed {
		if !info.Installable {
			item.Skipped = "the installed package was modified"
			return nil
		}

		info, err = w.Installer.Install(ctx, info)
		if err != nil {
			return err
		}
	}

	for _, scene := range match.Local.Scenes {
		replaced, err := w.Upgrader.Upgrade(scene, match.Local, info)
		if errors.Is(err, ErrNotSupported) {
			item.Skipped = err.Error()
			return nil
		}

		if err != nil {
			return err
		}

		if replaced > 0 {
			item.Scenes = append(item.Scenes, m.SceneUpgrade{Scene: scene, Replaced: replaced})
		}
	}

	return nil
}

// Publish adds a new version to a registry. With a local index.json the
// registry file is updated, otherwise the package JSON is printed.
func (w *workflow) Publish(ctx context.Context, args PublishArgs) error {
	defer w.flushMetrics()

	var (
		registry m.Registry
		err      error
	)

	if args.Registry != "" {
		if filepath.Base(args.Registry) != "index.json" {
			return userInputErrorf("please specify the path to your locally cloned index.json file")
		}

		registry, err = w.Store.Load(m.Path(args.Registry))
		if err != nil {
			return registryErrorf(err, "could not read registry '%s'", args.Registry)
		}
	} else {
		registry, err = w.acquire(ctx)
		if err != nil {
			return err
		}
	}

	pub, err := w.Publisher.Publish(ctx, registry, args.PublishOptions)
	if err != nil {
		return err
	}

	report := m.PublishReport{
		Package: pub.Package.Name,
		Version: pub.Version.Version,
		Created: pub.Created,
	}

	if args.Registry != "" {
		if err := w.Store.Save(m.Path(args.Registry), pub.Registry); err != nil {
			return registryErrorf(err, "could not write registry '%s'", args.Registry)
		}

		report.WrittenTo = m.Path(args.Registry)
	} else {
		data, err := w.Store.Encode(pub.Package)
		if err != nil {
			return err
		}

		report.JSON = string(data)
	}

	w.UI.DisplayPublish(report)

	return nil
}

// scan resolves the saves and acquires the registry in parallel while the
// UI shows progress. A filter without extension that is not a directory
// names a registry package and keeps only the scripts belonging to it.
func (w *workflow) scan(ctx context.Context, filter string) (m.SavesMap, m.Registry, error) {
	scanFilter, packageFilter := w.splitFilter(filter)

	if err := w.UI.StartProgress(); err != nil {
		return m.SavesMap{}, m.Registry{}, err
	}
	defer w.UI.Close()

	var (
		saves    m.SavesMap
		registry m.Registry
		summary  m.ScanSummary
	)

	start := time.Now()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		t := time.Now()

		var err error

		saves, err = w.Resolver.Resolve(gctx, scanFilter, w.UI)
		summary.ScanDuration = time.Since(t)

		return err
	})

	g.Go(func() error {
		t := time.Now()

		var err error

		registry, err = w.Registry.Acquire(gctx, w.Sources)
		summary.RegistryDuration = time.Since(t)

		return err
	})

	if err := g.Wait(); err != nil {
		return m.SavesMap{}, m.Registry{}, err
	}

	if packageFilter != "" {
		pkg, ok := registry.GetPackage(packageFilter)
		if !ok {
			return m.SavesMap{}, m.Registry{}, userInputErrorf("there were no files in the specified directory, and no package named '%s'", packageFilter)
		}

		saves.Scripts = FilterScriptsByPackage(saves.Scripts, pkg)
	}

	summary.Total = time.Since(start)
	summary.Scenes = len(saves.Scenes)
	summary.Scripts = len(saves.Scripts)
	summary.Errors, summary.Warnings = saves.CountErrors()

	w.Logger.Debug("scan complete",
		"scenes", summary.Scenes,
		"scripts", summary.Scripts,
		"scan", summary.ScanDuration,
		"registry", summary.RegistryDuration,
	)
	w.UI.DisplayScanSummary(summary)

	return saves, registry, nil
}

func (w *workflow) splitFilter(filter string) (scan string, pkg string) {
	if filter == "" || filepath.Ext(filter) != "" {
		return filter, ""
	}

	if info, err := w.FS.FileInfo(m.Path(filter)); err == nil && info.IsDir() {
		return filter, ""
	}

	return "", filter
}

func (w *workflow) acquire(ctx context.Context) (m.Registry, error) {
	return w.Registry.Acquire(ctx, w.Sources)
}

func (w *workflow) flushMetrics() {
	if w.MetricsFile == "" {
		return
	}

	if err := w.Metrics.WriteTextfile(w.MetricsFile); err != nil {
		w.Logger.Warn("could not write metrics", "path", w.MetricsFile, "error", err)
	}
}
