package controller

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"

	m "github.com/mouse-blink/party/internal/model"
)

const noLink = "(no link provided)"

// styles colors report output. The zero value renders plain text.
type styles struct {
	name    lipgloss.Style
	version lipgloss.Style
	path    lipgloss.Style
	scenes  lipgloss.Style
	update  lipgloss.Style
	warning lipgloss.Style
	err     lipgloss.Style
	ok      lipgloss.Style
	muted   lipgloss.Style
}

func plainStyles() styles {
	plain := lipgloss.NewStyle()

	return styles{
		name: plain, version: plain, path: plain, scenes: plain, update: plain,
		warning: plain, err: plain, ok: plain, muted: plain,
	}
}

func colorStyles() styles {
	return styles{
		name:    lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		version: lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
		path:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		scenes:  lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		update:  lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		warning: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		err:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		ok:      lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Faint(true),
	}
}

// renderer writes reports as text and tables. SimpleUI and TUI share it and
// only differ by styles.
type renderer struct {
	out    io.Writer
	errOut io.Writer
	styles styles
}

func (r *renderer) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(r.out, format, args...)
}

func (r *renderer) eprintf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(r.errOut, format, args...)
}

func (r *renderer) message(msg string) {
	r.printf("%s\n", msg)
}

func (r *renderer) scanSummary(s m.ScanSummary) {
	r.printf("Scanned %s and %s in %.2fs, and downloaded registry in %.2fs. Total wait time: %.2fs\n",
		pluralize(s.Scenes, "scene", "scenes"),
		pluralize(s.Scripts, "script", "scripts"),
		s.ScanDuration.Seconds(),
		s.RegistryDuration.Seconds(),
		s.Total.Seconds(),
	)
}

func (r *renderer) savesErrors(root m.Path, errs []m.SavesError, details bool) {
	if len(errs) == 0 {
		return
	}

	var errors, warnings []m.SavesError

	for _, e := range errs {
		if e.Level == m.LevelError {
			errors = append(errors, e)
		} else {
			warnings = append(warnings, e)
		}
	}

	if !details {
		r.eprintf("%s\n", r.styles.warning.Render(fmt.Sprintf(
			"There were %d warnings and %d errors in the saves folder. Run with --warnings to print them.",
			len(warnings), len(errors))))

		return
	}

	if len(errors) > 0 {
		r.eprintf("%s\n", r.styles.err.Render("Errors:"))

		for _, e := range errors {
			r.eprintf("  %s: %s\n", displayPath(root, e.File), r.styles.err.Render(e.Message))
		}

		r.eprintf("\n")
	}

	if len(warnings) > 0 {
		r.eprintf("%s\n", r.styles.warning.Render("Warnings:"))

		for _, e := range warnings {
			r.eprintf("  %s: %s\n", displayPath(root, e.File), r.styles.warning.Render(e.Message))
		}

		r.eprintf("\n")
	}
}

func (r *renderer) status(report m.StatusReport) {
	if len(report.Entries) == 0 && len(report.Unregistered) == 0 {
		r.printf("No registered scripts were found.\n")
	}

	for _, entry := range report.Entries {
		local := entry.Match.Local

		r.printf("%s %s", r.styles.name.Render(entry.Match.Package.Name), r.styles.version.Render("v"+entry.Match.Version.Version.String()))

		if !entry.Managed {
			r.printf(" %s", r.styles.path.Render(fmt.Sprintf("%q", displayPath(report.Root, local.Path))))
		}

		r.printf(" %s\n", r.styles.scenes.Render("referenced by "+pluralize(len(local.Scenes), "scene", "scenes")))

		if entry.UpdateAvailable {
			r.printf("  Update available: %s\n", r.styles.update.Render("v"+entry.Latest.Version.String()))

			if entry.MissingBundled {
				r.printf("  Note: This script has files that cannot be downloaded by party, check the homepage to download it instead: %s\n",
					packageLink(entry.Match.Package))
			}

			if entry.MajorChange {
				r.printf("  Note: The major version changed, which usually means there are breaking changes. Make sure to check the release notes.\n")
			}
		}

		if report.ShowScenes {
			r.scenes(report.Root, local.Scenes)
		}
	}

	if !report.ShowUnregistered {
		return
	}

	for _, script := range report.Unregistered {
		r.printf("%s %s\n",
			r.styles.err.Render(script.Name()),
			r.styles.scenes.Render("referenced by "+pluralize(len(script.Scenes), "scene", "scenes")))

		if report.ShowScenes {
			r.scenes(report.Root, script.Scenes)
		}
	}
}

func (r *renderer) scenes(root m.Path, scenes []m.Path) {
	for _, scene := range scenes {
		r.printf("- %s\n", displayPath(root, scene))
	}
}

func (r *renderer) pkg(report m.PackageReport) {
	pkg := report.Package
	latest := report.Latest

	r.printf("Package %s\n", r.styles.name.Render(pkg.Name))
	r.printf("Last version v%s, published %s\n", latest.Version, formatDate(latest))
	r.printf("Versions:\n")

	for _, v := range pkg.Versions {
		notes := v.Notes
		if notes == "" {
			notes = "(no release notes)"
		}

		r.printf("- v%s, published %s: %s\n", v.Version, formatDate(v), notes)
	}

	if pkg.Description != "" {
		r.printf("Description: %s\n", pkg.Description)
	}

	if len(pkg.Tags) > 0 {
		r.printf("Tags: %s\n", strings.Join(pkg.Tags, ", "))
	}

	if pkg.Repository != "" {
		r.printf("Repository: %s\n", pkg.Repository)
	}

	if pkg.Homepage != "" {
		r.printf("Homepage: %s\n", pkg.Homepage)
	}

	r.printf("Author: %s\n", pkg.AuthorOrAnonymous())

	if report.HasAuthor {
		if report.Author.Github != "" {
			r.printf("- Github: %s\n", report.Author.Github)
		}

		if report.Author.Reddit != "" {
			r.printf("- Reddit: %s\n", report.Author.Reddit)
		}
	}

	if len(report.Dependencies) > 0 {
		r.printf("Dependencies:\n")

		for _, dep := range report.Dependencies {
			if dep.Found {
				r.printf("- %s v%s by %s\n", dep.Dependency.Name, dep.Dependency.Version, dep.Author)
			} else {
				r.printf("- %s v%s %s\n", dep.Dependency.Name, dep.Dependency.Version, r.styles.err.Render("(not found in the registry)"))
			}
		}
	}

	r.printf("Files:\n")

	table := r.table("File", "Status", "Url")

	for _, f := range report.Local.Files {
		url := f.RegistryFile.URL
		if url == "" {
			url = "not available in registry"
		}

		table.Append([]string{f.RegistryFile.Name(), f.Status.String(), url})
	}

	table.Render()

	if len(report.Scripts) > 0 {
		r.printf("Used by %s in %s:\n",
			pluralize(len(report.Scripts), "local script", "local scripts"),
			pluralize(len(report.Scenes), "scene", "scenes"))
		r.scenes(report.Root, report.Scenes)
	}
}

func (r *renderer) search(report m.SearchReport) {
	if len(report.Results) == 0 {
		r.printf("No packages matched your search.\n")
		return
	}

	headers := []string{"Package", "Version", "Author", "Trusted", "Description"}
	if report.ShowUsage {
		headers = append(headers, "Scripts", "Scenes")
	}

	table := r.table(headers...)

	for _, result := range report.Results {
		latest := "-"
		if v, ok := result.Package.GetLatestVersion(); ok {
			latest = "v" + v.Version.String()
		}

		trusted := "no"
		if result.Trusted {
			trusted = "yes"
		}

		row := []string{
			result.Package.Name,
			latest,
			result.Package.AuthorOrAnonymous(),
			trusted,
			result.Package.Description,
		}

		if report.ShowUsage {
			row = append(row, fmt.Sprintf("%d", len(result.Scripts)), fmt.Sprintf("%d", len(result.Scenes)))
		}

		table.Append(row)
	}

	table.SetFooter(append([]string{fmt.Sprintf("Total %d", len(report.Results))}, make([]string, len(headers)-1)...))
	table.Render()
}

func (r *renderer) install(report m.InstallReport) {
	pkg := report.Package
	header := fmt.Sprintf("%s v%s by %s", pkg.Name, report.Version.Version, pkg.AuthorOrAnonymous())

	if len(report.MissingBundled) > 0 {
		r.printf("Some files are not available for download and must be downloaded at %s\n", packageLink(pkg))

		for _, f := range report.MissingBundled {
			state := r.styles.ok.Render("[exists]")
			if !f.Exists {
				state = r.styles.err.Render("[missing]")
			}

			r.printf("  - %s %s\n", f.LocalPath, state)
		}

		return
	}

	if report.Noop {
		r.printf("Package %s\n", header)
		r.printf("Files will be downloaded in %s:\n", report.Info.InstallFolder)

		table := r.table("Path", "Hash", "Url")
		for _, f := range report.Info.Files {
			table.Append([]string{
				relativeTo(report.Info.InstallFolder, f.Path),
				fmt.Sprintf("%s (%s)", f.RegistryFile.Hash.Value, f.RegistryFile.Hash.Type),
				f.RegistryFile.URL,
			})
		}

		table.Render()

		return
	}

	r.printf("Installed package %s\n", r.styles.ok.Render(header))
	r.printf("Files downloaded in %s:\n", report.Info.InstallFolder)

	for _, f := range report.Info.Files {
		r.printf("- %s\n", relativeTo(report.Info.InstallFolder, f.Path))
	}
}

func (r *renderer) upgrade(report m.UpgradeReport) {
	if len(report.Items) == 0 {
		r.printf("Everything is up to date.\n")
		return
	}

	table := r.table("Package", "From", "To", "Local", "Result")

	for _, item := range report.Items {
		result := fmt.Sprintf("%s updated", pluralize(len(item.Scenes), "scene", "scenes"))

		switch {
		case report.Noop:
			result = "would upgrade"
		case item.Skipped != "":
			result = "skipped: " + item.Skipped
		}

		table.Append([]string{
			item.Package,
			"v" + item.From.String(),
			"v" + item.To.String(),
			displayPath(report.Root, item.Local),
			result,
		})
	}

	table.Render()

	for _, item := range report.Items {
		for _, scene := range item.Scenes {
			r.printf("- %s: %s\n", displayPath(report.Root, scene.Scene), pluralize(scene.Replaced, "reference", "references"))
		}
	}
}

func (r *renderer) publish(report m.PublishReport) {
	if report.Created {
		r.printf("Created package %s v%s.\n", report.Package, report.Version)
	} else {
		r.printf("Added v%s to package %s.\n", report.Version, report.Package)
	}

	if report.WrittenTo != "" {
		r.printf("JSON written to %s\n", report.WrittenTo)
		return
	}

	r.printf("JSON Template:\n%s", report.JSON)
}

func (r *renderer) table(headers ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(r.out)
	table.SetHeader(headers)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	return table
}

func pluralize(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}

	return fmt.Sprintf("%d %s", count, plural)
}

func packageLink(pkg m.RegistryPackage) string {
	switch {
	case pkg.Homepage != "":
		return pkg.Homepage
	case pkg.Repository != "":
		return pkg.Repository
	default:
		return noLink
	}
}

func formatDate(v m.RegistryPackageVersion) string {
	if v.Created.IsZero() {
		return "(unknown date)"
	}

	return v.Created.Local().Format("Monday, January 2, 2006")
}

// displayPath shows paths under root relative to it.
func displayPath(root, path m.Path) string {
	if root == "" {
		return string(path)
	}

	rel, err := filepath.Rel(string(root), string(path))
	if err != nil || strings.HasPrefix(rel, "..") {
		return string(path)
	}

	return filepath.ToSlash(rel)
}

func relativeTo(root, path m.Path) string {
	rel, err := filepath.Rel(string(root), string(path))
	if err != nil {
		return string(path)
	}

	return filepath.ToSlash(rel)
}
