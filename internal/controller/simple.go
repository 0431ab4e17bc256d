package controller

import (
	m "github.com/mouse-blink/party/internal/model"
	"github.com/spf13/cobra"
)

// SimpleUI implements UI with plain text written through the cobra command.
type SimpleUI struct {
	cmd *cobra.Command
	r   *renderer
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{
		cmd: cmd,
		r: &renderer{
			out:    cmd.OutOrStdout(),
			errOut: cmd.ErrOrStderr(),
			styles: plainStyles(),
		},
	}
}

// Start initializes the UI.
func (s *SimpleUI) Start(options ...StartOption) error {
	if newStartConfig(options...).mode == ModeScan {
		s.r.message("Analyzing the saves folder and getting the packages list from the registry, please wait...")
	}

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {}

// Notify ignores progress; plain output has no live display.
func (s *SimpleUI) Notify(m.ScanProgress) {}

// DisplayMessage prints a line.
func (s *SimpleUI) DisplayMessage(msg string) {
	s.r.message(msg)
}

// DisplayScanSummary prints scan timings.
func (s *SimpleUI) DisplayScanSummary(summary m.ScanSummary) {
	s.r.scanSummary(summary)
}

// DisplaySavesErrors prints scan problems, or only their count.
func (s *SimpleUI) DisplaySavesErrors(root m.Path, errs []m.SavesError, details bool) {
	s.r.savesErrors(root, errs, details)
}

// DisplayStatus prints the status report.
func (s *SimpleUI) DisplayStatus(report m.StatusReport) {
	s.r.status(report)
}

// DisplayPackage prints package details.
func (s *SimpleUI) DisplayPackage(report m.PackageReport) {
	s.r.pkg(report)
}

// DisplaySearch prints search results as a table.
func (s *SimpleUI) DisplaySearch(report m.SearchReport) {
	s.r.search(report)
}

// DisplayInstall prints the install plan or result.
func (s *SimpleUI) DisplayInstall(report m.InstallReport) {
	s.r.install(report)
}

// DisplayUpgrade prints upgraded scripts and scenes.
func (s *SimpleUI) DisplayUpgrade(report m.UpgradeReport) {
	s.r.upgrade(report)
}

// DisplayPublish prints the published version.
func (s *SimpleUI) DisplayPublish(report m.PublishReport) {
	s.r.publish(report)
}
