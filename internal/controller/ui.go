// Package controller provides output adapters for displaying party results.
package controller

import (
	m "github.com/mouse-blink/party/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeReport StartMode = iota
	ModeScan
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// WithScanMode shows scan progress until the first report is displayed.
func WithScanMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeScan
	}
}

// WithReportMode only displays reports.
func WithReportMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeReport
	}
}

// Mode returns the selected start mode.
func (c StartConfig) Mode() StartMode {
	return c.mode
}

func newStartConfig(options ...StartOption) StartConfig {
	cfg := StartConfig{mode: ModeReport}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// UI displays scan progress and command reports.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(options ...StartOption) error
	Close()
	// Notify receives scan progress; it must not block.
	Notify(progress m.ScanProgress)
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
