package controller

import (
	"io"
	"sync"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"

	m "github.com/mouse-blink/party/internal/model"
)

// TUI implements UI using Bubble Tea for the live scan progress and colored
// reports.
type TUI struct {
	output io.Writer
	r      *renderer

	// latest holds the most recent scan progress; the display polls it.
	latest atomic.Pointer[m.ScanProgress]

	mu      sync.Mutex
	program *tea.Program
	done    chan struct{}
	started bool
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{
		output: output,
		r:      &renderer{out: output, errOut: output, styles: colorStyles()},
	}
}

// Start initializes the UI. In scan mode a progress display runs until the
// first report is shown or Close is called.
func (t *TUI) Start(options ...StartOption) error {
	if newStartConfig(options...).mode != ModeScan {
		return nil
	}

	t.latest.Store(nil)

	return t.startWithModel(newScanModel(t.progress))
}

func (t *TUI) startWithModel(model tea.Model) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.started {
		return nil
	}

	program := tea.NewProgram(model, tea.WithOutput(t.output), tea.WithInput(nil))
	done := make(chan struct{})

	t.program = program
	t.done = done
	t.started = true

	go func() {
		defer close(done)

		_, _ = program.Run()
	}()

	return nil
}

// stop ends the progress display so reports can be written.
func (t *TUI) stop() {
	t.mu.Lock()
	if !t.started {
		t.mu.Unlock()
		return
	}

	program, done := t.program, t.done
	t.program = nil
	t.started = false
	t.mu.Unlock()

	program.Send(finishMsg{})
	<-done
}

// Close finalizes the UI.
func (t *TUI) Close() {
	t.stop()
}

// Notify records scan progress without waiting for the display.
func (t *TUI) Notify(progress m.ScanProgress) {
	t.latest.Store(&progress)
}

func (t *TUI) progress() m.ScanProgress {
	if p := t.latest.Load(); p != nil {
		return *p
	}

	return m.ScanProgress{}
}

// DisplayMessage prints a line.
func (t *TUI) DisplayMessage(msg string) {
	t.stop()
	t.r.message(msg)
}

// DisplayScanSummary prints scan timings.
func (t *TUI) DisplayScanSummary(summary m.ScanSummary) {
	t.stop()
	t.r.scanSummary(summary)
}

// DisplaySavesErrors prints scan problems, or only their count.
func (t *TUI) DisplaySavesErrors(root m.Path, errs []m.SavesError, details bool) {
	t.stop()
	t.r.savesErrors(root, errs, details)
}

// DisplayStatus prints the status report.
func (t *TUI) DisplayStatus(report m.StatusReport) {
	t.stop()
	t.r.status(report)
}

// DisplayPackage prints package details.
func (t *TUI) DisplayPackage(report m.PackageReport) {
	t.stop()
	t.r.pkg(report)
}

// DisplaySearch prints search results.
func (t *TUI) DisplaySearch(report m.SearchReport) {
	t.stop()
	t.r.search(report)
}

// DisplayInstall prints the install plan or result.
func (t *TUI) DisplayInstall(report m.InstallReport) {
	t.stop()
	t.r.install(report)
}

// DisplayUpgrade prints upgraded scripts and scenes.
func (t *TUI) DisplayUpgrade(report m.UpgradeReport) {
	t.stop()
	t.r.upgrade(report)
}

// DisplayPublish prints the published version.
func (t *TUI) DisplayPublish(report m.PublishReport) {
	t.stop()
	t.r.publish(report)
}
