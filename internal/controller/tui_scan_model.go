package controller

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/party/internal/model"
)

const minBarWidth = 20

const progressInterval = 100 * time.Millisecond

// scanModel shows a spinner and one progress bar per unit kind while the
// saves are scanned.
type scanModel struct {
	spinner  spinner.Model
	scenes   progress.Model
	scripts  progress.Model
	state    m.ScanProgress
	width    int
	finished bool

	latest func() m.ScanProgress
}

func newScanModel(latest func() m.ScanProgress) scanModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	newBar := func() progress.Model {
		return progress.New(
			progress.WithDefaultGradient(),
			progress.WithWidth(40),
			progress.WithoutPercentage(),
		)
	}

	return scanModel{
		spinner: s,
		scenes:  newBar(),
		scripts: newBar(),
		latest:  latest,
	}
}

func (sm scanModel) Init() tea.Cmd {
	return tea.Batch(sm.spinner.Tick, sm.poll())
}

// poll reads the latest progress after a short delay.
func (sm scanModel) poll() tea.Cmd {
	latest := sm.latest
	if latest == nil {
		return nil
	}

	return tea.Tick(progressInterval, func(time.Time) tea.Msg {
		return progressMsg{progress: latest()}
	})
}

func (sm scanModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return sm.handleWindowSize(msg), nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			sm.finished = true
			return sm, tea.Quit
		}

	case progressMsg:
		sm.state = msg.progress

		return sm, sm.poll()

	case finishMsg:
		sm.finished = true
		return sm, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		sm.spinner, cmd = sm.spinner.Update(msg)

		return sm, cmd
	}

	return sm, nil
}

func (sm scanModel) View() string {
	if sm.finished {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Width(9)
	countStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	line := func(label string, bar progress.Model, p m.Progress) string {
		return fmt.Sprintf("  %s %s %s",
			labelStyle.Render(label),
			bar.ViewAs(ratio(p)),
			countStyle.Render(fmt.Sprintf("%d/%d", p.Done, p.Total)),
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		sm.spinner.View()+" "+titleStyle.Render("Analyzing the saves folder and downloading the registry..."),
		line("Scenes", sm.scenes, sm.state.Scenes),
		line("Scripts", sm.scripts, sm.state.Scripts),
	) + "\n"
}

func (sm scanModel) handleWindowSize(msg tea.WindowSizeMsg) scanModel {
	sm.width = msg.Width

	width := msg.Width - 24
	if width < minBarWidth {
		width = minBarWidth
	}

	sm.scenes.Width = width
	sm.scripts.Width = width

	return sm
}

func ratio(p m.Progress) float64 {
	if p.Total <= 0 {
		return 0
	}

	r := float64(p.Done) / float64(p.Total)
	if r > 1 {
		return 1
	}

	return r
}
