package cmd

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/mouse-blink/party/internal/config"
	"github.com/mouse-blink/party/internal/controller"
	"github.com/mouse-blink/party/internal/domain"
	domainmocks "github.com/mouse-blink/party/internal/domain/mocks"
)

// newTestRoot builds a fresh command tree backed by a mocked workflow.
func newTestRoot(t *testing.T, sub ...*cobra.Command) (*cobra.Command, *domainmocks.MockWorkflow, *bytes.Buffer) {
	t.Helper()
	t.Chdir(t.TempDir())

	mockWorkflow := domainmocks.NewMockWorkflow(t)

	originalWorkflow := workflow
	workflow = mockWorkflow
	t.Cleanup(func() { workflow = originalWorkflow })

	var out bytes.Buffer

	cmd := newRootCmd()
	cmd.AddCommand(sub...)
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})

	return cmd, mockWorkflow, &out
}

func TestNewRootCmd(t *testing.T) {
	cmd := newRootCmd()

	assert.Equal(t, "party", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)

	for _, name := range []string{"config", "vam", "verbose", "parallel", "metrics-file", "trace-file"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), "missing --%s flag", name)
	}
}

func TestRootCmd_RegistersSubcommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	for _, name := range []string{"status", "show", "get", "search", "upgrade", "publish", "config"} {
		assert.True(t, names[name], "missing %s command", name)
	}
}

func TestStatusCmd(t *testing.T) {
	cmd, mockWorkflow, _ := newTestRoot(t, newStatusCmd())

	mockWorkflow.On("Status", mock.Anything, domain.StatusArgs{
		Filter:       "Saves/scene",
		Scenes:       true,
		Warnings:     true,
		Unregistered: true,
	}).Return(nil)

	cmd.SetArgs([]string{"status", "Saves/scene", "--scenes", "--warnings", "--unregistered"})
	require.NoError(t, cmd.Execute())
}

func TestStatusCmd_NoFilter(t *testing.T) {
	cmd, mockWorkflow, _ := newTestRoot(t, newStatusCmd())

	mockWorkflow.On("Status", mock.Anything, mock.MatchedBy(func(args domain.StatusArgs) bool {
		return args.Filter == "" && args.Watch
	})).Return(nil)

	cmd.SetArgs([]string{"status", "--watch"})
	require.NoError(t, cmd.Execute())
}

func TestStatusCmd_PropagatesError(t *testing.T) {
	cmd, mockWorkflow, _ := newTestRoot(t, newStatusCmd())

	mockWorkflow.On("Status", mock.Anything, mock.Anything).Return(errors.New("boom"))

	cmd.SetArgs([]string{"status"})
	assert.EqualError(t, cmd.Execute(), "boom")
}

func TestShowCmd(t *testing.T) {
	cmd, mockWorkflow, _ := newTestRoot(t, newShowCmd())

	mockWorkflow.On("Show", mock.Anything, domain.ShowArgs{Package: "improved-pov"}).Return(nil)

	cmd.SetArgs([]string{"show", "improved-pov"})
	require.NoError(t, cmd.Execute())
}

func TestShowCmd_RequiresPackage(t *testing.T) {
	cmd, _, _ := newTestRoot(t, newShowCmd())

	cmd.SetArgs([]string{"show"})
	assert.Error(t, cmd.Execute())
}

func TestGetCmd(t *testing.T) {
	cmd, mockWorkflow, _ := newTestRoot(t, newGetCmd())

	mockWorkflow.EXPECT().
		Get(mock.Anything, domain.GetArgs{Package: "improved-pov", Version: "1.2", Noop: true, Force: true}).
		Return(nil)

	cmd.SetArgs([]string{"get", "improved-pov", "--version", "1.2", "--noop", "--force"})
	require.NoError(t, cmd.Execute())
}

func TestSearchCmd(t *testing.T) {
	cmd, mockWorkflow, _ := newTestRoot(t, newSearchCmd())

	mockWorkflow.On("Search", mock.Anything, domain.SearchArgs{
		Query: "improved pov",
		Where: "major >= 2",
		Usage: true,
	}).Return(nil)

	cmd.SetArgs([]string{"search", "improved", "pov", "--where", "major >= 2", "--usage"})
	require.NoError(t, cmd.Execute())
}

func TestUpgradeCmd(t *testing.T) {
	cmd, mockWorkflow, _ := newTestRoot(t, newUpgradeCmd())

	mockWorkflow.On("Upgrade", mock.Anything, domain.UpgradeArgs{Filter: "scene.json", Noop: true}).Return(nil)

	cmd.SetArgs([]string{"upgrade", "scene.json", "--noop"})
	require.NoError(t, cmd.Execute())
}

func TestPublishCmd(t *testing.T) {
	cmd, mockWorkflow, _ := newTestRoot(t, newPublishCmd())

	mockWorkflow.On("Publish", mock.Anything, mock.MatchedBy(func(args domain.PublishArgs) bool {
		return args.Name == "my-script" &&
			args.Version == "1.0.0" &&
			args.Registry == "index.json" &&
			len(args.Inputs) == 2 &&
			len(args.Tags) == 2
	})).Return(nil)

	cmd.SetArgs([]string{
		"publish", "a.cs", "https://example.org/b.cs",
		"--name", "my-script", "--version", "1.0.0",
		"--tag", "pov", "--tag", "camera",
		"--registry", "index.json",
	})
	require.NoError(t, cmd.Execute())
}

func TestPublishCmd_RequiresNameAndVersion(t *testing.T) {
	cmd, _, _ := newTestRoot(t, newPublishCmd())

	cmd.SetArgs([]string{"publish", "a.cs"})
	assert.Error(t, cmd.Execute())
}

func TestConfigInitCmd(t *testing.T) {
	cmd, _, out := newTestRoot(t, newConfigCmd())
	path := filepath.Join(t.TempDir(), "party.toml")

	cmd.SetArgs([]string{"config", "init", "--path", path, "--vam", "/games/vam"})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "Configuration written to")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "vam_directory")
	assert.Contains(t, string(data), "/games/vam")
	assert.Contains(t, string(data), config.DefaultRegistryURL)
}

func TestNewWorkflow_WiresCollaborators(t *testing.T) {
	cfg := config.Config{
		VamDirectory: t.TempDir(),
		Registry:     config.RegistryConfig{URLs: []string{"index.json"}},
	}

	wf, err := newWorkflow(newRootCmd(), cfg, slog.Default())
	require.NoError(t, err)
	assert.NotNil(t, wf)
}

func TestNewLogger(t *testing.T) {
	assert.True(t, newLogger(true).Enabled(t.Context(), slog.LevelDebug))
	assert.False(t, newLogger(false).Enabled(t.Context(), slog.LevelInfo))
}

func TestStartTracing_WritesSpans(t *testing.T) {
	t.Cleanup(func() { otel.SetTracerProvider(noop.NewTracerProvider()) })

	path := filepath.Join(t.TempDir(), "trace.json")

	stop, err := startTracing(path)
	require.NoError(t, err)

	_, span := otel.Tracer("party-test").Start(t.Context(), "SavesResolver.Resolve")
	span.End()

	require.NoError(t, stop(t.Context()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"Name":"SavesResolver.Resolve"`)
	assert.Contains(t, string(data), `"Value":"party"`)
}

func TestStartTracing_BadPath(t *testing.T) {
	_, err := startTracing(filepath.Join(t.TempDir(), "missing", "trace.json"))
	assert.ErrorContains(t, err, "opening trace file")
}

func TestProgressDisplay_StartsScanMode(t *testing.T) {
	ui := &startRecorder{}

	require.NoError(t, progressDisplay{ui}.StartProgress())

	var started controller.StartConfig
	for _, opt := range ui.options {
		opt(&started)
	}

	assert.Equal(t, controller.ModeScan, started.Mode())
}

// startRecorder records the options passed to Start.
type startRecorder struct {
	controller.UI
	options []controller.StartOption
}

func (s *startRecorder) Start(options ...controller.StartOption) error {
	s.options = options
	return nil
}
