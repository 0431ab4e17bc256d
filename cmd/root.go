// Package cmd provides the root command and CLI setup for party.
package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mouse-blink/party/internal/adapter"
	"github.com/mouse-blink/party/internal/config"
	"github.com/mouse-blink/party/internal/controller"
	"github.com/mouse-blink/party/internal/domain"
)

const userAgent = "party"

const httpTimeout = 30 * time.Second

var settings = viper.New()
var cfg config.Config
var logger *slog.Logger
var workflow domain.Workflow

var configFileFlag string

// stopTracing flushes spans when --trace-file is set.
var stopTracing func(context.Context) error

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "party",
		Short: "Package manager for Virt-A-Mate scripts",
		Long: `Party finds the scripts used by your Virt-A-Mate scenes, matches them
against the community registry and keeps them up to date.

Run it from your Virt-A-Mate install folder, or point it there with --vam.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := loadConfig(); err != nil {
				return err
			}

			if cfg.TraceFile != "" && stopTracing == nil {
				stop, err := startTracing(cfg.TraceFile)
				if err != nil {
					return err
				}

				stopTracing = stop
			}

			if workflow != nil {
				return nil
			}

			wf, err := newWorkflow(cmd, cfg, logger)
			if err != nil {
				return err
			}

			workflow = wf

			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&configFileFlag, "config", "", "config file (default .party.toml in the current or home directory)")
	flags.String("vam", "", "Virt-A-Mate install folder (default: current directory)")
	flags.BoolP("verbose", "v", false, "print debug logs")
	flags.IntP("parallel", "p", 0, "maximum number of files processed in parallel (0: unbounded)")
	flags.String("metrics-file", "", "write Prometheus metrics to this file after each command")
	flags.String("trace-file", "", "write OpenTelemetry spans to this file as JSON")

	_ = settings.BindPFlag("vam_directory", flags.Lookup("vam"))
	_ = settings.BindPFlag("verbose", flags.Lookup("verbose"))
	_ = settings.BindPFlag("scanning.concurrency", flags.Lookup("parallel"))
	_ = settings.BindPFlag("metrics_file", flags.Lookup("metrics-file"))
	_ = settings.BindPFlag("trace_file", flags.Lookup("trace-file"))

	return cmd
}

// loadConfig reads the configuration and sets up the logger.
func loadConfig() error {
	config.Prepare(settings, configFileFlag)

	loaded, err := config.Load(settings)
	if err != nil {
		return err
	}

	cfg = loaded
	logger = newLogger(cfg.Verbose)

	return nil
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// newWorkflow wires the adapters and domain services for the configured
// Virt-A-Mate folder.
func newWorkflow(cmd *cobra.Command, cfg config.Config, logger *slog.Logger) (domain.Workflow, error) {
	folders, err := domain.NewFolders(cfg.VamDirectory, cfg.Scanning.PackagesFolder)
	if err != nil {
		return nil, err
	}

	fsAdapter := adapter.NewLocalSourceFSAdapter()
	httpClient := adapter.NewLocalHTTPClient(userAgent, httpTimeout)
	s3Client := adapter.NewS3Client(adapter.S3Options{
		Region:          cfg.Registry.S3Region,
		Endpoint:        cfg.Registry.S3Endpoint,
		AccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
		SecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
	})
	store := adapter.NewRegistryStore(fsAdapter)
	fetcher := adapter.NewSourceFetcher(httpClient, s3Client, fsAdapter, adapter.ExecutableDir())
	scenes := adapter.NewJSONSceneSerializer(fsAdapter)
	lists := adapter.NewTextScriptListSerializer(fsAdapter)
	metrics := domain.NewMetrics(nil)

	resolver := domain.NewSavesResolver(fsAdapter, scenes, lists, folders, domain.ResolverOptions{
		Ignore:      cfg.Scanning.Ignore,
		Concurrency: cfg.Scanning.Concurrency,
	}, logger, metrics)

	return domain.NewWorkflow(domain.WorkflowDeps{
		FS:             fsAdapter,
		Store:          store,
		Watchers:       adapter.NewSavesWatcher,
		UI:             progressDisplay{controller.NewUI(cmd, controller.IsTTY(os.Stdout))},
		Resolver:       resolver,
		Registry:       domain.NewRegistryLoader(fetcher, store, logger, metrics),
		Evaluator:      domain.NewPackageStatus(fsAdapter, folders),
		Installer:      domain.NewInstaller(fsAdapter, httpClient, logger, metrics),
		Upgrader:       domain.NewSceneUpgrader(scenes, folders, metrics),
		Publisher:      domain.NewPublisher(fsAdapter, httpClient),
		Folders:        folders,
		Metrics:        metrics,
		Logger:         logger,
		Sources:        cfg.Registry.URLs,
		TrustedDomains: cfg.Registry.TrustedDomains,
		MetricsFile:    cfg.MetricsFile,
	}), nil
}

// progressDisplay adapts the controller UI to the workflow display.
type progressDisplay struct {
	controller.UI
}

var _ domain.Display = progressDisplay{}

// StartProgress starts the UI in scan mode.
func (d progressDisplay) StartProgress() error {
	return d.Start(controller.WithScanMode())
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)

	if stopTracing != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if shutdownErr := stopTracing(shutdownCtx); shutdownErr != nil && logger != nil {
			logger.Warn("could not flush traces", "error", shutdownErr)
		}

		cancel()
	}

	if err != nil {
		stop()
		os.Exit(1)
	}
}
