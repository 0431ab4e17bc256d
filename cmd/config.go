package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/party/internal/config"
)

var configPathFlag string

// configCmd represents the config command.
var configCmd = newConfigCmd()

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the party configuration",
		// Configuration commands never touch the saves folder or the registry.
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return loadConfig()
		},
	}
	cmd.AddCommand(newConfigInitCmd())

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the effective configuration to a TOML file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.Write(configPathFlag, cfg); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Configuration written to %s\n", configPathFlag)

			return nil
		},
	}
	cmd.Flags().StringVar(&configPathFlag, "path", config.FileName, "where to write the configuration")

	return cmd
}

func init() {
	rootCmd.AddCommand(configCmd)
}
