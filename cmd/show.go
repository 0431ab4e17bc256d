package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/party/internal/domain"
)

var showWarningsFlag bool

// showCmd represents the show command.
var showCmd = newShowCmd()

func newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <package>",
		Short: "Show details about a registry package",
		Long:  "Show the versions, author, dependencies, files and local usage of a registry package.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Show(cmd.Context(), domain.ShowArgs{
				Package:  args[0],
				Warnings: showWarningsFlag,
			})
		},
	}
	cmd.Flags().BoolVarP(&showWarningsFlag, "warnings", "w", false, "print the problems found in the saves folder")

	return cmd
}

func init() {
	rootCmd.AddCommand(showCmd)
}
