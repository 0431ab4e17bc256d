package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/party/internal/domain"
)

var statusScenesFlag bool
var statusWarningsFlag bool
var statusUnregisteredFlag bool
var statusWatchFlag bool

// statusCmd represents the status command.
var statusCmd = newStatusCmd()

const statusLongDescription = `Scan the saves folder and match every script against the registry.

The optional filter restricts the scan to a folder, a scene (.json) or a
script (.cs, .cslist). A filter without an extension that is not a folder is
treated as a registry package name.`

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status [filter]",
		Short: "Show the state of the scripts used by your scenes",
		Long:  statusLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Status(cmd.Context(), domain.StatusArgs{
				Filter:       firstArg(args),
				Scenes:       statusScenesFlag,
				Warnings:     statusWarningsFlag,
				Unregistered: statusUnregisteredFlag,
				Watch:        statusWatchFlag,
			})
		},
	}
	cmd.Flags().BoolVarP(&statusScenesFlag, "scenes", "s", false, "list the scenes referencing each script")
	cmd.Flags().BoolVarP(&statusWarningsFlag, "warnings", "w", false, "print the problems found in the saves folder")
	cmd.Flags().BoolVarP(&statusUnregisteredFlag, "unregistered", "u", false, "also list scripts that are not in the registry")
	cmd.Flags().BoolVar(&statusWatchFlag, "watch", false, "scan again whenever the saves folder changes")

	return cmd
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}

	return args[0]
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
