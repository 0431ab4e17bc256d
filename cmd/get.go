package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/party/internal/domain"
)

var getVersionFlag string
var getNoopFlag bool
var getForceFlag bool

// getCmd represents the get command.
var getCmd = newGetCmd()

const getLongDescription = `Download a registry package into the packages folder.

Every file is verified against the hash published in the registry before it
is written. Files bundled with Virt-A-Mate cannot be downloaded; the command
stops and lists them when one is missing, unless --force is given.`

func newGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <package>",
		Short: "Install a package from the registry",
		Long:  getLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Get(cmd.Context(), domain.GetArgs{
				Package: args[0],
				Version: getVersionFlag,
				Noop:    getNoopFlag,
				Force:   getForceFlag,
			})
		},
	}
	cmd.Flags().StringVar(&getVersionFlag, "version", "", "version to install (default: latest)")
	cmd.Flags().BoolVar(&getNoopFlag, "noop", false, "print what would be downloaded without writing anything")
	cmd.Flags().BoolVarP(&getForceFlag, "force", "f", false, "overwrite modified files and skip bundled file checks")

	return cmd
}

func init() {
	rootCmd.AddCommand(getCmd)
}
