package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/party/internal/domain"
)

var upgradeNoopFlag bool
var upgradeWarningsFlag bool

// upgradeCmd represents the upgrade command.
var upgradeCmd = newUpgradeCmd()

const upgradeLongDescription = `Install the latest version of every registered script that has an update,
then point the scenes using it to the new files.

Only packages made of a single file can be upgraded in scenes. The filter
works like the status filter.`

func newUpgradeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "upgrade [filter]",
		Short: "Upgrade scripts and the scenes using them",
		Long:  upgradeLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Upgrade(cmd.Context(), domain.UpgradeArgs{
				Filter:   firstArg(args),
				Noop:     upgradeNoopFlag,
				Warnings: upgradeWarningsFlag,
			})
		},
	}
	cmd.Flags().BoolVar(&upgradeNoopFlag, "noop", false, "print what would be upgraded without changing anything")
	cmd.Flags().BoolVarP(&upgradeWarningsFlag, "warnings", "w", false, "print the problems found in the saves folder")

	return cmd
}

func init() {
	rootCmd.AddCommand(upgradeCmd)
}
