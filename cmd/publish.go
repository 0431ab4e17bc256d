package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/party/internal/domain"
)

var publishOptions domain.PublishOptions
var publishRegistryFlag string

// publishCmd represents the publish command.
var publishCmd = newPublishCmd()

const publishLongDescription = `Create a new registry version from scripts.

Inputs are local .cs files, folders containing them, or download URLs. Local
files are hashed as they are; URLs are downloaded first. Without --registry
the package is printed as JSON, ready to be submitted. With --registry the
version is added to a local clone of the registry index.json.`

func newPublishCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "publish <inputs...>",
		Short: "Add a package version to the registry",
		Long:  publishLongDescription,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := publishOptions
			opts.Inputs = args

			return workflow.Publish(cmd.Context(), domain.PublishArgs{
				PublishOptions: opts,
				Registry:       publishRegistryFlag,
			})
		},
	}
	cmd.Flags().StringVarP(&publishOptions.Name, "name", "n", "", "package name")
	cmd.Flags().StringVar(&publishOptions.Version, "version", "", "version to publish, e.g. 1.0.0")
	cmd.Flags().StringVar(&publishOptions.Notes, "notes", "", "release notes")
	cmd.Flags().StringVar(&publishOptions.Author, "author", "", "author of a new package")
	cmd.Flags().StringVar(&publishOptions.Description, "description", "", "description of a new package")
	cmd.Flags().StringSliceVar(&publishOptions.Tags, "tag", nil, "tag of a new package (can be repeated)")
	cmd.Flags().StringVar(&publishOptions.Homepage, "homepage", "", "homepage of a new package")
	cmd.Flags().StringVar(&publishOptions.Repository, "repository", "", "repository of a new package")
	cmd.Flags().StringVarP(&publishRegistryFlag, "registry", "r", "", "path of a local registry index.json to update")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("version")

	return cmd
}

func init() {
	rootCmd.AddCommand(publishCmd)
}
