package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/party/internal/domain"
)

var searchUsageFlag bool
var searchWhereFlag string

// searchCmd represents the search command.
var searchCmd = newSearchCmd()

const searchLongDescription = `Search the registry by name, author, description or tag.

--where filters packages with an expression, for example:
  party search --where 'author == "acidbubbles" && major >= 2'
  party search --where '"pov" in tags'

Available fields: name, author, description, type, tags, homepage,
repository, versions, latest, major, files, created.`

func newSearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search [query...]",
		Short: "Search the registry",
		Long:  searchLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Search(cmd.Context(), domain.SearchArgs{
				Query: strings.Join(args, " "),
				Where: searchWhereFlag,
				Usage: searchUsageFlag,
			})
		},
	}
	cmd.Flags().BoolVarP(&searchUsageFlag, "usage", "u", false, "show how many local scripts and scenes use each package")
	cmd.Flags().StringVar(&searchWhereFlag, "where", "", "only keep packages matching this expression")

	return cmd
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
