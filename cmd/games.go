package cmd

import (
	"fmt"
	"text/tabwriter"

	"boardgames/catalog"

	"github.com/spf13/cobra"
)

func Games() *cobra.Command {
	return &cobra.Command{
		Use:   "games",
		Short: "List the available games",
		Args:  cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tDEPTH\tDESCRIPTION")
			for _, e := range catalog.All() {
				fmt.Fprintf(w, "%s\t%d\t%s\n", e.Name, e.Depth, e.Description)
			}
			return w.Flush()
		},
	}
}
