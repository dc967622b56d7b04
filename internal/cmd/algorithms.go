package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/dendrascience/fraghash/fraghash"
	"github.com/spf13/cobra"
)

// NewAlgorithmsCmd creates and returns the algorithms subcommand.
func NewAlgorithmsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "algorithms",
		Short: "Show supported digest widths",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "WIDTH\tALGORITHM\tCUSTOM\tSUM CUSTOM")
			for _, a := range fraghash.Algorithms() {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", a.Size, a.Name, fraghash.FragmentCustom, fraghash.SumCustom)
			}
			return tw.Flush()
		},
	}
}
