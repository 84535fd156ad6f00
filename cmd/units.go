package main

import (
	"converter/pkg/catalog"
	"converter/pkg/domain"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func printCategory(w io.Writer, c domain.Category) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0) //nolint: mnd
	fmt.Fprintf(tw, "%s (%s)\n", c.Name, c.Family)
	for _, u := range c.Units {
		fmt.Fprintf(tw, "  %s\t%s\n", u.Symbol, u.Name)
	}

	return tw.Flush() //nolint: wrapcheck
}

// unitsCommand lists the catalog, or a single category when one is given.
func unitsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "units [category]",
		Short: "Lists supported categories and units",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			categories := catalog.Categories()
			if len(args) == 1 {
				c, err := catalog.Category(args[0])
				if err != nil {
					return err //nolint: wrapcheck
				}
				categories = []domain.Category{c}
			}

			for _, c := range categories {
				if err := printCategory(cmd.OutOrStdout(), c); err != nil {
					return err
				}
			}

			return nil
		},
	}
}
