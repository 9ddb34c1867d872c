package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/martinemde/yumldot/dialect"
)

var dialectsCmd = &cobra.Command{
	Use:   "dialects",
	Short: "List the supported diagram types",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, name := range dialect.Names() {
			d, err := dialect.Lookup(name)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%-12s entities: %s\n", name, d.Openers())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dialectsCmd)
}
