package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

// newOpsCommand builds the subcommand that lists the supported scenario ops.
func newOpsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ops",
		Short: "List supported scenario ops",
		Run: func(cmd *cobra.Command, _ []string) {
			names := make([]string, 0, len(handlers))
			for name := range handlers {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	}
}
