package main

import (
	"context"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var verbose bool

// execute wires the command tree and runs it; any failure exits 1 after
// cobra has printed the error.
func execute(ctx context.Context) {
	rootCmd := &cobra.Command{
		Use:          "lvlseq",
		Short:        "Run bounded linear-scan scenarios from YAML files",
		SilenceUsage: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			if verbose {
				log.SetLevel(log.DebugLevel)
			}
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.AddCommand(newRunCommand(ctx), newOpsCommand())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
