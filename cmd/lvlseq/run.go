package main

import (
	"context"
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

var scenarioPath string

// addRunFlags declares the run command's flags on fs.
func addRunFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&scenarioPath, "file", "f", "scenarios.yaml", "path to the scenario YAML file")
}

// newRunCommand builds the subcommand that loads and executes scenarios.
func newRunCommand(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Execute every scenario in a YAML file, aborting on the first failure",
		RunE: func(*cobra.Command, []string) error {
			return runScenarios(ctx, scenarioPath, os.Stdout)
		},
	}
	addRunFlags(cmd.Flags())

	return cmd
}

// runScenarios loads a YAML scenario list from path and executes each entry
// in order, writing one result line per scenario. The first failing
// scenario aborts the run with its name attached to the error.
func runScenarios(ctx context.Context, path string, out io.Writer) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var scenarios []Scenario
	if err = yaml.Unmarshal(raw, &scenarios); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	log.Debugf("loaded %d scenarios from %s", len(scenarios), path)

	for _, sc := range scenarios {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		result, err := sc.run()
		if err != nil {
			return fmt.Errorf("scenario %q: %w", sc.Name, err)
		}
		log.Debugf("scenario %q (op %s) done", sc.Name, sc.Op)
		fmt.Fprintf(out, "%s: %s\n", sc.Name, result)
	}

	return nil
}
