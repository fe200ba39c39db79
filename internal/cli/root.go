// Package cli wires the stampmatch commands onto a cobra tree. Every command
// shares one config load (defaults, YAML file, environment, flags) and one
// logger, both set up before the command runs.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/backmassage/stampmatch/internal/config"
	"github.com/backmassage/stampmatch/internal/logging"
)

// ErrIncomparable is returned by the compare command when either value does
// not parse. The entrypoint maps it to exit code 2.
var ErrIncomparable = errors.New("incomparable")

// app is the state shared by the commands of one invocation.
type app struct {
	version string
	flags   *config.Flags
	cfg     config.Config
	log     *logging.Logger
}

// Execute builds the command tree, runs it with args and closes the logger.
// Negative numbers such as "-5" are taken as values, not shorthand flags.
func Execute(ctx context.Context, version string, args []string, stdout, stderr io.Writer) error {
	a := &app{version: version}
	root := a.newRootCmd()
	root.SetArgs(separateNegativeNumbers(root, args))
	root.SetOut(stdout)
	root.SetErr(stderr)
	defer a.close()
	return root.ExecuteContext(ctx)
}

func (a *app) newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "stampmatch",
		Short: "Find files whose names embed the same date/time",
		Long: `stampmatch parses timestamps from arbitrary values and from filenames.

It scans a directory tree for files named like report_2024_10_15_12_34_56.txt
or backup_15_10_2024_12_34_56.log and lists the files that share an instant,
typically the same export sitting in several subdirectories.`,
		Version:           a.version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	a.flags = config.BindFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(a.newSizeCmd())
	rootCmd.AddCommand(a.newParseCmd())
	rootCmd.AddCommand(a.newCompareCmd())
	rootCmd.AddCommand(a.newScanCmd())
	rootCmd.AddCommand(a.newFixturesCmd())
	rootCmd.AddCommand(a.newShowConfigCmd())

	return rootCmd
}

// setup loads the effective config and opens the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg := config.DefaultConfig()
	if a.flags.ConfigFile != "" {
		if err := config.LoadFile(a.flags.ConfigFile, &cfg); err != nil {
			return err
		}
	}
	if err := config.LoadEnv(a.flags.EnvFile, &cfg); err != nil {
		return err
	}
	a.flags.Apply(&cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	log, err := logging.NewLogger(&a.cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("failed to open logger: %w", err)
	}
	a.log = log
	return nil
}

func (a *app) close() {
	if a.log != nil {
		a.log.Close()
	}
}
