package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/backmassage/stampmatch/internal/config"
	"github.com/backmassage/stampmatch/internal/display"
	"github.com/backmassage/stampmatch/internal/fixtures"
	"github.com/backmassage/stampmatch/internal/pipeline"
	"github.com/backmassage/stampmatch/internal/stamp"
	"github.com/backmassage/stampmatch/internal/timestamp"
)

// missing is printed in place of an instant that could not be parsed.
const missing = "-"

var (
	errSizeMissing = errors.New("missing size argument")
	errSizeInvalid = errors.New("invalid size argument")
)

const (
	sizeMissingHelp = "Please provide the file size in bytes as a command-line argument."
	sizeInvalidHelp = "Please provide a valid file size in bytes as a command-line argument."
)

func (a *app) newSizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "size <bytes>",
		Short: "Format a byte count as a human-readable size",
		Long: `Formats a byte count with base 1024 and two decimals, e.g. 1073741824 -> 1.00 GB.
Human input such as "1.5 MB" or "2GiB" is accepted as well.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), sizeMissingHelp)
				return errSizeMissing
			}
			n, err := display.ParseSize(args[0])
			if err != nil {
				fmt.Fprintln(cmd.OutOrStdout(), sizeInvalidHelp)
				return fmt.Errorf("%w: %v", errSizeInvalid, err)
			}
			s, err := display.FormatSize(n)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), s)
			return nil
		},
	}
}

func (a *app) newParseCmd() *cobra.Command {
	var (
		epoch    bool
		filename bool
	)

	cmd := &cobra.Command{
		Use:   "parse <value>...",
		Short: "Parse values into UTC instants",
		Long: `Parses each value into a UTC instant and prints one line per input, in order.
Values that cannot be parsed print "-".

By default a value may be a date string in any common notation or seconds
since the Unix epoch. --epoch only accepts numbers; --file extracts the
YYYY_MM_DD_HH_MM_SS or DD_MM_YYYY_HH_MM_SS stamp from a filename.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if epoch && filename {
				return errors.New("--epoch and --file are mutually exclusive")
			}

			var results []timestamp.Result
			switch {
			case filename:
				for _, arg := range args {
					t, ok := stamp.FromFilename(arg)
					results = append(results, timestamp.Result{Instant: t, OK: ok})
				}
			case epoch:
				values := make([]any, len(args))
				for i, arg := range args {
					if sec, err := strconv.ParseFloat(strings.TrimSpace(arg), 64); err == nil {
						values[i] = sec
					}
				}
				results = timestamp.Unify(values)
			default:
				values := make([]any, len(args))
				for i, arg := range args {
					values[i] = arg
				}
				results = timestamp.Unify(values)
			}

			out := cmd.OutOrStdout()
			for i, r := range results {
				fmt.Fprintf(out, "%s\t%s\n", args[i], a.formatResult(r))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&epoch, "epoch", false, "Treat values as seconds since the Unix epoch")
	cmd.Flags().BoolVar(&filename, "file", false, "Extract the stamp embedded in filenames")
	return cmd
}

func (a *app) formatResult(r timestamp.Result) string {
	if !r.OK {
		return missing
	}
	s := pipeline.FormatInstant(r.Instant, a.cfg.TimeFormat)
	if us := r.Instant.Nanosecond() / int(time.Microsecond); us != 0 && a.cfg.TimeFormat == config.DefaultTimeFormat {
		s += fmt.Sprintf(".%06d", us)
	}
	return s
}

func (a *app) newCompareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compare <a> <b>",
		Short: "Order two timestamps",
		Long: `Parses both values and prints -1 if a is earlier, 0 if equal, 1 if later.
Prints "incomparable" and exits with status 2 when either value does not parse.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, ok := timestamp.Compare(args[0], args[1])
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), ErrIncomparable.Error())
				return ErrIncomparable
			}
			fmt.Fprintln(cmd.OutOrStdout(), c)
			return nil
		},
	}
}

func (a *app) newScanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scan [root]",
		Short: "List files that share an embedded timestamp",
		Long: `Walks the root directory (default "data"), extracts the stamp from every
filename and reports, per file, its parsed instant and the files elsewhere in
the tree carrying the same instant.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				a.cfg.Root = config.NormalizeDirArg(args[0])
			}
			if !a.cfg.NoBanner {
				display.PrintBanner(cmd.OutOrStdout())
			}

			a.log.Debug("Scanning %s", a.cfg.Root)
			_, _, err := pipeline.Run(cmd.Context(), &a.cfg, a.log, cmd.OutOrStdout())
			return err
		},
	}
}

func (a *app) newFixturesCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "fixtures [dir]",
		Short: "Create a sample tree of timestamped dummy files",
		Long: `Creates sub1 and sub2 under dir (default: the configured root), each holding
the same set of stamped dummy files in both filename layouts plus one file
without a stamp. Existing files are kept unless --force is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			dir := a.cfg.Root
			if len(args) == 1 {
				dir = config.NormalizeDirArg(args[0])
			}

			written, err := fixtures.Create(dir, force)
			if err != nil {
				return fmt.Errorf("failed to create fixtures: %w", err)
			}
			for _, p := range written {
				a.log.Debug("Wrote %s", p)
			}
			a.log.Success("Created %d fixture files in %s", len(written), dir)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing files")
	return cmd
}

func (a *app) newShowConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show-config",
		Short: "Display the effective configuration",
		Long:  `Shows the configuration after defaults, config file, environment and flags are applied.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), a.cfg.String())
			return nil
		},
	}
}
