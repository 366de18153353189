package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vegasq/feel/internal/logging"
	"github.com/vegasq/feel/query"
)

const longHelp = `feel filters the rows of a CSV file by column values and writes the
matching rows to a new file.

Every --filter is a "column:spec" token; a row is kept only when it
satisfies all of them. Input files ending in .parquet are read as parquet,
and the input path may be a glob pattern matching files with the same
columns.

`

const examples = `  # Keep rows whose ID is 123
  feel data.csv out.csv -f "ID:123"

  # Keep rows with a score above 2 whose Name is not Feel or Other
  feel data.csv out.csv -f "Score:>2" -f "Name:~Feel|Other"

  # Show value counts before and after filtering, normalized
  feel data.csv out.csv -f "ID:<1000" -v -c -n

  # Keep a reproducible sample of 10 matching rows
  feel data.csv out.csv -f "ID:>0" -s 10 --seed 42`

// NewCommand builds the feel root command. Reports go to stdout, logs to
// stderr.
func NewCommand(stdout, stderr io.Writer) *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:           "feel <input> <output>",
		Short:         "Filter the rows of a CSV file by column values",
		Long:          longHelp + query.FilterTypes,
		Example:       examples,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := loadOptions(cmd, v, args)
			if err != nil {
				return err
			}

			logger, err := logging.Setup(stderr, opts.LogLevel, opts.LogFormat, opts.NoColor)
			if err != nil {
				return err
			}

			if err := Run(opts, stdout, logger); err != nil {
				logger.Debug().Err(err).Str("kind", KindOf(err).String()).Msg("feel failed")
				return err
			}
			return nil
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	registerFlags(cmd, v)

	return cmd
}

// Execute runs the command against the process arguments and prints any
// error to stderr
func Execute() error {
	cmd := NewCommand(os.Stdout, os.Stderr)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
