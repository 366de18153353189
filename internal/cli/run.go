package cli

import (
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/vegasq/feel/output"
	"github.com/vegasq/feel/query"
	"github.com/vegasq/feel/reader"
	"github.com/vegasq/feel/table"
)

// Run executes one filtering job: load the input, parse and apply the
// filters, optionally sample, report value counts and write the output file.
//
// Every validation error is returned before the output file is created.
func Run(opts Options, stdout io.Writer, logger zerolog.Logger) error {
	if opts.Input == "" || opts.Output == "" {
		return ErrPath
	}

	source, err := reader.Load(opts.Input)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", opts.Input, err)
	}
	logger.Info().
		Str("input", opts.Input).
		Int("rows", source.Len()).
		Strs("columns", source.Columns()).
		Msg("loaded input")

	conditions, inUse, err := query.ParseFilters(opts.Filters, source.Columns())
	if err != nil {
		return err
	}
	for _, c := range conditions {
		logger.Debug().Stringer("condition", c).Msg("parsed filter")
	}

	filtered, _, err := query.ApplyFilters(source, conditions)
	if err != nil {
		return err
	}
	logger.Info().Int("kept", filtered.Len()).Int("total", source.Len()).Msg("applied filters")

	if opts.Sample != nil {
		fmt.Fprintf(stdout, "\nsampled: %d rows\n", *opts.Sample)
		filtered, err = filtered.Sample(*opts.Sample, newRand(opts.Seed))
		if err != nil {
			return err
		}
	}

	if opts.Verbose {
		reporter := output.NewCountReporter(stdout, opts.Normalize)
		if err := reporter.ReportColumns(source, filtered, inUse, opts.Counts); err != nil {
			return err
		}
	}

	if err := writeOutput(opts, filtered); err != nil {
		return err
	}
	logger.Info().Str("output", opts.Output).Int("rows", filtered.Len()).Str("format", opts.Format).Msg("wrote output")

	return nil
}

// writeOutput writes t to opts.Output, removing the file again if writing
// fails part way
func writeOutput(opts Options, t *table.Table) (err error) {
	file, err := os.Create(opts.Output)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); err == nil && closeErr != nil {
			err = fmt.Errorf("failed to close output file: %w", closeErr)
		}
		if err != nil {
			_ = os.Remove(opts.Output)
		}
	}()

	if err := newFormatter(opts, file).Format(t); err != nil {
		return fmt.Errorf("failed to write %s: %w", opts.Output, err)
	}
	return nil
}

func newFormatter(opts Options, w io.Writer) output.Formatter {
	switch opts.Format {
	case FormatJSONL, FormatJSON:
		return output.NewJSONFormatter(w)
	default:
		formatter := output.NewCSVFormatter(w)
		formatter.Sanitize = opts.Sanitize
		return formatter
	}
}

// newRand returns the sampling source; seed 0 seeds from the clock
func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)))
}
