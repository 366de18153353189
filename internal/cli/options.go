package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vegasq/feel/internal/logging"
)

// Flag names, also used as viper keys. Each can be set from the environment
// as FEEL_<NAME> with dashes replaced by underscores.
const (
	flagFilter    = "filter"
	flagVerbose   = "verbose"
	flagCounts    = "counts"
	flagNormalize = "normalize"
	flagSample    = "sample"
	flagSeed      = "seed"
	flagFormat    = "format"
	flagSanitize  = "sanitize"
	flagLogLevel  = "log-level"
	flagLogFormat = "log-format"
	flagNoColor   = "disable-log-color"
)

// Output formats
const (
	FormatCSV   = "csv"
	FormatJSONL = "jsonl"
	FormatJSON  = "json"
)

// envPrefix namespaces the environment variables read by viper
const envPrefix = "feel"

// Options holds the resolved settings of one invocation
type Options struct {
	Input     string
	Output    string
	Filters   []string
	Verbose   bool
	Counts    bool
	Normalize bool

	// Sample is nil when no sampling was requested
	Sample *int
	Seed   int64

	Format   string
	Sanitize bool

	LogLevel  string
	LogFormat string
	NoColor   bool
}

func registerFlags(cmd *cobra.Command, v *viper.Viper) {
	flags := cmd.Flags()
	flags.StringArrayP(flagFilter, "f", nil, "column filter, repeatable (see FILTER TYPES)")
	flags.BoolP(flagVerbose, "v", false, "display value counts for filtered columns")
	flags.BoolP(flagCounts, "c", false, "display original value counts for filtered columns")
	flags.BoolP(flagNormalize, "n", false, "whether to normalize value counts")
	flags.IntP(flagSample, "s", 0, "sample n rows from filtered CSV")
	flags.Int64(flagSeed, 0, "random seed for --sample (0 seeds from the clock)")
	flags.String(flagFormat, FormatCSV, "output format: csv, jsonl")
	flags.Bool(flagSanitize, false, "quote cells that spreadsheets would run as formulas")
	flags.String(flagLogLevel, "warn", "set the log level")
	flags.String(flagLogFormat, logging.FormatPretty, "set the log format - can be either 'json' or 'pretty'")
	flags.Bool(flagNoColor, false, "disable coloring of log output")

	_ = v.BindPFlags(flags)

	// Setup viper to read from the env, this allows reading flags from the
	// command line or the env using the format 'FEEL_LOG_LEVEL'
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
}

// loadOptions resolves flags, environment and positional arguments
func loadOptions(cmd *cobra.Command, v *viper.Viper, args []string) (Options, error) {
	opts := Options{
		Input:     args[0],
		Output:    args[1],
		Verbose:   v.GetBool(flagVerbose),
		Counts:    v.GetBool(flagCounts),
		Normalize: v.GetBool(flagNormalize),
		Seed:      v.GetInt64(flagSeed),
		Format:    strings.ToLower(v.GetString(flagFormat)),
		Sanitize:  v.GetBool(flagSanitize),
		LogLevel:  v.GetString(flagLogLevel),
		LogFormat: v.GetString(flagLogFormat),
		NoColor:   v.GetBool(flagNoColor),
	}

	if opts.Input == "" || opts.Output == "" {
		return opts, ErrPath
	}

	// Read the flag directly: viper would split filter values on commas
	if cmd.Flags().Changed(flagFilter) {
		opts.Filters, _ = cmd.Flags().GetStringArray(flagFilter)
	} else {
		opts.Filters = v.GetStringSlice(flagFilter)
	}
	if len(opts.Filters) == 0 {
		return opts, ErrNoFilters
	}

	if v.IsSet(flagSample) {
		n := v.GetInt(flagSample)
		opts.Sample = &n
	}

	switch opts.Format {
	case FormatCSV, FormatJSONL, FormatJSON:
	default:
		return opts, fmt.Errorf("%w: %q (supported: csv, jsonl)", ErrFormat, opts.Format)
	}

	return opts, nil
}
