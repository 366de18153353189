// Package logging configures the zerolog logger used by the feel command.
package logging

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Log formats accepted by Setup
const (
	FormatPretty = "pretty"
	FormatJSON   = "json"
)

// Setup builds a logger writing to w at the given level ("debug", "info",
// "warn", ...) in the given format ("pretty" or "json").
func Setup(w io.Writer, level, format string, noColor bool) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", level, err)
	}

	var out io.Writer
	switch strings.ToLower(format) {
	case FormatPretty:
		out = zerolog.ConsoleWriter{Out: w, NoColor: noColor, TimeFormat: time.RFC3339}
	case FormatJSON:
		out = w
	default:
		return zerolog.Nop(), fmt.Errorf("invalid log format %q: use %q or %q", format, FormatPretty, FormatJSON)
	}

	return zerolog.New(out).Level(lvl).With().Timestamp().Logger(), nil
}
