// Package cli implements the feel command line: flag and environment
// handling with cobra and viper, the load/filter/sample/report/write
// pipeline, and the error taxonomy that maps failures to exit codes.
//
// Every flag can also be set from the environment with the FEEL_ prefix,
// e.g. FEEL_VERBOSE=true or FEEL_LOG_LEVEL=debug. Command line flags take
// precedence.
package cli
