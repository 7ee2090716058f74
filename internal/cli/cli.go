package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// ExitError is an error that carries the process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Config is the validated command configuration.
type Config struct {
	// InputPath names the edge-list file.
	InputPath string

	// LogLevel is one of debug, info, warn, error.
	LogLevel string
}

// Validate checks Config fields.
func (c Config) Validate() error {
	if c.InputPath == "" {
		return errors.New("input path is required")
	}
	if _, err := c.Level(); err != nil {
		return err
	}

	return nil
}

// Level converts LogLevel into a zerolog level.
func (c Config) Level() (zerolog.Level, error) {
	switch c.LogLevel {
	case "debug":
		return zerolog.DebugLevel, nil
	case "info":
		return zerolog.InfoLevel, nil
	case "warn":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	default:
		return zerolog.NoLevel, fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", c.LogLevel)
	}
}

const usage = `unionfind - count connected components with weighted quick-union.

Usage:
  unionfind [options] INPUT

Arguments:
  INPUT
    Edge-list file: vertex count N, then "p q" pairs (e.g. mediumUF.txt).

Options:
`

// Parse processes command-line arguments. It returns the Config, a boolean
// telling the caller to exit cleanly (help was printed), or an *ExitError.
//
// A missing INPUT prints usage and fails with code 1; flag errors use code 2.
func Parse(args []string, output io.Writer) (*Config, bool, error) {
	flagSet := flag.NewFlagSet("unionfind", flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = func() {
		fmt.Fprint(output, usage)
		flagSet.PrintDefaults()
	}

	logLevelFlag := flagSet.String("log-level", "warn", "Logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	// A missing or empty INPUT is a usage failure (code 1), not a flag error.
	if flagSet.NArg() != 1 || flagSet.Arg(0) == "" {
		flagSet.Usage()
		return nil, false, &ExitError{Code: 1, Message: "exactly one INPUT argument is required"}
	}

	config := &Config{
		InputPath: flagSet.Arg(0),
		LogLevel:  strings.ToLower(*logLevelFlag),
	}
	if err := config.Validate(); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	return config, false, nil
}
