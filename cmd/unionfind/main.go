// Command unionfind reads an edge list, applies it to a weighted quick-union
// partition and reports the number of connected components.
//
//	unionfind [-log-level debug] mediumUF.txt
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/quickunion/edgelist"
	"github.com/katalvlaran/quickunion/internal/cli"
	"github.com/katalvlaran/quickunion/unionfind"
)

func main() {
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run parses args, processes the input file and writes the report to outW.
// Logs go to logW.
func run(outW, logW io.Writer, args []string) error {
	cfg, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	level, _ := cfg.Level() // validated by Parse
	logger := zerolog.New(zerolog.ConsoleWriter{Out: logW, TimeFormat: time.RFC3339}).
		Level(level).
		With().Timestamp().Logger()

	// 1. Load the edge list.
	list, err := edgelist.ReadFile(cfg.InputPath)
	if err != nil {
		logger.Error().Err(err).Str("input", cfg.InputPath).Msg("Failed to read edge list")
		if errors.Is(err, edgelist.ErrOpen) {
			return &cli.ExitError{Code: 1, Message: fmt.Sprintf("ERROR: failed to open %q for reading.", cfg.InputPath)}
		}
		return &cli.ExitError{Code: 1, Message: err.Error()}
	}
	logger.Debug().
		Str("input", cfg.InputPath).
		Int("vertices", list.NumVertices).
		Int("edges", len(list.Edges)).
		Msg("Edge list loaded")

	// 2. Build the partition.
	p, err := unionfind.New(list.NumVertices)
	if err != nil {
		logger.Error().Err(err).Int("vertices", list.NumVertices).Msg("Partition rejected")
		return &cli.ExitError{Code: 1, Message: err.Error()}
	}

	// 3. Time only the component count.
	begin := time.Now()
	components, err := p.CountConnectedComponents(list.Edges)
	elapsed := time.Since(begin)
	if err != nil {
		logger.Error().Err(err).Msg("Edge list rejected")
		return &cli.ExitError{Code: 1, Message: err.Error()}
	}
	logger.Info().
		Int("components", components).
		Dur("elapsed", elapsed).
		Msg("Components counted")

	// 4. Report.
	fmt.Fprintf(outW, "%d vertices in the disjoint-set data structure.\n", list.NumVertices)
	fmt.Fprintf(outW, "%d edges in the disjoint-set data structure.\n", len(list.Edges))
	fmt.Fprintf(outW, "%d connected components.\n", components)
	fmt.Fprintf(outW, "count_connected_components, elapsed time (ns) = %d\n", elapsed.Nanoseconds())

	return nil
}
