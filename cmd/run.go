// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"github.com/alecthomas/kong"
	"github.com/hashicorp/go-archtype"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// stdinPath is the path argument that reads the input from STDIN
const stdinPath = "-"

// CLI are the cli parameters for the archtype binary
type CLI struct {
	Paths         []string         `arg:"" name:"path" help:"Files to identify. (\"-\" for STDIN)"`
	ShowCommand   bool             `short:"c" name:"command" help:"Print the command that unpacks the archive."`
	Jobs          int              `short:"j" default:"4" help:"Number of files that are identified concurrently."`
	JSON          bool             `short:"J" name:"json" help:"Print one JSON object per file."`
	SignatureOnly bool             `short:"s" help:"Ignore file extensions and identify by signature only."`
	Telemetry     bool             `short:"T" help:"Log telemetry data after each identification."`
	Verbose       bool             `short:"v" help:"Verbose logging."`
	Version       kong.VersionFlag `short:"V" help:"Print release version information."`
}

// result is the outcome of one identification
type result struct {
	Path    string          `json:"path"`
	Format  archtype.Format `json:"format"`
	Command string          `json:"command,omitempty"`
	Err     error           `json:"-"`
	Error   string          `json:"error,omitempty"`
}

// Run the entrypoint into archtype as a cli tool
func Run(version, commit, date string) {
	var cli CLI
	kong.Parse(&cli,
		kong.Description("Identify archive formats by extension and signature"),
		kong.UsageOnError(),
		kong.Vars{
			"version": fmt.Sprintf("%s (%s), commit %s, built at %s", filepath.Base(os.Args[0]), version, commit, date),
		},
	)

	os.Exit(cli.run(context.Background(), os.Stdin, os.Stdout, os.Stderr))
}

// run identifies all paths and prints the results in input order. It returns
// the exit code: 0 if every path was identified, 1 otherwise.
func (cli *CLI) run(ctx context.Context, stdin io.Reader, stdout io.Writer, stderr io.Writer) int {

	// Check for verbose output
	logLevel := slog.LevelError
	if cli.Telemetry {
		logLevel = slog.LevelInfo
	}
	if cli.Verbose {
		logLevel = slog.LevelDebug
	}

	// setup logger
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))

	// setup telemetry hook
	telemetryToLog := func(ctx context.Context, td *archtype.TelemetryData) {
		if cli.Telemetry {
			logger.Info("identification finished", "telemetry", td)
		}
	}

	// process cli params
	config := archtype.NewConfig(
		archtype.WithLogger(logger),
		archtype.WithSignatureOnly(cli.SignatureOnly),
		archtype.WithTelemetryHook(telemetryToLog),
	)

	results := make([]result, len(cli.Paths))

	// stdin can be read only once, every "-" shares the same result
	var stdinResult result
	if slices.Contains(cli.Paths, stdinPath) {
		stdinResult = identify(ctx, config, stdin, stdinPath, cli.ShowCommand)
	}

	eg := &errgroup.Group{}
	if cli.Jobs > 0 {
		eg.SetLimit(cli.Jobs)
	}
	for i, path := range cli.Paths {
		if path == stdinPath {
			results[i] = stdinResult
			continue
		}
		i, path := i, path
		eg.Go(func() error {
			results[i] = identify(ctx, config, stdin, path, cli.ShowCommand)
			return nil
		})
	}
	_ = eg.Wait()

	var merr *multierror.Error
	enc := json.NewEncoder(stdout)
	for _, res := range results {
		if res.Err != nil {
			merr = multierror.Append(merr, res.Err)
		}

		if cli.JSON {
			if res.Err != nil {
				res.Error = res.Err.Error()
			}
			if err := enc.Encode(res); err != nil {
				logger.Error("cannot write result", "error", err)
				return 1
			}
			continue
		}

		fmt.Fprintln(stdout, formatResult(res))
	}

	if err := merr.ErrorOrNil(); err != nil {
		logger.Error("identification failed", "failed", len(merr.Errors), "total", len(results), "error", err)
		return 1
	}
	return 0
}

// identify determines the format of a single path and, if requested, the
// command to unpack it.
func identify(ctx context.Context, config *archtype.Config, stdin io.Reader, path string, withCommand bool) result {
	res := result{Path: path}

	var err error
	if path == stdinPath {
		res.Format, _, err = archtype.IdentifyReader(stdin)
	} else {
		res.Format, err = archtype.Identify(ctx, path, config)
	}
	if err != nil {
		res.Err = errors.Wrapf(err, "cannot identify %s", path)
		return res
	}

	if withCommand {
		res.Command = archtype.UnpackCommand(res.Format, path).String()
	}
	return res
}

// formatResult renders a result as a single line of text
func formatResult(res result) string {
	if res.Err != nil {
		return fmt.Sprintf("%s: error: %s", res.Path, errors.Cause(res.Err))
	}
	if res.Command != "" {
		return fmt.Sprintf("%s: %s (%s)", res.Path, res.Format, res.Command)
	}
	return fmt.Sprintf("%s: %s", res.Path, res.Format)
}
