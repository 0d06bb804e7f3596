/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/release-matrix/pkg/generator"
	"github.com/NVIDIA/release-matrix/pkg/logging"
	"github.com/NVIDIA/release-matrix/pkg/serializer"
	"github.com/NVIDIA/release-matrix/pkg/version"
)

const (
	name           = "relmat"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	appVersion = versionDefault
	commit     = "unknown"
	date       = "unknown"
)

// Shared flags across commands.
var (
	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Output file path (default: stdout)",
	}

	formatFlag = &cli.StringFlag{
		Name:  "format",
		Value: string(serializer.FormatJSON),
		Usage: fmt.Sprintf("Output format (supported values: %v)", serializer.SupportedFormats()),
	}

	inputFlag = &cli.StringFlag{
		Name:    "input",
		Aliases: []string{"i"},
		Usage:   "Version list file (plain text, JSON, or YAML)",
	}

	versionsFlag = &cli.StringSliceFlag{
		Name:  "versions",
		Usage: "Version strings (repeatable, comma-separated accepted)",
	}

	logLevelFlag = &cli.StringFlag{
		Name:    "log-level",
		Value:   "info",
		Sources: cli.EnvVars("LOG_LEVEL"),
		Usage:   "Log level (debug, info, warn, error)",
	}
)

func rootCmd() *cli.Command {
	return &cli.Command{
		Name:    name,
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", appVersion, commit, date),
		Usage:   "Derive version slices and upgrade pairings for release testing",
		Description: `relmat classifies product version strings, derives filtered subsets
(full lists, per-major slices, tip-of-train reductions, upgrade pairings),
and renders them into CI configuration files.`,
		Flags: []cli.Flag{
			logLevelFlag,
		},
		Commands: []*cli.Command{
			slicesCmd(),
			pairsCmd(),
			generateCmd(),
		},
	}
}

// Execute runs the CLI. It is called by main.main() and handles SIGINT and
// SIGTERM for graceful shutdown.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// initLogger configures slog once flags are parsed so --log-level takes
// effect before any command logic runs.
func initLogger(cmd *cli.Command) {
	logging.SetDefaultStructuredLoggerWithLevel(name, appVersion, cmd.String("log-level"))
}

// gatherVersions parses the version inputs of a command: explicit --versions
// values first, otherwise the --input file. The result is sorted ascending.
func gatherVersions(cmd *cli.Command) ([]version.Version, error) {
	raws := splitRaws(cmd.StringSlice("versions"))

	if len(raws) == 0 {
		input := cmd.String("input")
		if input == "" {
			return nil, fmt.Errorf("no versions provided: use --versions or --input")
		}
		fileRaws, err := generator.ReadVersionList(input)
		if err != nil {
			return nil, err
		}
		raws = fileRaws
	}

	if len(raws) == 0 {
		return nil, fmt.Errorf("no versions provided")
	}

	vs, err := version.ParseAll(raws)
	if err != nil {
		return nil, err
	}
	version.Sort(vs)

	return vs, nil
}

// splitRaws expands comma-separated values inside repeated flag entries.
func splitRaws(values []string) []string {
	var raws []string
	for _, value := range values {
		for _, raw := range strings.Split(value, ",") {
			if raw = strings.TrimSpace(raw); raw != "" {
				raws = append(raws, raw)
			}
		}
	}
	return raws
}

// newOutputWriter builds the serializer for a command's --format and
// --output flags.
func newOutputWriter(cmd *cli.Command) (*serializer.Writer, error) {
	outFormat := serializer.Format(cmd.String("format"))
	if outFormat.IsUnknown() {
		return nil, fmt.Errorf("unknown output format: %q", cmd.String("format"))
	}
	return serializer.NewFileWriterOrStdout(outFormat, cmd.String("output")), nil
}
