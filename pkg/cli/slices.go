/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/release-matrix/pkg/matrix"
)

func slicesCmd() *cli.Command {
	return &cli.Command{
		Name:                  "slices",
		EnableShellCompletion: true,
		Usage:                 "Derive version slices from a version list",
		Description: `Derive the standard version slices from a list of version strings:
  - all, all-4, all-5: sorted full and per-major lists
  - tot, tot-4, tot-5: tip-of-train reductions

Versions are supplied with repeated --versions flags or read from an
--input file. The result can be output in JSON, YAML, or table format.`,
		Flags: []cli.Flag{
			versionsFlag,
			inputFlag,
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			initLogger(cmd)

			vs, err := gatherVersions(cmd)
			if err != nil {
				return fmt.Errorf("error gathering versions: %w", err)
			}

			b := matrix.NewBuilder(matrix.WithVersion(appVersion))
			slices := b.BuildSlices(vs)

			ser, err := newOutputWriter(cmd)
			if err != nil {
				return err
			}
			defer func() {
				if err := ser.Close(); err != nil {
					slog.Warn("failed to close serializer", "error", err)
				}
			}()

			return ser.Serialize(ctx, slices)
		},
	}
}
