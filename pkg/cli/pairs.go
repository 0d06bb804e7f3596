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

func pairsCmd() *cli.Command {
	return &cli.Command{
		Name:                  "pairs",
		EnableShellCompletion: true,
		Usage:                 "Derive upgrade pairings from a version list",
		Description: `Derive the upgrade pairing set: for every input version, the ordered
list of prior versions it must be validated as upgrading from. Includes
cross-major jumps, immediate maintenance predecessors, and the tips of
all lower trains in the same major.

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
			pairs := b.BuildUpgradePairs(vs)

			ser, err := newOutputWriter(cmd)
			if err != nil {
				return err
			}
			defer func() {
				if err := ser.Close(); err != nil {
					slog.Warn("failed to close serializer", "error", err)
				}
			}()

			return ser.Serialize(ctx, pairs)
		},
	}
}
