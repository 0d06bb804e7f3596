/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/release-matrix/pkg/defaults"
	"github.com/NVIDIA/release-matrix/pkg/generator"
)

func generateCmd() *cli.Command {
	return &cli.Command{
		Name:                  "generate",
		EnableShellCompletion: true,
		Usage:                 "Render version slices and upgrade suites into CI config files",
		Description: `Read a version list, derive all slices and upgrade pairings, and write
one configuration file per slice plus one upgrade-suite file per version
into the output directory.

By default slice files are JSON lists of {"version": "<raw>"} objects.
A text/template file can be supplied with --template to produce custom
CI syntaxes; the template is expanded once per slice.`,
		Flags: []cli.Flag{
			inputFlag,
			&cli.StringFlag{
				Name:    "out-dir",
				Aliases: []string{"d"},
				Value:   ".",
				Usage:   "Directory to write configuration files into",
			},
			&cli.StringFlag{
				Name:  "template",
				Usage: "Optional text/template file expanded once per slice",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			initLogger(cmd)

			input := cmd.String("input")
			if input == "" {
				return fmt.Errorf("no version list provided: use --input")
			}

			genCtx, cancel := context.WithTimeout(ctx, defaults.GenerateTimeout)
			defer cancel()

			return generator.Generate(genCtx, generator.Options{
				InputPath:    input,
				OutputDir:    cmd.String("out-dir"),
				TemplatePath: cmd.String("template"),
				Version:      appVersion,
			})
		},
	}
}
