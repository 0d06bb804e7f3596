/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

// Package cli implements the relmat command line interface.
//
// Commands:
//   - slices:   derive version slices (all, per-major, tip-of-train)
//   - pairs:    derive upgrade pairings
//   - generate: render slices and upgrade suites into CI config files
//
// All commands accept versions either inline (--versions, repeatable and
// comma-separated) or from a file (--input: plain text, JSON, or YAML list),
// and serialize results as JSON, YAML, or a flattened table.
package cli
