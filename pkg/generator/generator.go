// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package generator

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	apperrors "github.com/NVIDIA/release-matrix/pkg/errors"
	"github.com/NVIDIA/release-matrix/pkg/matrix"
	"github.com/NVIDIA/release-matrix/pkg/serializer"
	"github.com/NVIDIA/release-matrix/pkg/version"

	"golang.org/x/sync/errgroup"
)

// Options configures a generation run.
type Options struct {
	// InputPath is the version list file. Plain text (one version per
	// line, # comments) unless the extension indicates JSON or YAML.
	InputPath string

	// OutputDir is the directory configuration files are written into.
	// Created if it does not exist.
	OutputDir string

	// TemplatePath is an optional text/template file expanded once per
	// slice instead of the default JSON emission.
	TemplatePath string

	// Version is the generator version recorded in emitted payloads.
	Version string
}

// sliceEntry is the per-version element of an emitted slice file.
type sliceEntry struct {
	Version string `json:"version"`
}

// upgradeSuite is the shape of an emitted per-target upgrade file.
type upgradeSuite struct {
	Target string       `json:"target"`
	From   []sliceEntry `json:"from"`
}

// Generate reads the version list, derives slices and upgrade pairings, and
// writes configuration files into opts.OutputDir. Any malformed input
// version fails the whole run.
func Generate(ctx context.Context, opts Options) error {
	if opts.InputPath == "" {
		return apperrors.New(apperrors.ErrCodeInvalidRequest, "input path is required")
	}
	if opts.OutputDir == "" {
		return apperrors.New(apperrors.ErrCodeInvalidRequest, "output directory is required")
	}

	start := time.Now()
	defer func() {
		generateDuration.Observe(time.Since(start).Seconds())
	}()

	raws, err := ReadVersionList(opts.InputPath)
	if err != nil {
		return fmt.Errorf("failed to read version list from %s: %w", opts.InputPath, err)
	}
	if len(raws) == 0 {
		return fmt.Errorf("no versions found in %s", opts.InputPath)
	}

	vs, err := parseAll(ctx, raws)
	if err != nil {
		return err
	}

	b := matrix.NewBuilder(matrix.WithVersion(opts.Version))
	slices := b.BuildSlices(vs)
	pairs := b.BuildUpgradePairs(vs)

	if err := os.MkdirAll(opts.OutputDir, 0o750); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", opts.OutputDir, err)
	}

	if opts.TemplatePath != "" {
		if err := renderTemplated(opts, slices); err != nil {
			return err
		}
	} else {
		if err := writeSliceFiles(opts.OutputDir, slices); err != nil {
			return err
		}
	}

	if err := writePairFiles(opts.OutputDir, pairs); err != nil {
		return err
	}

	slog.Info("generation complete",
		"input", opts.InputPath,
		"output", opts.OutputDir,
		"versions", len(vs),
		"duration", time.Since(start).String(),
	)

	return nil
}

// parseAll parses the raw strings in parallel, then restores a deterministic
// ascending order before any filtering happens downstream.
func parseAll(ctx context.Context, raws []string) ([]version.Version, error) {
	vs := make([]version.Version, len(raws))

	g, _ := errgroup.WithContext(ctx)
	for i, raw := range raws {
		g.Go(func() error {
			v, err := version.Parse(raw)
			if err != nil {
				return err
			}
			vs[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeMalformedVersion, "failed to parse version list", err)
	}

	version.Sort(vs)
	return vs, nil
}

// ReadVersionList loads raw version strings from the given file. JSON and
// YAML files deserialize as a string list; anything else is treated as plain
// text with one version per line and # comment lines.
func ReadVersionList(path string) ([]string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		raws, err := serializer.FromFile[[]string](path)
		if err != nil {
			return nil, err
		}
		return *raws, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var raws []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		raws = append(raws, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return raws, nil
}

// writeSliceFiles emits one JSON file per slice as a list of
// {"version": raw} objects.
func writeSliceFiles(dir string, s *matrix.SliceSet) error {
	for _, ns := range s.Named() {
		entries := make([]sliceEntry, 0, len(ns.Versions))
		for _, v := range ns.Versions {
			entries = append(entries, sliceEntry{Version: v.Raw})
		}

		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal slice %s: %w", ns.Name, err)
		}

		path := filepath.Join(dir, ns.Name+".json")
		if err := serializer.WriteToFile(path, append(data, '\n')); err != nil {
			return fmt.Errorf("failed to write slice file %s: %w", path, err)
		}
		generatedFiles.Inc()

		slog.Debug("wrote slice file", "path", path, "versions", len(entries))
	}

	return nil
}

// writePairFiles emits one JSON file per upgrade target under
// <dir>/upgrades/ with the predecessor list.
func writePairFiles(dir string, p *matrix.PairSet) error {
	upgradeDir := filepath.Join(dir, "upgrades")
	if err := os.MkdirAll(upgradeDir, 0o750); err != nil {
		return fmt.Errorf("failed to create upgrade directory %s: %w", upgradeDir, err)
	}

	for _, pair := range p.Pairings {
		suite := upgradeSuite{
			Target: pair.Target.Raw,
			From:   make([]sliceEntry, 0, len(pair.From)),
		}
		for _, v := range pair.From {
			suite.From = append(suite.From, sliceEntry{Version: v.Raw})
		}

		data, err := json.MarshalIndent(suite, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal upgrade suite %s: %w", pair.Target.Raw, err)
		}

		path := filepath.Join(upgradeDir, fileSafe(pair.Target.Raw)+".json")
		if err := serializer.WriteToFile(path, append(data, '\n')); err != nil {
			return fmt.Errorf("failed to write upgrade file %s: %w", path, err)
		}
		generatedFiles.Inc()

		slog.Debug("wrote upgrade file", "path", path, "from", len(suite.From))
	}

	return nil
}

// fileSafe replaces path-hostile characters in a raw version string so it
// can serve as a file name.
func fileSafe(raw string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '_'
		}
		return r
	}, raw)
}
