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

// Package matrix derives release-qualification sets from a parsed version
// list: the flat slices (all versions, per-major, tip-of-train) and the
// upgrade-test pairings.
package matrix

import (
	"log/slog"
	"time"

	"github.com/NVIDIA/release-matrix/pkg/train"
	"github.com/NVIDIA/release-matrix/pkg/version"
)

// Legacy major versions upgrade pairing bridges across: every 5.x target is
// also paired with the highest 4.x release.
const (
	legacyMajor  = 4
	currentMajor = 5
)

// Builder derives slice sets and upgrade pairings from version lists.
type Builder struct {
	version string
}

// Option configures a Builder.
type Option func(*Builder)

// WithVersion stamps built sets with the tool version that produced them.
func WithVersion(v string) Option {
	return func(b *Builder) {
		b.version = v
	}
}

// NewBuilder creates a Builder.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// BuildSlices produces the six named slices from the given versions. The
// input need not be sorted; it is stable-sorted before slicing.
func (b *Builder) BuildSlices(vs []version.Version) *SliceSet {
	start := time.Now()
	sorted := version.Sorted(vs)

	s := &SliceSet{
		All:            sorted,
		All4:           train.Major(legacyMajor, sorted),
		All5:           train.Major(currentMajor, sorted),
		Tot:            train.TipOfTrain(sorted),
		Tot4:           train.TipOfTrain(train.Major(legacyMajor, sorted)),
		Tot5:           train.TipOfTrain(train.Major(currentMajor, sorted)),
		PayloadVersion: PayloadVersion,
		BuilderVersion: b.version,
		GeneratedAt:    time.Now().UTC(),
	}

	sliceBuildDuration.Observe(time.Since(start).Seconds())
	slog.Debug("built slice set",
		"versions", len(sorted),
		"trains", len(s.Tot),
	)
	return s
}

// BuildUpgradePairs computes, for every version in input order, the set of
// prior versions it should be qualified as an upgrade target from:
//
//   - the highest legacy-major release, for current-major targets
//   - the immediately preceding maintenance release in its own train
//   - the tip of every earlier train within the same major
//
// The target itself is removed from its own set, the set is deduplicated by
// structural equality, and sorted ascending. An empty set is valid.
func (b *Builder) BuildUpgradePairs(vs []version.Version) *PairSet {
	start := time.Now()
	sorted := version.Sorted(vs)

	p := &PairSet{
		Pairings:       make([]Pairing, 0, len(vs)),
		PayloadVersion: PayloadVersion,
		BuilderVersion: b.version,
		GeneratedAt:    time.Now().UTC(),
	}

	for _, v := range vs {
		p.Pairings = append(p.Pairings, Pairing{
			Target: v,
			From:   upgradeSources(v, sorted),
		})
	}

	pairBuildDuration.Observe(time.Since(start).Seconds())
	slog.Debug("built upgrade pairings", "targets", len(p.Pairings))
	return p
}

// upgradeSources computes the predecessor set for a single target against
// the full sorted version list.
func upgradeSources(v version.Version, sorted []version.Version) []version.Version {
	olds := make([]version.Version, 0, 8)

	// Major-version migration: current-major targets upgrade from the
	// highest legacy-major release.
	if v.Major() == currentMajor {
		if all4 := train.Major(legacyMajor, sorted); len(all4) > 0 {
			olds = append(olds, all4[len(all4)-1])
		}
	}

	// Rollback safety: the immediately preceding maintenance release in the
	// target's own train.
	siblings := train.MajorMinor(v.Major(), v.Minor(), sorted)
	if prev := train.Lower(v, siblings); len(prev) > 0 {
		olds = append(olds, prev[len(prev)-1])
	}

	// Cross-train migration: the tip of every earlier train in the same
	// major. Lower is strict, so v cannot reach this set by construction;
	// the explicit removal below is an invariant guard, not dead code.
	sameMajor := train.Major(v.Major(), sorted)
	olds = append(olds, train.TipOfTrain(train.Lower(v, sameMajor))...)

	// Drop the target itself, dedupe by raw string, sort ascending.
	seen := make(map[string]struct{}, len(olds))
	deduped := make([]version.Version, 0, len(olds))
	for _, o := range olds {
		if version.Equal(o, v) {
			continue
		}
		if _, ok := seen[o.Raw]; ok {
			continue
		}
		seen[o.Raw] = struct{}{}
		deduped = append(deduped, o)
	}
	version.Sort(deduped)
	return deduped
}
