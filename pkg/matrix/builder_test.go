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

package matrix

import (
	"slices"
	"testing"

	"github.com/NVIDIA/release-matrix/pkg/version"
)

func parse(t testing.TB, raws ...string) []version.Version {
	t.Helper()
	vs, err := version.ParseAll(raws)
	if err != nil {
		t.Fatal(err)
	}
	return vs
}

func TestBuildSlices(t *testing.T) {
	b := NewBuilder(WithVersion("test"))

	// Unsorted on purpose; the builder sorts.
	s := b.BuildSlices(parse(t, "5.2.1", "4.7", "4.7.2", "5.3", "4.7.1", "5.1.2"))

	if got, want := RawStrings(s.All), []string{"4.7", "4.7.1", "4.7.2", "5.1.2", "5.2.1", "5.3"}; !slices.Equal(got, want) {
		t.Errorf("All = %v, want %v", got, want)
	}
	if got, want := RawStrings(s.All4), []string{"4.7", "4.7.1", "4.7.2"}; !slices.Equal(got, want) {
		t.Errorf("All4 = %v, want %v", got, want)
	}
	if got, want := RawStrings(s.All5), []string{"5.1.2", "5.2.1", "5.3"}; !slices.Equal(got, want) {
		t.Errorf("All5 = %v, want %v", got, want)
	}
	if got, want := RawStrings(s.Tot), []string{"4.7.2", "5.1.2", "5.2.1", "5.3"}; !slices.Equal(got, want) {
		t.Errorf("Tot = %v, want %v", got, want)
	}
	if got, want := RawStrings(s.Tot4), []string{"4.7.2"}; !slices.Equal(got, want) {
		t.Errorf("Tot4 = %v, want %v", got, want)
	}
	if got, want := RawStrings(s.Tot5), []string{"5.1.2", "5.2.1", "5.3"}; !slices.Equal(got, want) {
		t.Errorf("Tot5 = %v, want %v", got, want)
	}

	if s.PayloadVersion != PayloadVersion {
		t.Errorf("PayloadVersion = %q", s.PayloadVersion)
	}
	if s.BuilderVersion != "test" {
		t.Errorf("BuilderVersion = %q", s.BuilderVersion)
	}
	if s.GeneratedAt.IsZero() {
		t.Error("GeneratedAt not set")
	}

	named := s.Named()
	wantNames := []string{SliceAll, SliceAll4, SliceAll5, SliceTot, SliceTot4, SliceTot5}
	if len(named) != len(wantNames) {
		t.Fatalf("Named returned %d slices", len(named))
	}
	for i, n := range named {
		if n.Name != wantNames[i] {
			t.Errorf("Named[%d] = %q, want %q", i, n.Name, wantNames[i])
		}
	}
}

func TestBuildUpgradePairs(t *testing.T) {
	b := NewBuilder()

	vs := parse(t, "4.7.5", "4.7.6", "5.1.2", "5.2.1", "5.3")
	p := b.BuildUpgradePairs(vs)

	tests := []struct {
		target string
		want   []string
	}{
		// No legacy predecessor and no siblings: empty set is valid.
		{target: "4.7.5", want: []string{}},
		// Prior maintenance sibling in its own train.
		{target: "4.7.6", want: []string{"4.7.5"}},
		// First 5.x: bridges from the highest 4.x only.
		{target: "5.1.2", want: []string{"4.7.6"}},
		// Highest 4.x plus the tip of the earlier 5.1 train.
		{target: "5.2.1", want: []string{"4.7.6", "5.1.2"}},
		// Highest 4.x, no siblings, tips of both earlier trains.
		{target: "5.3", want: []string{"4.7.6", "5.1.2", "5.2.1"}},
	}

	if len(p.Pairings) != len(vs) {
		t.Fatalf("got %d pairings, want %d", len(p.Pairings), len(vs))
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			from, ok := p.ByTarget(tt.target)
			if !ok {
				t.Fatalf("target %q missing from pair set", tt.target)
			}
			if got := RawStrings(from); !slices.Equal(got, tt.want) {
				t.Errorf("pairs for %q = %v, want %v", tt.target, got, tt.want)
			}
		})
	}
}

func TestBuildUpgradePairsTargetsInInputOrder(t *testing.T) {
	b := NewBuilder()
	p := b.BuildUpgradePairs(parse(t, "5.3", "4.7.5", "5.1.2"))

	got := make([]string, 0, len(p.Pairings))
	for _, pair := range p.Pairings {
		got = append(got, pair.Target.Raw)
	}
	want := []string{"5.3", "4.7.5", "5.1.2"}
	if !slices.Equal(got, want) {
		t.Errorf("target order = %v, want input order %v", got, want)
	}
}

func TestBuildUpgradePairsExcludesSelfAndDedupes(t *testing.T) {
	b := NewBuilder()

	// 5.2.1 is both the prior sibling tip path and a tip-of-train candidate
	// for 5.2.2: it must appear exactly once, and 5.2.2 never pairs with
	// itself.
	p := b.BuildUpgradePairs(parse(t, "5.2.1", "5.2.2"))

	from, ok := p.ByTarget("5.2.2")
	if !ok {
		t.Fatal("target 5.2.2 missing")
	}
	if got, want := RawStrings(from), []string{"5.2.1"}; !slices.Equal(got, want) {
		t.Errorf("pairs for 5.2.2 = %v, want %v", got, want)
	}
	for _, f := range from {
		if f.Raw == "5.2.2" {
			t.Error("target paired with itself")
		}
	}
}

func TestBuildUpgradePairsSpecialTrains(t *testing.T) {
	b := NewBuilder()

	// A special variant shares numeric components with its base release.
	// The base is not strictly lower, so it cannot be a sibling source, but
	// earlier trains still contribute their tips.
	p := b.BuildUpgradePairs(parse(t, "5.3.2", "5.4", "5.4_ps"))

	from, ok := p.ByTarget("5.4_ps")
	if !ok {
		t.Fatal("target 5.4_ps missing")
	}
	if got, want := RawStrings(from), []string{"5.3.2"}; !slices.Equal(got, want) {
		t.Errorf("pairs for 5.4_ps = %v, want %v", got, want)
	}
}

func TestBuildUpgradePairsSingleInput(t *testing.T) {
	b := NewBuilder()
	p := b.BuildUpgradePairs(parse(t, "5.3"))

	from, ok := p.ByTarget("5.3")
	if !ok {
		t.Fatal("target missing")
	}
	if len(from) != 0 {
		t.Errorf("single-element input should yield an empty predecessor set, got %v", RawStrings(from))
	}
}

func TestBuildUpgradePairsNightlyTarget(t *testing.T) {
	b := NewBuilder()

	p := b.BuildUpgradePairs(parse(t,
		"4.7.6", "5.2.1", "5.3.1", "5.3.2",
		"5.3.2_200407.032413.72dd81aef74b",
	))

	// The nightly outranks 5.3.2, so its sibling source is 5.3.2, and the
	// earlier 5.2 train tip contributes too.
	from, ok := p.ByTarget("5.3.2_200407.032413.72dd81aef74b")
	if !ok {
		t.Fatal("nightly target missing")
	}
	if got, want := RawStrings(from), []string{"4.7.6", "5.2.1", "5.3.2"}; !slices.Equal(got, want) {
		t.Errorf("pairs for nightly = %v, want %v", got, want)
	}
}

func TestBuildSlicesEmptyInput(t *testing.T) {
	b := NewBuilder()
	s := b.BuildSlices(nil)
	for _, n := range s.Named() {
		if len(n.Versions) != 0 {
			t.Errorf("slice %q not empty on empty input", n.Name)
		}
	}
}
