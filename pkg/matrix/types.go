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
	"time"

	"github.com/NVIDIA/release-matrix/pkg/version"
)

// PayloadVersion identifies the shape of the structures below for consumers
// of the serialized form.
const PayloadVersion = "v1"

// Slice names used in SliceSet.Named and by file-naming presentation layers.
const (
	SliceAll  = "all"
	SliceAll4 = "all-4"
	SliceAll5 = "all-5"
	SliceTot  = "tot"
	SliceTot4 = "tot-4"
	SliceTot5 = "tot-5"
)

// SliceSet is the flat projection of a version list: the full sorted list,
// its per-major slices, and the tip-of-train reduction of each.
type SliceSet struct {
	All  []version.Version `json:"all" yaml:"all"`
	All4 []version.Version `json:"all4" yaml:"all4"`
	All5 []version.Version `json:"all5" yaml:"all5"`
	Tot  []version.Version `json:"tot" yaml:"tot"`
	Tot4 []version.Version `json:"tot4" yaml:"tot4"`
	Tot5 []version.Version `json:"tot5" yaml:"tot5"`

	PayloadVersion string    `json:"payloadVersion" yaml:"payloadVersion"`
	BuilderVersion string    `json:"builderVersion,omitempty" yaml:"builderVersion,omitempty"`
	GeneratedAt    time.Time `json:"generatedAt" yaml:"generatedAt"`
}

// NamedSlice pairs a slice name with its versions, for presentation layers
// that emit one artifact per slice.
type NamedSlice struct {
	Name     string            `json:"name" yaml:"name"`
	Versions []version.Version `json:"versions" yaml:"versions"`
}

// Named returns the six slices in a fixed, stable order.
func (s *SliceSet) Named() []NamedSlice {
	return []NamedSlice{
		{Name: SliceAll, Versions: s.All},
		{Name: SliceAll4, Versions: s.All4},
		{Name: SliceAll5, Versions: s.All5},
		{Name: SliceTot, Versions: s.Tot},
		{Name: SliceTot4, Versions: s.Tot4},
		{Name: SliceTot5, Versions: s.Tot5},
	}
}

// Pairing is one upgrade-test target with the ordered set of prior versions
// it must be validated as upgrading from.
type Pairing struct {
	Target version.Version   `json:"target" yaml:"target"`
	From   []version.Version `json:"from" yaml:"from"`
}

// PairSet maps every input version to its upgrade predecessors, in input
// order of the targets.
type PairSet struct {
	Pairings []Pairing `json:"pairings" yaml:"pairings"`

	PayloadVersion string    `json:"payloadVersion" yaml:"payloadVersion"`
	BuilderVersion string    `json:"builderVersion,omitempty" yaml:"builderVersion,omitempty"`
	GeneratedAt    time.Time `json:"generatedAt" yaml:"generatedAt"`
}

// ByTarget returns the predecessor set for the given raw version string and
// whether that target exists in the set.
func (p *PairSet) ByTarget(rawVersion string) ([]version.Version, bool) {
	for _, pair := range p.Pairings {
		if pair.Target.Raw == rawVersion {
			return pair.From, true
		}
	}
	return nil, false
}

// RawStrings flattens versions to their raw string form, the shape consumed
// by configuration renderers.
func RawStrings(vs []version.Version) []string {
	out := make([]string, 0, len(vs))
	for _, v := range vs {
		out = append(out, v.Raw)
	}
	return out
}
