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

// Package train groups and filters parsed versions by release train.
//
// A train is the set of releases sharing a major.minor number and, for
// suffixed variants, the same suffix. All functions are pure: they never
// mutate their input and always return fresh slices.
package train

import (
	"github.com/NVIDIA/release-matrix/pkg/version"
)

// VariantNightly is the train variant shared by all nightlies within a
// major.minor, regardless of their individual build stamps.
const VariantNightly = "nightly"

// Key identifies a release train. Variant is VariantNightly for nightlies
// and the literal suffix otherwise (empty for normal versions), so special
// versions with distinct suffixes form distinct trains even though they
// compare equal by numeric components.
type Key struct {
	Major   int    `json:"major" yaml:"major"`
	Minor   int    `json:"minor" yaml:"minor"`
	Variant string `json:"variant,omitempty" yaml:"variant,omitempty"`
}

// KeyOf returns the train key for a version.
func KeyOf(v version.Version) Key {
	k := Key{Major: v.Major(), Minor: v.Minor()}
	if v.Kind == version.KindNightly {
		k.Variant = VariantNightly
	} else {
		k.Variant = v.Suffix
	}
	return k
}

// Major keeps versions whose major component equals major, preserving order.
func Major(major int, vs []version.Version) []version.Version {
	out := make([]version.Version, 0, len(vs))
	for _, v := range vs {
		if v.Major() == major {
			out = append(out, v)
		}
	}
	return out
}

// MajorMinor keeps versions whose first two components equal major and minor,
// preserving order.
func MajorMinor(major, minor int, vs []version.Version) []version.Version {
	out := make([]version.Version, 0, len(vs))
	for _, v := range vs {
		if v.Major() == major && v.Minor() == minor {
			out = append(out, v)
		}
	}
	return out
}

// Lower returns versions strictly below pivot, ascending. The input is
// re-sorted (stable) before filtering so callers need not guarantee order.
func Lower(pivot version.Version, vs []version.Version) []version.Version {
	sorted := version.Sorted(vs)
	out := make([]version.Version, 0, len(sorted))
	for _, v := range sorted {
		if version.Compare(v, pivot) < 0 {
			out = append(out, v)
		}
	}
	return out
}

// Higher returns versions strictly above pivot, ascending.
func Higher(pivot version.Version, vs []version.Version) []version.Version {
	sorted := version.Sorted(vs)
	out := make([]version.Version, 0, len(sorted))
	for _, v := range sorted {
		if version.Compare(v, pivot) > 0 {
			out = append(out, v)
		}
	}
	return out
}

// TipOfTrain reduces versions to one representative per train: the maximum
// by version.Compare, with ties resolving to the version seen last in input
// order. The result is sorted ascending, but the published contract promises
// no particular order; callers wanting one must sort.
func TipOfTrain(vs []version.Version) []version.Version {
	tips := make(map[Key]version.Version, len(vs))
	order := make([]Key, 0, len(vs))

	for _, v := range vs {
		k := KeyOf(v)
		cur, ok := tips[k]
		if !ok {
			tips[k] = v
			order = append(order, k)
			continue
		}
		tips[k] = version.Max(cur, v)
	}

	// Collect in first-seen train order before sorting so that versions
	// comparing equal across trains come out deterministically.
	out := make([]version.Version, 0, len(order))
	for _, k := range order {
		out = append(out, tips[k])
	}
	version.Sort(out)
	return out
}
