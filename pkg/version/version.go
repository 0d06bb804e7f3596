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

package version

import (
	"cmp"
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strconv"
)

// ErrMalformedVersion is the sentinel for all parse failures. Use errors.Is
// to detect it regardless of the wrapping error.
var ErrMalformedVersion = errors.New("malformed version")

// Kind classifies a parsed version by its suffix.
type Kind string

const (
	// KindNormal is a plain numeric version with no suffix (e.g. "5.3.2").
	KindNormal Kind = "normal"
	// KindNightly is a build identified by an embedded date/time/hash stamp
	// (e.g. "5.3.2_200407.032413.72dd81aef74b").
	KindNightly Kind = "nightly"
	// KindSpecial is a version with any other non-empty suffix
	// (e.g. "5.3.2_ps").
	KindSpecial Kind = "special"
)

var (
	// Leading numeric prefix: major.minor with an optional maintenance
	// component. Everything after the prefix is the suffix.
	prefixPattern = regexp.MustCompile(`^(\d+)\.(\d+)(?:\.(\d+))?`)

	// Nightly build stamp: 6-digit date, 6-digit time, 12-char lowercase
	// hash. Nothing else is allowed after it.
	nightlyPattern = regexp.MustCompile(`^_(\d{6})\.(\d{6})\.([0-9a-z]{12})$`)
)

// Version is an immutable, parsed release identifier. It preserves the
// original string verbatim in Raw and carries the numeric components used for
// ordering. For nightlies, the date and time/build stamps are appended to
// Components so that comparison is nightly-aware.
type Version struct {
	Raw        string `json:"raw" yaml:"raw"`
	Components []int  `json:"components" yaml:"components"`
	Suffix     string `json:"suffix,omitempty" yaml:"suffix,omitempty"`
	Kind       Kind   `json:"kind" yaml:"kind"`
}

// MalformedVersionError reports a version string whose leading numeric prefix
// does not match the required grammar. It wraps ErrMalformedVersion.
type MalformedVersionError struct {
	Raw string
}

func (e *MalformedVersionError) Error() string {
	return fmt.Sprintf("malformed version %q: leading numeric prefix must match major.minor[.maintenance]", e.Raw)
}

func (e *MalformedVersionError) Unwrap() error {
	return ErrMalformedVersion
}

// Parse parses a raw version string into a Version.
//
// The string must begin with a numeric prefix of the form N.N or N.N.N. The
// remainder, if any, becomes the suffix: a strict build-stamp suffix
// classifies the version as a nightly (and extends its numeric components
// with the date and time/build integers), any other non-empty suffix
// classifies it as special.
func Parse(raw string) (Version, error) {
	m := prefixPattern.FindStringSubmatch(raw)
	if m == nil {
		return Version{}, &MalformedVersionError{Raw: raw}
	}

	components := make([]int, 0, 5)
	for _, part := range m[1:] {
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			// Unreachable given the pattern, but never coerce silently.
			return Version{}, &MalformedVersionError{Raw: raw}
		}
		components = append(components, n)
	}

	v := Version{
		Raw:        raw,
		Components: components,
		Suffix:     raw[len(m[0]):],
		Kind:       KindNormal,
	}

	if v.Suffix == "" {
		return v, nil
	}

	if nm := nightlyPattern.FindStringSubmatch(v.Suffix); nm != nil {
		date, _ := strconv.Atoi(nm[1])
		stamp, _ := strconv.Atoi(nm[2])
		v.Components = append(v.Components, date, stamp)
		v.Kind = KindNightly
		return v, nil
	}

	v.Kind = KindSpecial
	return v, nil
}

// MustParse parses a version string and panics on failure. Reserve it for
// hardcoded strings and test fixtures; runtime input goes through Parse.
func MustParse(raw string) Version {
	v, err := Parse(raw)
	if err != nil {
		panic(fmt.Sprintf("MustParse: %v", err))
	}
	return v
}

// ParseAll parses every string in raws, preserving input order. The first
// malformed string aborts the whole batch: derived sets may reference any
// version, so there is no meaningful partial result.
func ParseAll(raws []string) ([]Version, error) {
	vs := make([]Version, 0, len(raws))
	for _, raw := range raws {
		v, err := Parse(raw)
		if err != nil {
			return nil, err
		}
		vs = append(vs, v)
	}
	return vs, nil
}

// Major returns the first numeric component.
func (v Version) Major() int {
	return v.Components[0]
}

// Minor returns the second numeric component.
func (v Version) Minor() int {
	return v.Components[1]
}

// Maintenance returns the third numeric component, if present.
func (v Version) Maintenance() (int, bool) {
	if v.Kind == KindNightly {
		// Nightly components carry the date/stamp after the prefix; only a
		// 5-element list had a maintenance component.
		if len(v.Components) == 5 {
			return v.Components[2], true
		}
		return 0, false
	}
	if len(v.Components) >= 3 {
		return v.Components[2], true
	}
	return 0, false
}

// String returns the original version string unchanged.
func (v Version) String() string {
	return v.Raw
}

// Compare orders two versions lexicographically over their numeric
// components. A strict component prefix sorts lower. Suffixes are never
// consulted: two special versions sharing a numeric prefix compare equal, and
// grouping code must key on the suffix where trains need to be told apart.
func Compare(a, b Version) int {
	n := min(len(a.Components), len(b.Components))
	for i := range n {
		if c := cmp.Compare(a.Components[i], b.Components[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a.Components), len(b.Components))
}

// Equal reports full structural equality. Since Components, Suffix, and Kind
// are all derived from the raw string, this is equality of Raw.
func Equal(a, b Version) bool {
	return a.Raw == b.Raw
}

// Sort sorts versions ascending, in place. The sort is stable so that
// versions that compare equal (specials sharing a numeric prefix) keep their
// input relative order.
func Sort(vs []Version) {
	slices.SortStableFunc(vs, Compare)
}

// Sorted returns an ascending stable-sorted copy, leaving the input alone.
func Sorted(vs []Version) []Version {
	out := slices.Clone(vs)
	Sort(out)
	return out
}

// Max returns the higher of two versions; ties resolve to b so that a running
// maximum scanned in input order keeps the last of equal candidates.
func Max(a, b Version) Version {
	if Compare(a, b) > 0 {
		return a
	}
	return b
}
