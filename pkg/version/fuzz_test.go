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

import "testing"

func FuzzParse(f *testing.F) {
	f.Add("5.3")
	f.Add("5.3.2")
	f.Add("5.3.2_ps")
	f.Add("5.3.2_200407.032413.72dd81aef74b")
	f.Add("4.7.2.1")
	f.Add("")
	f.Add(".")
	f.Add("..")
	f.Add("5.")
	f.Add(".5")
	f.Add("5..3")
	f.Add("-5.3")
	f.Add("5.-3")
	f.Add("abc")
	f.Add("5.x.1")
	f.Add("   5.3")
	f.Add("5.3   ")
	f.Add("5.3.2_200407.032413.72dd81aef74")
	f.Add("5.3.2_200407.032413.72dd81aef74bb")

	f.Fuzz(func(t *testing.T, input string) {
		// Parse should never panic
		v, err := Parse(input)
		if err != nil {
			return
		}

		// The raw string is preserved exactly
		if v.Raw != input {
			t.Errorf("Parse(%q).Raw = %q", input, v.Raw)
		}

		// Prefix component count is 2 or 3; nightlies add exactly 2 more
		n := len(v.Components)
		switch v.Kind {
		case KindNightly:
			if n != 4 && n != 5 {
				t.Errorf("Parse(%q) nightly has %d components", input, n)
			}
		case KindNormal, KindSpecial:
			if n != 2 && n != 3 {
				t.Errorf("Parse(%q) has %d components", input, n)
			}
		default:
			t.Errorf("Parse(%q) unknown kind %q", input, v.Kind)
		}

		// Kind and suffix agree
		if (v.Kind == KindNormal) != (v.Suffix == "") {
			t.Errorf("Parse(%q) kind %q inconsistent with suffix %q", input, v.Kind, v.Suffix)
		}

		// Components are non-negative
		for _, c := range v.Components {
			if c < 0 {
				t.Errorf("Parse(%q) negative component %d", input, c)
			}
		}

		// Re-parsing is deterministic and self-equal
		v2, err2 := Parse(input)
		if err2 != nil {
			t.Errorf("re-parsing %q failed: %v", input, err2)
		} else if !Equal(v, v2) || Compare(v, v2) != 0 {
			t.Errorf("re-parsing %q not equal: %+v vs %+v", input, v, v2)
		}
	})
}
