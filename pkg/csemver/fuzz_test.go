// Copyright (c) 2026, The CSemVer Go Authors.  All rights reserved.
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

package csemver

import (
	"fmt"
	"strings"
	"testing"
)

// FuzzNew performs fuzz testing on version construction to find edge cases
func FuzzNew(f *testing.F) {
	// Seed corpus with valid and edge case inputs
	f.Add(0, 0, 0, "", 0, 0, "", "", "")
	f.Add(1, 2, 3, "rc", 1, 0, "sha-1a2b3c", "bld", "42")
	f.Add(MaxMajor, MaxMinor, MaxPatch, "rc", 99, 99, "", "", "")
	f.Add(-1, 0, 0, "", 0, 0, "", "", "")
	f.Add(0, 0, 0, "nightly", 0, 0, "", "", "")
	f.Add(0, 0, 0, "RC", 100, -1, "", "", "")
	f.Add(0, 0, 0, "", 0, 0, "", "name-only", "")
	f.Add(0, 0, 0, "", 0, 0, "", "", "index-only")
	f.Add(0, 0, 0, "", 0, 0, strings.Repeat("x", 21), "", "")
	f.Add(99999, 49999, 9999, "prerelease", 50, 50, "meta", "BLD", "abc123")

	f.Fuzz(func(t *testing.T, major, minor, patch int, preName string, preNumber, preFix int, metadata, ciName, ciIndex string) {
		// New should never panic
		v, err := New(Config{
			Major:            major,
			Minor:            minor,
			Patch:            patch,
			PreReleaseName:   preName,
			PreReleaseNumber: preNumber,
			PreReleaseFix:    preFix,
			BuildMetadata:    metadata,
			CIBuildName:      ciName,
			CIBuildIndex:     ciIndex,
		})
		if err != nil {
			return
		}

		// invariants of every successfully constructed version

		// the four file-version components exactly reconstruct the shifted
		// ordered value
		want := v.Ordered << 1
		if v.IsCIBuild() {
			want++
		}
		if v.File.Packed() != want {
			t.Errorf("file version packs to %d, want %d", v.File.Packed(), want)
		}
		if v.File.IsCIBuild() != v.IsCIBuild() {
			t.Errorf("file version CI bit %v disagrees with version %v",
				v.File.IsCIBuild(), v.IsCIBuild())
		}

		// a pre-release always orders strictly before its release
		if !v.PreRelease.IsRelease() {
			release := MustNew(Config{Major: major, Minor: minor, Patch: patch})
			if v.Ordered >= release.Ordered {
				t.Errorf("pre-release %q (%d) must order before release (%d)",
					v.String(), v.Ordered, release.Ordered)
			}
		}

		// renderings always start with the triple and never contain spaces
		triple := fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
		long := v.String()
		short := v.Short()
		if !strings.HasPrefix(long, triple) || !strings.HasPrefix(short, triple) {
			t.Errorf("renderings %q / %q must start with %q", long, short, triple)
		}
		if strings.ContainsAny(short, " \t") {
			t.Errorf("short form %q contains whitespace", short)
		}
	})
}
