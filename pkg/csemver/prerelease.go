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

	"github.com/csemver/csemver/pkg/errors"
)

// preReleaseEntry pairs a canonical long name with its 1-letter short code.
// The slice position is the pre-release index used for ordering.
type preReleaseEntry struct {
	name  string
	short string
}

// preReleaseNames is the fixed ordered table of canonical pre-release
// designators. Position in the table determines ordering weight.
var preReleaseNames = [8]preReleaseEntry{
	{"alpha", "a"},
	{"beta", "b"},
	{"delta", "d"},
	{"epsilon", "e"},
	{"gamma", "g"},
	{"kappa", "k"},
	{"prerelease", "p"},
	{"rc", "r"},
}

// PreRelease represents an optional pre-release designator of a constrained
// semantic version. The zero Index of a valid release value is -1; indexes
// 0 through 7 are positions in the canonical name table.
type PreRelease struct {
	// Name is the canonical long name (e.g. "rc"); empty for a release.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// Short is the canonical 1-letter code (e.g. "r"); empty for a release.
	Short string `json:"short,omitempty" yaml:"short,omitempty"`

	// Index is the position in the canonical name table, or -1 for a release.
	Index int `json:"index" yaml:"index"`

	// Number is the pre-release number in [0, 99].
	Number int `json:"number,omitempty" yaml:"number,omitempty"`

	// Fix is the pre-release fix in [0, 99], meaningful only when Number > 0.
	Fix int `json:"fix,omitempty" yaml:"fix,omitempty"`
}

// releasePreRelease is the "no pre-release" value.
func releasePreRelease() PreRelease {
	return PreRelease{Index: -1}
}

// NewPreRelease resolves a free-form designator name into its canonical
// PreRelease value. A blank name yields the release value (Index -1).
// Resolution is case-insensitive and tries the 8 long names before the
// 8 short codes; first match wins. An unrecognized non-blank name fails
// with an UNKNOWN_PRERELEASE error rather than silently degrading to a
// release.
func NewPreRelease(name string, number, fix int) (PreRelease, error) {
	if number < 0 || number > maxPreReleaseNumber {
		return PreRelease{}, errors.Newf(errors.ErrCodeRange,
			"pre-release number %d outside [0, %d]", number, maxPreReleaseNumber)
	}
	if fix < 0 || fix > maxPreReleaseNumber {
		return PreRelease{}, errors.Newf(errors.ErrCodeRange,
			"pre-release fix %d outside [0, %d]", fix, maxPreReleaseNumber)
	}

	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return releasePreRelease(), nil
	}

	for i, entry := range preReleaseNames {
		if strings.EqualFold(trimmed, entry.name) {
			return PreRelease{
				Name:   entry.name,
				Short:  entry.short,
				Index:  i,
				Number: number,
				Fix:    fix,
			}, nil
		}
	}
	for i, entry := range preReleaseNames {
		if strings.EqualFold(trimmed, entry.short) {
			return PreRelease{
				Name:   entry.name,
				Short:  entry.short,
				Index:  i,
				Number: number,
				Fix:    fix,
			}, nil
		}
	}

	return PreRelease{}, errors.NewWithContext(errors.ErrCodeUnknownPreRelease,
		fmt.Sprintf("unknown pre-release name %q", name),
		map[string]any{"supported": PreReleaseNames()})
}

// IsRelease reports whether p denotes "no pre-release".
func (p PreRelease) IsRelease() bool {
	return p.Index < 0
}

// Render produces the version suffix for p, including the leading dash.
// It returns the empty string for a release.
//
// Long form: "-name", then ".number" only when number > 0, then ".fix" only
// when fix > 0. Short form: "-c", then "-NN" with 2-digit zero padding under
// the same conditions. A zero number suppresses both number and fix, even
// when fix is set; fix renders only as a continuation of a rendered number.
func (p PreRelease) Render(short bool) string {
	if p.IsRelease() {
		return ""
	}

	var b strings.Builder
	if short {
		b.WriteByte('-')
		b.WriteString(p.Short)
		if p.Number > 0 {
			fmt.Fprintf(&b, "-%02d", p.Number)
			if p.Fix > 0 {
				fmt.Fprintf(&b, "-%02d", p.Fix)
			}
		}
		return b.String()
	}

	b.WriteByte('-')
	b.WriteString(p.Name)
	if p.Number > 0 {
		fmt.Fprintf(&b, ".%d", p.Number)
		if p.Fix > 0 {
			fmt.Fprintf(&b, ".%d", p.Fix)
		}
	}
	return b.String()
}

// String returns the long-form suffix of p, or the empty string for a release.
func (p PreRelease) String() string {
	return p.Render(false)
}

// PreReleaseNames returns the canonical long names in their ordering positions.
func PreReleaseNames() []string {
	names := make([]string, len(preReleaseNames))
	for i, entry := range preReleaseNames {
		names[i] = entry.name
	}
	return names
}

// PreReleaseShortNames returns the canonical 1-letter codes in their
// ordering positions.
func PreReleaseShortNames() []string {
	names := make([]string, len(preReleaseNames))
	for i, entry := range preReleaseNames {
		names[i] = entry.short
	}
	return names
}
