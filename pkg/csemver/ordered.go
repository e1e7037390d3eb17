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
	"math"

	"github.com/csemver/csemver/pkg/errors"
)

// Ordering weights. Each field's maximum value never overflows into the next
// field's weight: the headroom below a "fully released" patch block
// (mulPatch-1 = 80_000) strictly exceeds the maximum pre-release contribution
// (7*mulName + 99*mulNum + 99 = 79_999).
const (
	mulNum   uint64 = 100
	mulName  uint64 = mulNum * 100   // 10_000
	mulPatch uint64 = mulName*8 + 1  // 80_001
	mulMinor uint64 = mulPatch * 10_000
	mulMajor uint64 = mulMinor * 50_000
)

// orderedVersion packs (major, minor, patch, pre) into a single unsigned
// 64-bit integer that totally orders all valid versions. Inputs must already
// be range-validated.
//
// (patch+1)*mulPatch reserves a full block for "patch P, fully released";
// every pre-release of patch P lands inside that block's headroom, so it
// orders strictly before the release of P and strictly after everything of
// patch P-1.
func orderedVersion(major, minor, patch int, pre PreRelease) uint64 {
	v := uint64(major)*mulMajor +
		uint64(minor)*mulMinor +
		uint64(patch+1)*mulPatch

	if !pre.IsRelease() {
		v -= mulPatch - 1
		v += uint64(pre.Index)*mulName +
			uint64(pre.Number)*mulNum +
			uint64(pre.Fix)
	}

	return v
}

// FileVersion is a legacy four 16-bit-component version quadruple derived
// from the ordered version. The low bit of Revision distinguishes a CI build
// from the release at the same ordered position.
type FileVersion struct {
	Major    uint16 `json:"major" yaml:"major"`
	Minor    uint16 `json:"minor" yaml:"minor"`
	Build    uint16 `json:"build" yaml:"build"`
	Revision uint16 `json:"revision" yaml:"revision"`
}

// deriveFileVersion splits ordered<<1 (+1 for CI builds) into four 16-bit
// fields from most- to least-significant. The split is a direct bit-field
// decomposition, not lossy: Packed reconstructs the input exactly.
//
// The shift could in principle push the value past the 64-bit domain, so the
// bound is checked here rather than silently truncated.
func deriveFileVersion(ordered uint64, ciBuild bool) (FileVersion, error) {
	if ordered > math.MaxUint64>>1 {
		return FileVersion{}, errors.NewWithContext(errors.ErrCodeOverflow,
			"ordered version too large for file-version packing",
			map[string]any{"ordered": ordered})
	}

	v := ordered << 1
	if ciBuild {
		v++
	}

	return FileVersion{
		Revision: uint16(v & 0xFFFF),
		Build:    uint16((v >> 16) & 0xFFFF),
		Minor:    uint16((v >> 32) & 0xFFFF),
		Major:    uint16(v >> 48),
	}, nil
}

// Packed reconstructs the 64-bit value the quadruple was derived from.
func (f FileVersion) Packed() uint64 {
	return uint64(f.Major)<<48 | uint64(f.Minor)<<32 | uint64(f.Build)<<16 | uint64(f.Revision)
}

// IsCIBuild reports whether the quadruple marks a CI build.
func (f FileVersion) IsCIBuild() bool {
	return f.Revision&1 == 1
}

// String returns the dotted quadruple, e.g. "0.0.2.84".
func (f FileVersion) String() string {
	return fmt.Sprintf("%d.%d.%d.%d", f.Major, f.Minor, f.Build, f.Revision)
}
