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
)

// Render produces the canonical string form of v.
//
// The rendering always starts with "major.minor.patch", followed by the
// pre-release suffix (possibly empty), followed by the CI build suffix
// "ci.<index>.<name>" when both CI fields are present. The CI suffix is
// joined with "." after a rendered pre-release and with "--" otherwise.
// Build metadata is appended as "+<metadata>" when includeMetadata is set.
func (v Version) Render(includeMetadata, short bool) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%d.%d.%d", v.Major, v.Minor, v.Patch)

	pre := v.PreRelease.Render(short)
	b.WriteString(pre)

	if v.IsCIBuild() {
		if pre != "" {
			b.WriteByte('.')
		} else {
			b.WriteString("--")
		}
		b.WriteString("ci.")
		b.WriteString(v.CIBuildIndex)
		b.WriteByte('.')
		b.WriteString(v.CIBuildName)
	}

	if includeMetadata && strings.TrimSpace(v.BuildMetadata) != "" {
		b.WriteByte('+')
		b.WriteString(v.BuildMetadata)
	}

	return b.String()
}

// String returns the long canonical form with build metadata. This is the
// InformationalVersion rendering.
func (v Version) String() string {
	return v.Render(true, false)
}

// Short returns the short canonical form without build metadata, safe for
// package-manager identifiers. This is the PackageVersion rendering.
func (v Version) Short() string {
	return v.Render(false, true)
}
