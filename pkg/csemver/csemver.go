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
	"regexp"
	"time"

	"github.com/csemver/csemver/pkg/errors"
)

// Declared field bounds.
const (
	MaxMajor = 99999
	MaxMinor = 49999
	MaxPatch = 9999

	maxPreReleaseNumber = 99
	maxBuildMetadataLen = 20
)

// ciTokenRx is the allowed alphabet for CI build names and indexes.
// Matching ignores case: downstream renderers preserve the original casing
// (e.g. a "BLD" build name), the constraint is on the character set.
var ciTokenRx = regexp.MustCompile(`(?i)^[a-z0-9-]+$`)

// Config is the collaborator-supplied record a Version is constructed from.
// It is typically populated from a version descriptor file and a CI-kind
// classifier, both outside this package.
type Config struct {
	Major int `json:"major" yaml:"major"`
	Minor int `json:"minor" yaml:"minor"`
	Patch int `json:"patch" yaml:"patch"`

	// PreReleaseName is a canonical long name or 1-letter code; blank for a
	// release version.
	PreReleaseName   string `json:"preReleaseName,omitempty" yaml:"preReleaseName,omitempty"`
	PreReleaseNumber int    `json:"preReleaseNumber,omitempty" yaml:"preReleaseNumber,omitempty"`
	PreReleaseFix    int    `json:"preReleaseFix,omitempty" yaml:"preReleaseFix,omitempty"`

	// BuildMetadata is free-form (e.g. a commit sha), at most 20 characters,
	// and never part of ordering.
	BuildMetadata string `json:"buildMetadata,omitempty" yaml:"buildMetadata,omitempty"`

	// CIBuildName and CIBuildIndex identify a CI build. Both must be present
	// or both absent, never one without the other.
	CIBuildName  string `json:"ciBuildName,omitempty" yaml:"ciBuildName,omitempty"`
	CIBuildIndex string `json:"ciBuildIndex,omitempty" yaml:"ciBuildIndex,omitempty"`
}

// Version is an immutable constrained semantic version. All derived fields
// are computed once at construction and never recomputed; no
// partially-constructed Version is ever observable.
type Version struct {
	Major int `json:"major" yaml:"major"`
	Minor int `json:"minor" yaml:"minor"`
	Patch int `json:"patch" yaml:"patch"`

	PreRelease PreRelease `json:"preRelease,omitempty" yaml:"preRelease,omitempty"`

	BuildMetadata string `json:"buildMetadata,omitempty" yaml:"buildMetadata,omitempty"`

	CIBuildName  string `json:"ciBuildName,omitempty" yaml:"ciBuildName,omitempty"`
	CIBuildIndex string `json:"ciBuildIndex,omitempty" yaml:"ciBuildIndex,omitempty"`

	// Ordered is the 64-bit integer that totally orders all valid versions.
	Ordered uint64 `json:"ordered" yaml:"ordered"`

	// File is the legacy four 16-bit-component quadruple derived from Ordered
	// and the CI-build flag.
	File FileVersion `json:"file" yaml:"file"`
}

// New validates cfg and constructs a Version. Validation happens before any
// derived field is computed; every failure carries one of the structured
// error codes (RANGE, PATTERN, PAIRING, OVERFLOW, UNKNOWN_PRERELEASE) and
// aborts construction with no partial value.
func New(cfg Config) (Version, error) {
	start := time.Now()
	v, err := build(cfg)
	observeCompute(start, err)
	return v, err
}

func build(cfg Config) (Version, error) {
	if cfg.Major < 0 || cfg.Major > MaxMajor {
		return Version{}, errors.Newf(errors.ErrCodeRange,
			"major %d outside [0, %d]", cfg.Major, MaxMajor)
	}
	if cfg.Minor < 0 || cfg.Minor > MaxMinor {
		return Version{}, errors.Newf(errors.ErrCodeRange,
			"minor %d outside [0, %d]", cfg.Minor, MaxMinor)
	}
	if cfg.Patch < 0 || cfg.Patch > MaxPatch {
		return Version{}, errors.Newf(errors.ErrCodeRange,
			"patch %d outside [0, %d]", cfg.Patch, MaxPatch)
	}
	if len(cfg.BuildMetadata) > maxBuildMetadataLen {
		return Version{}, errors.Newf(errors.ErrCodeRange,
			"build metadata %q longer than %d characters", cfg.BuildMetadata, maxBuildMetadataLen)
	}

	if (cfg.CIBuildName == "") != (cfg.CIBuildIndex == "") {
		return Version{}, errors.NewWithContext(errors.ErrCodePairing,
			"ciBuildName and ciBuildIndex must both be present or both absent",
			map[string]any{"ciBuildName": cfg.CIBuildName, "ciBuildIndex": cfg.CIBuildIndex})
	}
	ciBuild := cfg.CIBuildName != ""
	if ciBuild {
		if !ciTokenRx.MatchString(cfg.CIBuildName) {
			return Version{}, errors.Newf(errors.ErrCodePattern,
				"ciBuildName %q contains characters outside [a-z0-9-]", cfg.CIBuildName)
		}
		if !ciTokenRx.MatchString(cfg.CIBuildIndex) {
			return Version{}, errors.Newf(errors.ErrCodePattern,
				"ciBuildIndex %q contains characters outside [a-z0-9-]", cfg.CIBuildIndex)
		}
	}

	pre, err := NewPreRelease(cfg.PreReleaseName, cfg.PreReleaseNumber, cfg.PreReleaseFix)
	if err != nil {
		return Version{}, err
	}

	ordered := orderedVersion(cfg.Major, cfg.Minor, cfg.Patch, pre)

	file, err := deriveFileVersion(ordered, ciBuild)
	if err != nil {
		return Version{}, err
	}

	return Version{
		Major:         cfg.Major,
		Minor:         cfg.Minor,
		Patch:         cfg.Patch,
		PreRelease:    pre,
		BuildMetadata: cfg.BuildMetadata,
		CIBuildName:   cfg.CIBuildName,
		CIBuildIndex:  cfg.CIBuildIndex,
		Ordered:       ordered,
		File:          file,
	}, nil
}

// MustNew constructs a Version and panics on failure. Only use this for
// hardcoded configs or in tests; for runtime data always use New and handle
// errors explicitly.
func MustNew(cfg Config) Version {
	v, err := New(cfg)
	if err != nil {
		panic("csemver.MustNew: " + err.Error())
	}
	return v
}

// IsCIBuild reports whether v carries a CI build qualifier.
func (v Version) IsCIBuild() bool {
	return v.CIBuildName != "" && v.CIBuildIndex != ""
}

// Compare returns an integer comparing two versions by their ordered
// position: -1 if v < other, 0 if equal, 1 if v > other. CI build
// qualifiers and build metadata do not participate in ordering.
func (v Version) Compare(other Version) int {
	switch {
	case v.Ordered < other.Ordered:
		return -1
	case v.Ordered > other.Ordered:
		return 1
	default:
		return 0
	}
}

// IsNewer reports whether v orders strictly after other.
func (v Version) IsNewer(other Version) bool {
	return v.Ordered > other.Ordered
}

// Equals reports whether v and other occupy the same ordered position.
func (v Version) Equals(other Version) bool {
	return v.Ordered == other.Ordered
}
