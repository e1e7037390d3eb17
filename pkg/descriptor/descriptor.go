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

package descriptor

import (
	"os"

	"github.com/csemver/csemver/pkg/csemver"
	"github.com/csemver/csemver/pkg/errors"
	"github.com/csemver/csemver/pkg/serializer"
)

// DefaultPath is the conventional descriptor location.
const DefaultPath = ".csemver.yaml"

// Descriptor is the on-disk version descriptor record. Field names mirror
// the external configuration boundary: version components are prefixed with
// "build" to distinguish them from the file-format version of the descriptor
// itself.
type Descriptor struct {
	BuildMajor int `json:"buildMajor" yaml:"buildMajor"`
	BuildMinor int `json:"buildMinor" yaml:"buildMinor"`
	BuildPatch int `json:"buildPatch" yaml:"buildPatch"`

	PreReleaseName   string `json:"preReleaseName,omitempty" yaml:"preReleaseName,omitempty"`
	PreReleaseNumber int    `json:"preReleaseNumber,omitempty" yaml:"preReleaseNumber,omitempty"`
	PreReleaseFix    int    `json:"preReleaseFix,omitempty" yaml:"preReleaseFix,omitempty"`

	BuildMetadata string `json:"buildMetadata,omitempty" yaml:"buildMetadata,omitempty"`

	// CI fields may be declared in the descriptor for fully pinned builds,
	// but are normally injected by the CI-kind classifier instead.
	CiBuildName  string `json:"ciBuildName,omitempty" yaml:"ciBuildName,omitempty"`
	CiBuildIndex string `json:"ciBuildIndex,omitempty" yaml:"ciBuildIndex,omitempty"`
}

// Load reads a descriptor from path. A missing or unreadable file is a fatal
// descriptor error: the caller is expected to halt the build, there is no
// best-effort versioning.
func Load(path string) (*Descriptor, error) {
	if path == "" {
		path = DefaultPath
	}

	if _, err := os.Stat(path); err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeDescriptor,
			"version descriptor not found", err,
			map[string]any{"path": path})
	}

	d, err := serializer.FromFile[Descriptor](path)
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeDescriptor,
			"failed to parse version descriptor", err,
			map[string]any{"path": path})
	}

	return d, nil
}

// Config converts the descriptor into the engine's configuration record.
// Range and pairing validation is owned by csemver.New; the descriptor layer
// only maps fields.
func (d *Descriptor) Config() csemver.Config {
	return csemver.Config{
		Major:            d.BuildMajor,
		Minor:            d.BuildMinor,
		Patch:            d.BuildPatch,
		PreReleaseName:   d.PreReleaseName,
		PreReleaseNumber: d.PreReleaseNumber,
		PreReleaseFix:    d.PreReleaseFix,
		BuildMetadata:    d.BuildMetadata,
		CIBuildName:      d.CiBuildName,
		CIBuildIndex:     d.CiBuildIndex,
	}
}
