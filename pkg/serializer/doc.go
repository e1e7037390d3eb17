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

// Package serializer provides encoding and decoding of version data in
// multiple formats.
//
// # Supported Formats
//
// JSON:
//   - Machine-parseable representation for programmatic consumption
//   - Standard encoding/json package
//
// YAML:
//   - Human-readable, suitable for descriptor files and version control
//   - gopkg.in/yaml.v3 package
//
// Table:
//   - Flattened key/value text for terminal viewing
//   - Write-only (no deserialization support)
//
// # Usage
//
// Write to stdout:
//
//	w := serializer.NewStdoutWriter(serializer.FormatYAML)
//	if err := w.Serialize(ctx, data); err != nil {
//	    log.Fatal(err)
//	}
//
// Read a file with automatic format detection:
//
//	cfg, err := serializer.FromFile[descriptor.Descriptor](".csemver.yaml")
//
// File-based writers and readers hold handles; call Close when done. Format
// detection follows the file extension (.json, .yaml/.yml, .table/.txt) with
// JSON as the default.
package serializer
