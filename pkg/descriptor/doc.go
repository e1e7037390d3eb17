// Package descriptor reads and validates version descriptor files.
//
// A version descriptor is a small YAML or JSON document, conventionally
// named .csemver.yaml at the repository root, that declares the version a
// build should produce:
//
//	buildMajor: 1
//	buildMinor: 2
//	buildPatch: 3
//	preReleaseName: rc
//	preReleaseNumber: 1
//	buildMetadata: 1a2b3c
//
// The descriptor is the input boundary of the version engine: it is loaded
// once, converted to a csemver.Config, and never written back. CI build
// fields are usually not present in the descriptor; they are supplied by the
// CI-kind classifier at compute time.
package descriptor
