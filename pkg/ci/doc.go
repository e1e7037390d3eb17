// Package ci classifies the continuous-integration environment a build is
// running in and derives the CI build name/index pair from it.
//
// Detection is purely environment-variable based: GitHub Actions, GitLab CI,
// Azure Pipelines, and Jenkins are recognized, first match wins. Outside any
// recognized CI the detection yields an empty Build, and the resulting
// version carries no CI qualifier at all.
//
// The derived pair is sanitized to the constrained alphabet ([a-z0-9-])
// before it reaches the version engine, and both fields are always produced
// together, upholding the engine's pairing invariant at the source.
package ci
