// Package csemver implements Constrained Semantic Versioning: a strict,
// totally-ordered versioning scheme combining a release triple
// (Major.Minor.Patch), an optional pre-release designator, and an optional
// CI-build qualifier.
//
// # Overview
//
// A constrained semantic version narrows the semver.org grammar to fixed
// field ranges so that every valid version maps bijectively onto a single
// unsigned 64-bit integer (the ordered version). Two derived canonical
// representations come for free:
//
//   - The ordered version, which totally orders all valid versions: major
//     dominates, then minor, then patch, then "release beats any pre-release
//     of the same patch", then pre-release index, number, and fix.
//   - A legacy four 16-bit-component file version, derived from the ordered
//     version plus a CI-build flag, for tooling that only understands that
//     format.
//
// # Field ranges
//
//   - Major: [0, 99999]
//   - Minor: [0, 49999]
//   - Patch: [0, 9999]
//   - Pre-release number and fix: [0, 99]
//   - Build metadata: at most 20 characters, not part of ordering
//
// Pre-release names are drawn from a fixed ordered table of 8 designators
// (alpha through rc), each with a 1-letter short code.
//
// # Usage
//
// Versions are constructed once from a fully-populated Config and are
// immutable value types afterwards; all derived fields are computed eagerly:
//
//	v, err := csemver.New(csemver.Config{
//	    Major:            1,
//	    Minor:            2,
//	    Patch:            3,
//	    PreReleaseName:   "rc",
//	    PreReleaseNumber: 1,
//	})
//	if err != nil {
//	    // construction failures are final; there is no best-effort versioning
//	}
//	fmt.Println(v.String()) // 1.2.3-rc.1
//	fmt.Println(v.Short())  // 1.2.3-r-01
//
// Every operation is a pure function of its inputs. Values are safe to share
// across goroutines without synchronization because nothing mutates after
// construction.
package csemver
