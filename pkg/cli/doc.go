/*
Copyright (c) 2026, The CSemVer Go Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package cli implements the csemver command-line interface.
//
// # Commands
//
// compute - Compute a version from components:
//
//	csemver compute --major 1 --minor 2 --patch 3 --pre rc --pre-number 1
//
// Validates the version components, derives the ordered and file versions,
// and writes the result to stdout or a file in JSON, YAML, or table format.
// Components can also be read from a version descriptor file with
// --descriptor; explicit flags override descriptor values.
//
// properties - Emit build property files:
//
//	csemver properties --descriptor .csemver.yaml --dir out --props-format dotenv
//
// Computes a version and writes its property set (product, package, file,
// and assembly versions) as dotenv, MSBuild props, and/or JSON files.
// With --detect-ci the CI build pair is taken from the environment of a
// recognized CI provider when the descriptor does not set one.
//
// detect - Report the detected CI environment:
//
//	csemver detect [--format yaml|json|table]
//
// # Global Flags
//
//	--log-level    Log level: debug, info, warn, error (default: info)
//	--help, -h     Show command help
//	--version, -v  Show version information
package cli
