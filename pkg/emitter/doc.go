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

// Package emitter renders a computed version into build property files.
//
// A single version expands into a set of related property strings (the
// full version, the short package form, the four-part file version, and
// so on). The emitter writes those properties in one or more formats,
// dotenv for shell consumption, MSBuild props for .NET projects, and
// JSON for everything else, generating all requested files in parallel.
package emitter
